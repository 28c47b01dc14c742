package domain

// AuthStep - шаг двухэтапного входа
type AuthStep string

const (
	AuthStepEmail         AuthStep = "email"
	AuthStepOTP           AuthStep = "otp"
	AuthStepAuthenticated AuthStep = "authenticated"
)

// SessionKey - имя единственного слота, в котором хранится токен администратора
const SessionKey = "adminToken"

// OTPRequestResult - ответ на запрос кода
type OTPRequestResult struct {
	Message string
}

// OTPVerifyResult - ответ на проверку кода
type OTPVerifyResult struct {
	Token   string
	Message string
}
