package rest

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/port"
	"admin-console/internal/core/port/usecases_port"
	"net/http"
	"strconv"
)

// ConsoleHandlers - обработчики API консоли. Каждый экран существует в одном экземпляре
// на процесс, так как консоль обслуживает одного администратора.
type ConsoleHandlers struct {
	auth       usecases_port.AuthFlowUseCasePort
	dashboard  usecases_port.DashboardUseCasePort
	properties usecases_port.PropertiesScreenUseCasePort
	form       usecases_port.PropertyFormUseCasePort
	featured   usecases_port.FeaturedScreenUseCasePort
	queries    usecases_port.QueriesScreenUseCasePort
	ratings    usecases_port.RatingsScreenUseCasePort
	users      usecases_port.UsersScreenUseCasePort
}

type Screens struct {
	Auth       usecases_port.AuthFlowUseCasePort
	Dashboard  usecases_port.DashboardUseCasePort
	Properties usecases_port.PropertiesScreenUseCasePort
	Form       usecases_port.PropertyFormUseCasePort
	Featured   usecases_port.FeaturedScreenUseCasePort
	Queries    usecases_port.QueriesScreenUseCasePort
	Ratings    usecases_port.RatingsScreenUseCasePort
	Users      usecases_port.UsersScreenUseCasePort
}

func NewConsoleHandlers(s Screens) *ConsoleHandlers {
	return &ConsoleHandlers{
		auth:       s.Auth,
		dashboard:  s.Dashboard,
		properties: s.Properties,
		form:       s.Form,
		featured:   s.Featured,
		queries:    s.Queries,
		ratings:    s.Ratings,
		users:      s.Users,
	}
}

// HandleAuthState - GET /api/console/auth
func (h *ConsoleHandlers) HandleAuthState(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, h.auth.Snapshot(r.Context()))
}

// HandleSendOTP - POST /api/console/auth/otp
func (h *ConsoleHandlers) HandleSendOTP(w http.ResponseWriter, r *http.Request) {
	var req SendOTPRequestDTO
	if !decodeBody(w, r, &req, true) {
		return
	}
	if req.Email != "" {
		h.auth.SetEmail(req.Email)
	}
	err := h.auth.SendOTP(r.Context())
	respondWithState(w, r, err, h.auth.Snapshot(r.Context()))
}

// HandleVerifyOTP - POST /api/console/auth/verify
func (h *ConsoleHandlers) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequestDTO
	if !decodeBody(w, r, &req, true) {
		return
	}
	if req.OTP != "" {
		h.auth.SetOTP(req.OTP)
	}
	err := h.auth.VerifyOTP(r.Context())
	respondWithState(w, r, err, h.auth.Snapshot(r.Context()))
}

func (h *ConsoleHandlers) HandleChangeEmail(w http.ResponseWriter, r *http.Request) {
	h.auth.ChangeEmail()
	RespondWithJSON(w, http.StatusOK, h.auth.Snapshot(r.Context()))
}

func (h *ConsoleHandlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Logout failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to clear session")
		return
	}
	RespondWithJSON(w, http.StatusOK, h.auth.Snapshot(r.Context()))
}

// HandleDashboard - GET /api/console/dashboard?days=N
func (h *ConsoleHandlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleDashboard"})

	var err error
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, convErr := strconv.Atoi(raw)
		if convErr != nil {
			logger.Warn("Invalid days parameter", port.Fields{"days": raw})
			WriteJSONError(w, http.StatusBadRequest, "Query parameter 'days' must be a number")
			return
		}
		err = h.dashboard.SetDays(r.Context(), days)
	} else {
		err = h.dashboard.Reload(r.Context())
	}
	respondWithState(w, r, err, h.dashboard.Snapshot())
}
