package domain

import "time"

const (
	QueryStatusNew       = "New"
	QueryStatusContacted = "Contacted"
	QueryStatusClosed    = "Closed"
)

// ContactRef - контактные данные связанного пользователя
type ContactRef struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Query - заявка (обращение) по объявлению. Только чтение.
type Query struct {
	ID        string       `json:"id"`
	Name      string       `json:"name,omitempty"`
	Email     string       `json:"email,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	User      *ContactRef  `json:"user,omitempty"`
	Message   string       `json:"message,omitempty"`
	Status    string       `json:"status,omitempty"`
	Property  *PropertyRef `json:"property,omitempty"`
	CreatedAt time.Time    `json:"createdAt,omitzero"`
}

// Rating - отзыв пользователя об объявлении. Только чтение.
type Rating struct {
	ID        string       `json:"id"`
	Stars     int          `json:"stars"`
	Comment   string       `json:"comment,omitempty"`
	Property  *PropertyRef `json:"property,omitempty"`
	User      *ContactRef  `json:"user,omitempty"`
	CreatedAt time.Time    `json:"createdAt,omitzero"`
}

// User - учетная запись пользователя платформы.
// Из консоли меняется только флаг блокировки.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	IsVerified bool      `json:"isVerified"`
	IsBlocked  bool      `json:"isBlocked"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}

type QueryFilters struct {
	Q      string `json:"q"`
	Status string `json:"status"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type RatingFilters struct {
	Stars string `json:"stars"`
}

type UserFilters struct {
	Q        string `json:"q"`
	Verified string `json:"verified"`
}

// FeaturedFilters - строка поиска на экране "Избранные объявления"
type FeaturedFilters struct {
	Q string `json:"q"`
}
