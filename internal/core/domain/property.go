package domain

import (
	"strings"
	"time"
)

// Допустимые значения полей объявления (совпадают с перечислениями бэкенда)
var PropertyTypes = []string{
	"Apartment",
	"House",
	"Villa",
	"Plot",
	"Land",
	"Office",
	"Shop",
	"Showroom",
	"Warehouse",
	"Farmhouse",
	"PG",
	"Hostel",
	"Commercial",
	"Industrial",
}

var ListingTypes = []string{"Sale", "Rent", "Lease"}

var PropertyStatuses = []string{"Available", "Booked", "Sold", "Under Construction"}

const (
	DefaultPropertyType = "Apartment"
	DefaultListingType  = "Sale"
	DefaultStatus       = "Available"
)

// Property - объявление в том виде, в котором его отдает бэкенд.
// Консоль хранит только временную копию.
type Property struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	PropertyType string    `json:"propertyType,omitempty"`
	ListingType  string    `json:"listingType,omitempty"`
	Status       string    `json:"status,omitempty"`
	Price        *float64  `json:"price,omitempty"`
	Area         *float64  `json:"area,omitempty"`
	Bedrooms     *float64  `json:"bedrooms,omitempty"`
	Bathrooms    *float64  `json:"bathrooms,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Address      string    `json:"address,omitempty"`
	Pincode      string    `json:"pincode,omitempty"`
	OwnerName    string    `json:"ownerName,omitempty"`
	OwnerContact string    `json:"ownerContact,omitempty"`
	Images       []string  `json:"images"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	Verified     bool      `json:"verified"`
	IsFeatured   bool      `json:"isFeatured"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

// PropertyInput - тело запроса на создание/полное обновление объявления.
// Пустые необязательные поля не отправляются.
type PropertyInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	PropertyType string   `json:"propertyType"`
	ListingType  string   `json:"listingType"`
	Status       string   `json:"status"`
	Price        float64  `json:"price"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	Address      string   `json:"address,omitempty"`
	Pincode      string   `json:"pincode,omitempty"`
	Area         *float64 `json:"area,omitempty"`
	Bedrooms     *float64 `json:"bedrooms,omitempty"`
	Bathrooms    *float64 `json:"bathrooms,omitempty"`
	OwnerName    string   `json:"ownerName,omitempty"`
	OwnerContact string   `json:"ownerContact,omitempty"`
	VideoURL     string   `json:"videoUrl,omitempty"`
	Images       []string `json:"images"`
	Verified     bool     `json:"verified"`
	IsFeatured   bool     `json:"isFeatured"`
}

// PropertyFilters - фильтры экрана объявлений
type PropertyFilters struct {
	Q            string `json:"q"`
	Status       string `json:"status"`
	ListingType  string `json:"listingType"`
	PropertyType string `json:"propertyType"`
}

// IsEmpty - true, если не задан ни один фильтр (тогда используется обычный список).
func (f PropertyFilters) IsEmpty() bool {
	return strings.TrimSpace(f.Q) == "" && f.Status == "" && f.ListingType == "" && f.PropertyType == ""
}

// PropertyRef - краткая ссылка на объявление внутри заявки или отзыва
type PropertyRef struct {
	ID           string `json:"id"`
	Title        string `json:"title,omitempty"`
	City         string `json:"city,omitempty"`
	PropertyType string `json:"propertyType,omitempty"`
	ListingType  string `json:"listingType,omitempty"`
}
