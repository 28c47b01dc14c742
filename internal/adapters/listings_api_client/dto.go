package listings_api_client

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"time"
)

// DTO в формате бэкенда (идентификаторы приходят в поле _id)

type propertyDTO struct {
	ID           string     `json:"_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	PropertyType string     `json:"propertyType"`
	ListingType  string     `json:"listingType"`
	Status       string     `json:"status"`
	Price        *float64   `json:"price"`
	Area         *float64   `json:"area"`
	Bedrooms     *float64   `json:"bedrooms"`
	Bathrooms    *float64   `json:"bathrooms"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	Address      string     `json:"address"`
	Pincode      flexString `json:"pincode"`
	OwnerName    string     `json:"ownerName"`
	OwnerContact flexString `json:"ownerContact"`
	Images       []string   `json:"images"`
	VideoURL     string     `json:"videoUrl"`
	Verified     bool       `json:"verified"`
	IsFeatured   bool       `json:"isFeatured"`
	CreatedAt    flexTime   `json:"createdAt"`
	UpdatedAt    flexTime   `json:"updatedAt"`
}

func (d propertyDTO) toDomain() domain.Property {
	images := d.Images
	if images == nil {
		images = []string{}
	}
	return domain.Property{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		PropertyType: d.PropertyType,
		ListingType:  d.ListingType,
		Status:       d.Status,
		Price:        d.Price,
		Area:         d.Area,
		Bedrooms:     d.Bedrooms,
		Bathrooms:    d.Bathrooms,
		City:         d.City,
		State:        d.State,
		Address:      d.Address,
		Pincode:      string(d.Pincode),
		OwnerName:    d.OwnerName,
		OwnerContact: string(d.OwnerContact),
		Images:       images,
		VideoURL:     d.VideoURL,
		Verified:     d.Verified,
		IsFeatured:   d.IsFeatured,
		CreatedAt:    d.CreatedAt.Time,
		UpdatedAt:    d.UpdatedAt.Time,
	}
}

type propertyRefDTO struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	City         string `json:"city"`
	PropertyType string `json:"propertyType"`
	ListingType  string `json:"listingType"`
}

func (d *propertyRefDTO) toDomain() *domain.PropertyRef {
	if d == nil {
		return nil
	}
	return &domain.PropertyRef{
		ID:           d.ID,
		Title:        d.Title,
		City:         d.City,
		PropertyType: d.PropertyType,
		ListingType:  d.ListingType,
	}
}

type contactDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone flexString `json:"phone"`
}

func (d *contactDTO) toDomain() *domain.ContactRef {
	if d == nil {
		return nil
	}
	return &domain.ContactRef{Name: d.Name, Email: d.Email, Phone: string(d.Phone)}
}

type queryDTO struct {
	ID        string          `json:"_id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     flexString      `json:"phone"`
	User      *contactDTO     `json:"user"`
	Message   string          `json:"message"`
	Status    string          `json:"status"`
	Property  *propertyRefDTO `json:"property"`
	CreatedAt flexTime        `json:"createdAt"`
}

func (d queryDTO) toDomain() domain.Query {
	return domain.Query{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     string(d.Phone),
		User:      d.User.toDomain(),
		Message:   d.Message,
		Status:    d.Status,
		Property:  d.Property.toDomain(),
		CreatedAt: d.CreatedAt.Time,
	}
}

type ratingDTO struct {
	ID        string          `json:"_id"`
	Stars     int             `json:"stars"`
	Comment   string          `json:"comment"`
	Property  *propertyRefDTO `json:"property"`
	User      *contactDTO     `json:"user"`
	CreatedAt flexTime        `json:"createdAt"`
}

func (d ratingDTO) toDomain() domain.Rating {
	return domain.Rating{
		ID:        d.ID,
		Stars:     d.Stars,
		Comment:   d.Comment,
		Property:  d.Property.toDomain(),
		User:      d.User.toDomain(),
		CreatedAt: d.CreatedAt.Time,
	}
}

type userDTO struct {
	ID         string     `json:"_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      flexString `json:"phone"`
	IsVerified bool       `json:"isVerified"`
	IsBlocked  bool       `json:"isBlocked"`
	CreatedAt  flexTime   `json:"createdAt"`
	UpdatedAt  flexTime   `json:"updatedAt"`
}

func (d userDTO) toDomain() domain.User {
	return domain.User{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		Phone:      string(d.Phone),
		IsVerified: d.IsVerified,
		IsBlocked:  d.IsBlocked,
		CreatedAt:  d.CreatedAt.Time,
		UpdatedAt:  d.UpdatedAt.Time,
	}
}

// decodePage разбирает ответ списка: либо массив верхнего уровня, либо конверт {items, meta}.
// Элементы декодируются по одному: битый элемент пропускается, остальные и meta сохраняются.
func decodePage[D any, T any](ctx context.Context, raw json.RawMessage, convert func(D) T) *domain.Page[T] {
	logger := contextkeys.LoggerFromContext(ctx)

	var items []json.RawMessage
	var meta *domain.PageMeta

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			logger.Warn("Failed to decode list response, treating it as empty", port.Fields{"error": err.Error()})
		}
	} else if len(trimmed) > 0 {
		var envelope struct {
			Items json.RawMessage `json:"items"`
			Meta  json.RawMessage `json:"meta"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			logger.Warn("Failed to decode list envelope, treating it as empty", port.Fields{"error": err.Error()})
		}
		if len(envelope.Items) > 0 {
			if err := json.Unmarshal(envelope.Items, &items); err != nil {
				logger.Warn("Field 'items' is not an array, treating it as empty", port.Fields{"error": err.Error()})
			}
		}
		if len(envelope.Meta) > 0 {
			var m domain.PageMeta
			if err := json.Unmarshal(envelope.Meta, &m); err != nil {
				logger.Warn("Failed to decode page meta", port.Fields{"error": err.Error()})
			} else if !bytes.Equal(bytes.TrimSpace(envelope.Meta), []byte("null")) {
				meta = &m
			}
		}
	}

	result := &domain.Page[T]{Items: make([]T, 0, len(items)), Meta: meta}
	skipped := 0
	for _, item := range items {
		var dto D
		if err := json.Unmarshal(item, &dto); err != nil {
			skipped++
			logger.Warn("Skipping malformed list item", port.Fields{"error": err.Error()})
			continue
		}
		result.Items = append(result.Items, convert(dto))
	}
	if skipped > 0 {
		logger.Warn("Some list items were skipped", port.Fields{"skipped": skipped, "kept": len(result.Items)})
	}
	return result
}

type messageResponse struct {
	Message string `json:"message"`
}

type verifyOTPResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

type uploadManyResponse struct {
	Files []struct {
		URL string `json:"url"`
	} `json:"files"`
}

type loginRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type featuredRequest struct {
	IsFeatured bool `json:"isFeatured"`
}

type blockRequest struct {
	IsBlocked bool `json:"isBlocked"`
}

// flexString принимает как строку, так и число (pincode, телефон)
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// flexTime принимает RFC 3339, дату без времени и миллисекунды эпохи.
// Нераспознанное значение оставляет нулевое время.
type flexTime struct {
	time.Time
}

var flexTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func (f *flexTime) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	f.Time = time.Time{}
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] != '"' {
		if ms, err := strconv.ParseInt(string(trimmed), 10, 64); err == nil {
			f.Time = time.UnixMilli(ms).UTC()
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil
	}
	for _, layout := range flexTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t
			return nil
		}
	}
	return nil
}
