package usecase

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
)

// NewPropertyFormValues - значения пустой формы создания
func NewPropertyFormValues() domain.PropertyFormValues {
	return domain.PropertyFormValues{
		PropertyType: domain.DefaultPropertyType,
		ListingType:  domain.DefaultListingType,
		Status:       domain.DefaultStatus,
		Images:       []string{},
	}
}

// FormValuesFromProperty заполняет форму данными объявления.
// Отсутствующие числа становятся пустыми строками.
func FormValuesFromProperty(p domain.Property) domain.PropertyFormValues {
	return domain.PropertyFormValues{
		Title:        p.Title,
		Description:  p.Description,
		PropertyType: orDefault(p.PropertyType, domain.DefaultPropertyType),
		ListingType:  orDefault(p.ListingType, domain.DefaultListingType),
		Status:       orDefault(p.Status, domain.DefaultStatus),
		Price:        formatNumber(p.Price),
		City:         p.City,
		State:        p.State,
		Address:      p.Address,
		Pincode:      p.Pincode,
		Area:         formatNumber(p.Area),
		Bedrooms:     formatNumber(p.Bedrooms),
		Bathrooms:    formatNumber(p.Bathrooms),
		OwnerName:    p.OwnerName,
		OwnerContact: p.OwnerContact,
		VideoURL:     p.VideoURL,
		Images:       append([]string{}, p.Images...),
		Verified:     p.Verified,
		IsFeatured:   p.IsFeatured,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// BuildPropertyInput превращает строки формы в тело запроса.
// Проверяются только наличие заголовка и цены и числовой формат.
func BuildPropertyInput(v domain.PropertyFormValues) (domain.PropertyInput, error) {
	input := domain.PropertyInput{
		Title:        strings.TrimSpace(v.Title),
		Description:  strings.TrimSpace(v.Description),
		PropertyType: orDefault(v.PropertyType, domain.DefaultPropertyType),
		ListingType:  orDefault(v.ListingType, domain.DefaultListingType),
		Status:       orDefault(v.Status, domain.DefaultStatus),
		City:         strings.TrimSpace(v.City),
		State:        strings.TrimSpace(v.State),
		Address:      strings.TrimSpace(v.Address),
		Pincode:      strings.TrimSpace(v.Pincode),
		OwnerName:    strings.TrimSpace(v.OwnerName),
		OwnerContact: strings.TrimSpace(v.OwnerContact),
		VideoURL:     strings.TrimSpace(v.VideoURL),
		Images:       compactURLs(v.Images),
		Verified:     v.Verified,
		IsFeatured:   v.IsFeatured,
	}

	if input.Title == "" {
		return domain.PropertyInput{}, domain.NewValidationError("Title is required")
	}

	price, ok := parseNumber(v.Price)
	if !ok {
		return domain.PropertyInput{}, domain.NewValidationError("Price is required")
	}
	input.Price = price

	optional := []struct {
		label  string
		raw    string
		target **float64
	}{
		{"Area", v.Area, &input.Area},
		{"Bedrooms", v.Bedrooms, &input.Bedrooms},
		{"Bathrooms", v.Bathrooms, &input.Bathrooms},
	}
	for _, field := range optional {
		if strings.TrimSpace(field.raw) == "" {
			continue
		}
		n, ok := parseNumber(field.raw)
		if !ok {
			return domain.PropertyInput{}, domain.NewValidationError("%s must be a number", field.label)
		}
		*field.target = &n
	}

	return input, nil
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// compactURLs убирает пустые и повторяющиеся ссылки, сохраняя порядок
func compactURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	seen := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// PropertyForm - форма создания и редактирования объявления
type PropertyForm struct {
	mutex sync.Mutex

	api     port.PropertiesAPIPort
	uploads port.UploadsAPIPort
	audit   port.AuditTrailPort

	id              string
	values          domain.PropertyFormValues
	loading         bool
	uploadingImages bool
	uploadingVideo  bool
	errMsg          string
	generation      uint64
}

func NewPropertyForm(api port.PropertiesAPIPort, uploads port.UploadsAPIPort, audit port.AuditTrailPort) *PropertyForm {
	return &PropertyForm{
		api:     api,
		uploads: uploads,
		audit:   audit,
		values:  NewPropertyFormValues(),
	}
}

// Open сбрасывает форму. Для id != "" объявление загружается с сервера,
// при этом ответ на более ранний Open отбрасывается.
func (f *PropertyForm) Open(ctx context.Context, id string) error {
	f.mutex.Lock()
	f.generation++
	gen := f.generation
	f.id = id
	f.values = NewPropertyFormValues()
	f.errMsg = ""
	f.loading = id != ""
	f.mutex.Unlock()

	if id == "" {
		return nil
	}

	property, err := f.api.GetProperty(ctx, id)

	f.mutex.Lock()
	defer f.mutex.Unlock()
	if gen != f.generation {
		return nil
	}
	f.loading = false
	if err != nil {
		f.errMsg = domain.ErrorMessage(err, domain.MsgPropertyFailed)
		contextkeys.LoggerFromContext(ctx).Warn("Failed to load property", port.Fields{"component": "PropertyForm", "property_id": id, "error": err.Error()})
		return err
	}
	if property != nil {
		f.values = FormValuesFromProperty(*property)
	}
	return nil
}

// Save создает (id == "") или полностью обновляет объявление
func (f *PropertyForm) Save(ctx context.Context, id string, values domain.PropertyFormValues) (*domain.Property, error) {
	if values.Images == nil {
		values.Images = []string{}
	}

	f.mutex.Lock()
	f.generation++
	f.id = id
	f.values = values
	f.loading = true
	f.errMsg = ""
	f.mutex.Unlock()

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "PropertyForm", "property_id": id})

	saved, err := f.save(ctx, id, values)

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.loading = false
	if err != nil {
		f.errMsg = domain.ErrorMessage(err, domain.MsgSaveFailed)
		logger.Warn("Failed to save property", port.Fields{"error": err.Error()})
		return nil, err
	}

	action := domain.ActionPropertyCreated
	if id != "" {
		action = domain.ActionPropertyUpdated
	}
	entityID := id
	if saved != nil && saved.ID != "" {
		entityID = saved.ID
		f.id = saved.ID
	}
	logger.Info("Property saved", port.Fields{"action": action})
	recordAction(ctx, f.audit, action, domain.EntityProperty, entityID, map[string]any{"title": strings.TrimSpace(values.Title)})
	return saved, nil
}

func (f *PropertyForm) save(ctx context.Context, id string, values domain.PropertyFormValues) (*domain.Property, error) {
	input, err := BuildPropertyInput(values)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return f.api.CreateProperty(ctx, input)
	}
	return f.api.UpdateProperty(ctx, id, input)
}

// UploadImages загружает файлы и дописывает новые ссылки к изображениям формы
func (f *PropertyForm) UploadImages(ctx context.Context, files []domain.UploadFile) ([]string, error) {
	if len(files) == 0 {
		return nil, domain.NewValidationError("No files selected")
	}

	f.mutex.Lock()
	f.uploadingImages = true
	f.errMsg = ""
	f.mutex.Unlock()

	urls, err := f.uploads.UploadImages(ctx, files)
	if err == nil && len(urls) == 0 {
		err = domain.NewRequestError(200, domain.MsgUploadFailed)
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.uploadingImages = false
	if err != nil {
		f.errMsg = domain.ErrorMessage(err, domain.MsgImageUploadFailed)
		return nil, err
	}
	f.values.Images = compactURLs(append(f.values.Images, urls...))
	return urls, nil
}

// UploadVideo загружает видео и подставляет его ссылку в форму
func (f *PropertyForm) UploadVideo(ctx context.Context, file domain.UploadFile) (string, error) {
	f.mutex.Lock()
	f.uploadingVideo = true
	f.errMsg = ""
	f.mutex.Unlock()

	url, err := f.uploads.UploadVideo(ctx, file)
	if err == nil && url == "" {
		err = domain.NewRequestError(200, domain.MsgUploadFailed)
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.uploadingVideo = false
	if err != nil {
		f.errMsg = domain.ErrorMessage(err, domain.MsgVideoUploadFailed)
		return "", err
	}
	f.values.VideoURL = url
	return url, nil
}

func (f *PropertyForm) Snapshot() domain.PropertyFormState {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	values := f.values
	values.Images = append([]string{}, f.values.Images...)
	return domain.PropertyFormState{
		ID:                f.id,
		IsEdit:            f.id != "",
		Values:            values,
		IsLoading:         f.loading,
		IsUploadingImages: f.uploadingImages,
		IsUploadingVideo:  f.uploadingVideo,
		Error:             f.errMsg,
	}
}
