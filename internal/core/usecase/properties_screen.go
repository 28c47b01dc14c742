package usecase

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"context"
	"strings"
)

// ListPageSize - размер страницы всех экранов со списками
const ListPageSize = 50

// PropertiesScreen - таблица объявлений с фильтрами и удалением
type PropertiesScreen struct {
	*ListView[domain.Property, domain.PropertyFilters]

	api   port.PropertiesAPIPort
	audit port.AuditTrailPort
}

func NewPropertiesScreen(api port.PropertiesAPIPort, audit port.AuditTrailPort) *PropertiesScreen {
	s := &PropertiesScreen{api: api, audit: audit}
	s.ListView = NewListView[domain.Property, domain.PropertyFilters]("properties", s.fetch, propertyID, domain.MsgPropertiesFailed)
	return s
}

func propertyID(p domain.Property) string { return p.ID }

// PropertySearchParams - параметры поиска объявлений в порядке отправки
func PropertySearchParams(f domain.PropertyFilters, page int) domain.Params {
	return domain.Params{}.
		Set("q", strings.TrimSpace(f.Q)).
		Set("status", f.Status).
		Set("listingType", f.ListingType).
		Set("propertyType", f.PropertyType).
		Set("limit", ListPageSize).
		Set("page", page)
}

// fetch: без фильтров используется обычный список, он не постраничный
func (s *PropertiesScreen) fetch(ctx context.Context, f domain.PropertyFilters, page int) (*domain.Page[domain.Property], error) {
	if f.IsEmpty() {
		return s.api.ListProperties(ctx)
	}
	return s.api.SearchProperties(ctx, PropertySearchParams(f, page))
}

// Delete удаляет объявление и убирает строку только после ответа сервера
func (s *PropertiesScreen) Delete(ctx context.Context, id string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "PropertiesScreen", "property_id": id})

	s.SetError("")
	if err := s.api.DeleteProperty(ctx, id); err != nil {
		s.SetError(domain.ErrorMessage(err, domain.MsgDeleteFailed))
		logger.Warn("Failed to delete property", port.Fields{"error": err.Error()})
		return err
	}

	s.UpdateItems(func(items []domain.Property) []domain.Property {
		return removeByID(items, id, propertyID)
	})
	logger.Info("Property deleted", nil)
	recordAction(ctx, s.audit, domain.ActionPropertyDeleted, domain.EntityProperty, id, nil)
	return nil
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
