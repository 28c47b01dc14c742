package usecase

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"context"
	"strings"
	"sync"
)

const featuredPageSize = 100

// FeaturedScreen держит два списка: "сейчас в избранном" и "все объявления" с поиском.
// В первом списке лежат только объявления с isFeatured=true.
type FeaturedScreen struct {
	featured *ListView[domain.Property, struct{}]
	all      *ListView[domain.Property, domain.FeaturedFilters]

	api   port.PropertiesAPIPort
	audit port.AuditTrailPort
}

func NewFeaturedScreen(api port.PropertiesAPIPort, audit port.AuditTrailPort) *FeaturedScreen {
	s := &FeaturedScreen{api: api, audit: audit}
	s.featured = NewListView[domain.Property, struct{}]("featured", s.fetchFeatured, propertyID, domain.MsgFeaturedFailed)
	s.all = NewListView[domain.Property, domain.FeaturedFilters]("featured_search", s.fetchAll, propertyID, domain.MsgPropertiesFailed)
	return s
}

func FeaturedListParams() domain.Params {
	return domain.Params{}.
		Set("isFeatured", true).
		Set("page", 1).
		Set("limit", featuredPageSize)
}

func FeaturedSearchParams(f domain.FeaturedFilters) domain.Params {
	return domain.Params{}.
		Set("q", strings.TrimSpace(f.Q)).
		Set("page", 1).
		Set("limit", ListPageSize)
}

func (s *FeaturedScreen) fetchFeatured(ctx context.Context, _ struct{}, _ int) (*domain.Page[domain.Property], error) {
	return s.api.SearchProperties(ctx, FeaturedListParams())
}

func (s *FeaturedScreen) fetchAll(ctx context.Context, f domain.FeaturedFilters, _ int) (*domain.Page[domain.Property], error) {
	return s.api.SearchProperties(ctx, FeaturedSearchParams(f))
}

func (s *FeaturedScreen) SetLiveQuery(q string) {
	s.all.SetLiveFilters(domain.FeaturedFilters{Q: q})
}

// Search применяет строку поиска ко второму списку
func (s *FeaturedScreen) Search(ctx context.Context) error {
	return s.all.Submit(ctx)
}

func (s *FeaturedScreen) Reset(ctx context.Context) error {
	return s.all.Reset(ctx)
}

// Load загружает оба списка параллельно. Ошибки уже лежат в баннерах,
// наружу возвращается первая.
func (s *FeaturedScreen) Load(ctx context.Context) error {
	var (
		wg          sync.WaitGroup
		featuredErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		featuredErr = s.featured.Reload(ctx)
	}()
	allErr := s.all.Reload(ctx)
	wg.Wait()

	if featuredErr != nil {
		return featuredErr
	}
	return allErr
}

// SetFeatured переключает флаг с мгновенным отображением в обоих списках.
// Снятие флага сразу убирает объявление из первого списка, а установка
// добавляет его туда только после ответа сервера.
func (s *FeaturedScreen) SetFeatured(ctx context.Context, id string, featured bool) (*domain.Property, error) {
	if id == "" {
		return nil, domain.NewValidationError("Property id is required")
	}

	// позиция строки, убранной из первого списка, для отката
	var (
		removed   *domain.Property
		removedAt int
	)

	setFlag := func(items []domain.Property, id string, value bool) []domain.Property {
		for i := range items {
			if items[i].ID == id {
				items[i].IsFeatured = value
			}
		}
		return items
	}

	toggle := OptimisticToggle[domain.Property]{
		Name: "property_featured",
		Capture: func(id string) (bool, bool) {
			if p, ok := s.all.Find(id); ok {
				return p.IsFeatured, true
			}
			if p, ok := s.featured.Find(id); ok {
				return p.IsFeatured, true
			}
			return false, false
		},
		Apply: func(id string, value bool) {
			s.all.UpdateItems(func(items []domain.Property) []domain.Property {
				return setFlag(items, id, value)
			})
			s.featured.UpdateItems(func(items []domain.Property) []domain.Property {
				if value {
					return setFlag(items, id, value)
				}
				for i := range items {
					if items[i].ID == id {
						p := items[i]
						removed, removedAt = &p, i
						return append(items[:i:i], items[i+1:]...)
					}
				}
				return items
			})
		},
		Mutate: func(ctx context.Context, id string, value bool) (*domain.Property, error) {
			return s.api.SetPropertyFeatured(ctx, id, value)
		},
		Reconcile: func(id string, confirmed *domain.Property) {
			isFeatured := confirmed != nil && confirmed.IsFeatured
			s.featured.UpdateItems(func(items []domain.Property) []domain.Property {
				without := removeByID(items, id, propertyID)
				if !isFeatured {
					return without
				}
				entity := *confirmed
				if entity.ID == "" {
					entity.ID = id
				}
				return append([]domain.Property{entity}, without...)
			})
			s.all.UpdateItems(func(items []domain.Property) []domain.Property {
				return setFlag(items, id, isFeatured)
			})
		},
		Revert: func(id string, previous bool) {
			s.all.UpdateItems(func(items []domain.Property) []domain.Property {
				return setFlag(items, id, previous)
			})
			s.featured.UpdateItems(func(items []domain.Property) []domain.Property {
				if removed == nil {
					return setFlag(items, id, previous)
				}
				for _, item := range items {
					if item.ID == id {
						return setFlag(items, id, previous)
					}
				}
				restored := *removed
				restored.IsFeatured = previous
				at := min(removedAt, len(items))
				return append(items[:at:at], append([]domain.Property{restored}, items[at:]...)...)
			})
		},
		ClearErrors: func() {
			s.featured.SetError("")
			s.all.SetError("")
		},
		Report: func(message string) {
			s.featured.SetError(message)
			s.all.SetError(message)
		},
		Fallback: domain.MsgUpdateFailed,
	}

	property, err := toggle.Run(ctx, id, featured)
	if err != nil {
		return nil, err
	}

	confirmed := property != nil && property.IsFeatured
	contextkeys.LoggerFromContext(ctx).Info("Property featured flag changed", port.Fields{"component": "FeaturedScreen", "property_id": id, "is_featured": confirmed})
	recordAction(ctx, s.audit, domain.ActionPropertyFeatured, domain.EntityProperty, id, map[string]any{"isFeatured": confirmed})
	return property, nil
}

func (s *FeaturedScreen) Snapshot() domain.FeaturedState {
	return domain.FeaturedState{
		Featured: s.featured.Snapshot(),
		All:      s.all.Snapshot(),
	}
}
