package usecase

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"context"
	"strconv"
	"strings"
)

// QueriesScreen - заявки пользователей, только просмотр
type QueriesScreen struct {
	*ListView[domain.Query, domain.QueryFilters]
	api port.QueriesAPIPort
}

func NewQueriesScreen(api port.QueriesAPIPort) *QueriesScreen {
	s := &QueriesScreen{api: api}
	s.ListView = NewListView[domain.Query, domain.QueryFilters]("queries", s.fetch, func(q domain.Query) string { return q.ID }, domain.MsgQueriesFailed)
	return s
}

func QuerySearchParams(f domain.QueryFilters, page int) domain.Params {
	return domain.Params{}.
		Set("q", strings.TrimSpace(f.Q)).
		Set("status", f.Status).
		Set("from", f.From).
		Set("to", f.To).
		Set("page", page).
		Set("limit", ListPageSize)
}

func (s *QueriesScreen) fetch(ctx context.Context, f domain.QueryFilters, page int) (*domain.Page[domain.Query], error) {
	return s.api.SearchQueries(ctx, QuerySearchParams(f, page))
}

// RatingsScreen - отзывы. Фильтр по звездам применяется сразу при выборе.
type RatingsScreen struct {
	*ListView[domain.Rating, domain.RatingFilters]
	api port.RatingsAPIPort
}

func NewRatingsScreen(api port.RatingsAPIPort) *RatingsScreen {
	s := &RatingsScreen{api: api}
	s.ListView = NewListView[domain.Rating, domain.RatingFilters]("ratings", s.fetch, func(r domain.Rating) string { return r.ID }, domain.MsgRatingsFailed)
	return s
}

func RatingSearchParams(f domain.RatingFilters, page int) domain.Params {
	return domain.Params{}.
		Set("stars", f.Stars).
		Set("page", page).
		Set("limit", ListPageSize)
}

func (s *RatingsScreen) fetch(ctx context.Context, f domain.RatingFilters, page int) (*domain.Page[domain.Rating], error) {
	return s.api.SearchRatings(ctx, RatingSearchParams(f, page))
}

// SetStars принимает "" (все) или число от 1 до 5
func (s *RatingsScreen) SetStars(ctx context.Context, stars string) error {
	stars = strings.TrimSpace(stars)
	if stars != "" {
		n, err := strconv.Atoi(stars)
		if err != nil || n < 1 || n > 5 {
			return domain.NewValidationError("Stars must be between 1 and 5")
		}
	}
	return s.Apply(ctx, domain.RatingFilters{Stars: stars})
}

// UsersScreen - пользователи платформы с блокировкой
type UsersScreen struct {
	*ListView[domain.User, domain.UserFilters]
	api   port.UsersAPIPort
	audit port.AuditTrailPort
}

func NewUsersScreen(api port.UsersAPIPort, audit port.AuditTrailPort) *UsersScreen {
	s := &UsersScreen{api: api, audit: audit}
	s.ListView = NewListView[domain.User, domain.UserFilters]("users", s.fetch, userID, domain.MsgUsersFailed)
	return s
}

func userID(u domain.User) string { return u.ID }

func UserSearchParams(f domain.UserFilters, page int) domain.Params {
	return domain.Params{}.
		Set("q", strings.TrimSpace(f.Q)).
		Set("verified", f.Verified).
		Set("page", page).
		Set("limit", ListPageSize)
}

func (s *UsersScreen) fetch(ctx context.Context, f domain.UserFilters, page int) (*domain.Page[domain.User], error) {
	return s.api.SearchUsers(ctx, UserSearchParams(f, page))
}

// SetBlocked блокирует или разблокирует пользователя с мгновенным отображением.
// Выбранный пользователь берется из той же таблицы, поэтому обновляется вместе с ней.
func (s *UsersScreen) SetBlocked(ctx context.Context, id string, blocked bool) (*domain.User, error) {
	if id == "" {
		return nil, domain.NewValidationError("User id is required")
	}
	setFlag := func(id string, value bool) {
		s.UpdateItems(func(items []domain.User) []domain.User {
			for i := range items {
				if items[i].ID == id {
					items[i].IsBlocked = value
				}
			}
			return items
		})
	}

	toggle := OptimisticToggle[domain.User]{
		Name: "user_blocked",
		Capture: func(id string) (bool, bool) {
			u, ok := s.Find(id)
			return u.IsBlocked, ok
		},
		Apply: setFlag,
		Mutate: func(ctx context.Context, id string, value bool) (*domain.User, error) {
			return s.api.SetUserBlocked(ctx, id, value)
		},
		Reconcile: func(id string, confirmed *domain.User) {
			if confirmed == nil {
				return
			}
			// сервер вернул пользователя без id - берем только флаг
			if confirmed.ID == "" {
				setFlag(id, confirmed.IsBlocked)
				return
			}
			s.UpdateItems(func(items []domain.User) []domain.User {
				for i := range items {
					if items[i].ID == id {
						items[i] = *confirmed
					}
				}
				return items
			})
		},
		Revert:      setFlag,
		ClearErrors: func() { s.SetError("") },
		Report:      s.SetError,
		Fallback:    domain.MsgUpdateUserFailed,
	}

	user, err := toggle.Run(ctx, id, blocked)
	if err != nil {
		return nil, err
	}
	contextkeys.LoggerFromContext(ctx).Info("User block flag changed", port.Fields{"component": "UsersScreen", "user_id": id, "blocked": blocked})
	recordAction(ctx, s.audit, domain.ActionUserBlocked, domain.EntityUser, id, map[string]any{"isBlocked": blocked})
	return user, nil
}
