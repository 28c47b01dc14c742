package usecase

import (
	"admin-console/internal/core/domain"
	"context"
	"sync"
)

type fakePropertiesAPI struct {
	mu sync.Mutex

	listCalls   int
	searchCalls []domain.Params
	deleted     []string

	list        func(ctx context.Context) (*domain.Page[domain.Property], error)
	search      func(ctx context.Context, params domain.Params) (*domain.Page[domain.Property], error)
	get         func(ctx context.Context, id string) (*domain.Property, error)
	create      func(ctx context.Context, input domain.PropertyInput) (*domain.Property, error)
	update      func(ctx context.Context, id string, input domain.PropertyInput) (*domain.Property, error)
	deleteFn    func(ctx context.Context, id string) error
	setFeatured func(ctx context.Context, id string, isFeatured bool) (*domain.Property, error)
}

func (f *fakePropertiesAPI) ListProperties(ctx context.Context) (*domain.Page[domain.Property], error) {
	f.mu.Lock()
	f.listCalls++
	f.mu.Unlock()
	if f.list == nil {
		return &domain.Page[domain.Property]{Items: []domain.Property{}}, nil
	}
	return f.list(ctx)
}

func (f *fakePropertiesAPI) SearchProperties(ctx context.Context, params domain.Params) (*domain.Page[domain.Property], error) {
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, params)
	f.mu.Unlock()
	if f.search == nil {
		return &domain.Page[domain.Property]{Items: []domain.Property{}}, nil
	}
	return f.search(ctx, params)
}

func (f *fakePropertiesAPI) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	return f.get(ctx, id)
}

func (f *fakePropertiesAPI) CreateProperty(ctx context.Context, input domain.PropertyInput) (*domain.Property, error) {
	return f.create(ctx, input)
}

func (f *fakePropertiesAPI) UpdateProperty(ctx context.Context, id string, input domain.PropertyInput) (*domain.Property, error) {
	return f.update(ctx, id, input)
}

func (f *fakePropertiesAPI) DeleteProperty(ctx context.Context, id string) error {
	f.mu.Lock()
	f.deleted = append(f.deleted, id)
	f.mu.Unlock()
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

func (f *fakePropertiesAPI) SetPropertyFeatured(ctx context.Context, id string, isFeatured bool) (*domain.Property, error) {
	return f.setFeatured(ctx, id, isFeatured)
}

type fakeUsersAPI struct {
	search     func(ctx context.Context, params domain.Params) (*domain.Page[domain.User], error)
	setBlocked func(ctx context.Context, id string, isBlocked bool) (*domain.User, error)
}

func (f *fakeUsersAPI) SearchUsers(ctx context.Context, params domain.Params) (*domain.Page[domain.User], error) {
	return f.search(ctx, params)
}

func (f *fakeUsersAPI) SetUserBlocked(ctx context.Context, id string, isBlocked bool) (*domain.User, error) {
	return f.setBlocked(ctx, id, isBlocked)
}

type fakeRatingsAPI struct {
	calls  []domain.Params
	search func(ctx context.Context, params domain.Params) (*domain.Page[domain.Rating], error)
}

func (f *fakeRatingsAPI) SearchRatings(ctx context.Context, params domain.Params) (*domain.Page[domain.Rating], error) {
	f.calls = append(f.calls, params)
	return f.search(ctx, params)
}

type fakeQueriesAPI struct {
	calls []domain.Params
}

func (f *fakeQueriesAPI) SearchQueries(ctx context.Context, params domain.Params) (*domain.Page[domain.Query], error) {
	f.calls = append(f.calls, params)
	return &domain.Page[domain.Query]{Items: []domain.Query{{ID: "q1", Name: "Asha"}}, Meta: &domain.PageMeta{Page: 1, Pages: 3, Total: 120}}, nil
}

type fakeStatsAPI struct {
	fetch func(ctx context.Context, days int) (*domain.Stats, error)
}

func (f *fakeStatsAPI) FetchStats(ctx context.Context, days int) (*domain.Stats, error) {
	return f.fetch(ctx, days)
}

type fakeUploadsAPI struct {
	images func(ctx context.Context, files []domain.UploadFile) ([]string, error)
	video  func(ctx context.Context, file domain.UploadFile) (string, error)
}

func (f *fakeUploadsAPI) UploadImage(ctx context.Context, file domain.UploadFile) (string, error) {
	urls, err := f.images(ctx, []domain.UploadFile{file})
	if err != nil || len(urls) == 0 {
		return "", err
	}
	return urls[0], nil
}

func (f *fakeUploadsAPI) UploadImages(ctx context.Context, files []domain.UploadFile) ([]string, error) {
	return f.images(ctx, files)
}

func (f *fakeUploadsAPI) UploadVideo(ctx context.Context, file domain.UploadFile) (string, error) {
	return f.video(ctx, file)
}

type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AdminActionEvent
	err    error
}

func (a *recordingAudit) PublishAdminAction(ctx context.Context, event domain.AdminActionEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
	return a.err
}

func (a *recordingAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Action)
	}
	return out
}

func page[T any](items ...T) *domain.Page[T] {
	if items == nil {
		items = []T{}
	}
	return &domain.Page[T]{Items: items, Meta: &domain.PageMeta{Page: 1, Pages: 1, Total: len(items)}}
}

func price(v float64) *float64 { return &v }
