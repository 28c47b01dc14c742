package usecase

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"context"
	"sync"
)

// PageFetcher загружает одну страницу списка по примененным фильтрам
type PageFetcher[T any, F any] func(ctx context.Context, filters F, page int) (*domain.Page[T], error)

// ListView - состояние экрана со списком, фильтрами и пагинацией.
//
// Каждая загрузка получает номер поколения. Результат применяется,
// только если его поколение последнее из выданных, поэтому ответ
// медленного старого запроса не перетирает данные нового.
type ListView[T any, F any] struct {
	mutex sync.Mutex

	name     string
	fetch    PageFetcher[T, F]
	fallback string
	idOf     func(T) string

	live       F
	applied    F
	page       int
	items      []T
	meta       *domain.PageMeta
	loading    bool
	errMsg     string
	selectedID string
	generation uint64
}

// NewListView создает список. idOf нужен для выбора строки и точечных правок,
// fallback - текст ошибки, если сервер не прислал свой.
func NewListView[T any, F any](name string, fetch PageFetcher[T, F], idOf func(T) string, fallback string) *ListView[T, F] {
	return &ListView[T, F]{
		name:     name,
		fetch:    fetch,
		fallback: fallback,
		idOf:     idOf,
		page:     1,
		items:    []T{},
	}
}

// SetLiveFilters обновляет значения полей ввода, запрос не выполняется
func (v *ListView[T, F]) SetLiveFilters(filters F) {
	v.mutex.Lock()
	v.live = filters
	v.mutex.Unlock()
}

// Submit применяет введенные фильтры и загружает первую страницу
func (v *ListView[T, F]) Submit(ctx context.Context) error {
	v.mutex.Lock()
	v.applied = v.live
	v.page = 1
	v.mutex.Unlock()
	return v.load(ctx)
}

// Apply сразу применяет фильтры (выпадающие списки без кнопки поиска)
func (v *ListView[T, F]) Apply(ctx context.Context, filters F) error {
	v.mutex.Lock()
	v.live = filters
	v.applied = filters
	v.page = 1
	v.mutex.Unlock()
	return v.load(ctx)
}

// Reset очищает и введенные, и примененные фильтры
func (v *ListView[T, F]) Reset(ctx context.Context) error {
	var empty F
	return v.Apply(ctx, empty)
}

// SetPage меняет только страницу, примененные фильтры остаются
func (v *ListView[T, F]) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	v.mutex.Lock()
	v.page = page
	v.mutex.Unlock()
	return v.load(ctx)
}

// NextPage ничего не делает, если следующей страницы нет
func (v *ListView[T, F]) NextPage(ctx context.Context) error {
	v.mutex.Lock()
	if !v.meta.CanNext() {
		v.mutex.Unlock()
		return nil
	}
	v.page++
	v.mutex.Unlock()
	return v.load(ctx)
}

func (v *ListView[T, F]) PrevPage(ctx context.Context) error {
	v.mutex.Lock()
	if !v.meta.CanPrev() || v.page <= 1 {
		v.mutex.Unlock()
		return nil
	}
	v.page--
	v.mutex.Unlock()
	return v.load(ctx)
}

// Reload повторяет запрос с текущими фильтрами и страницей
func (v *ListView[T, F]) Reload(ctx context.Context) error {
	return v.load(ctx)
}

func (v *ListView[T, F]) load(ctx context.Context) error {
	v.mutex.Lock()
	v.generation++
	gen := v.generation
	filters, page := v.applied, v.page
	v.loading = true
	v.errMsg = ""
	v.mutex.Unlock()

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "ListView",
		"view":       v.name,
		"page":       page,
		"generation": gen,
	})
	logger.Debug("Loading list page", nil)

	result, err := v.fetch(ctx, filters, page)

	v.mutex.Lock()
	defer v.mutex.Unlock()

	if gen != v.generation {
		logger.Debug("Discarding stale list result", port.Fields{"latest_generation": v.generation})
		return nil
	}

	v.loading = false
	if err != nil {
		v.items = []T{}
		v.meta = nil
		v.selectedID = ""
		v.errMsg = domain.ErrorMessage(err, v.fallback)
		logger.Warn("List page failed to load", port.Fields{"error": err.Error()})
		return err
	}

	v.items = []T{}
	v.meta = nil
	if result != nil {
		if result.Items != nil {
			v.items = result.Items
		}
		v.meta = result.Meta
	}
	if v.selectedID != "" && v.indexOf(v.selectedID) < 0 {
		v.selectedID = ""
	}
	return nil
}

// Select выбирает строку для просмотра деталей
func (v *ListView[T, F]) Select(id string) (T, bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	var zero T
	idx := v.indexOf(id)
	if idx < 0 {
		return zero, false
	}
	v.selectedID = id
	return v.items[idx], true
}

func (v *ListView[T, F]) ClearSelection() {
	v.mutex.Lock()
	v.selectedID = ""
	v.mutex.Unlock()
}

// Find возвращает копию строки с данным id
func (v *ListView[T, F]) Find(id string) (T, bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	var zero T
	idx := v.indexOf(id)
	if idx < 0 {
		return zero, false
	}
	return v.items[idx], true
}

// UpdateItems атомарно заменяет строки результатом mutate.
// mutate получает копию и не должна вызывать методы ListView.
func (v *ListView[T, F]) UpdateItems(mutate func(items []T) []T) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	next := mutate(append([]T(nil), v.items...))
	if next == nil {
		next = []T{}
	}
	v.items = next
	if v.selectedID != "" && v.indexOf(v.selectedID) < 0 {
		v.selectedID = ""
	}
}

// SetError показывает сообщение в баннере экрана
func (v *ListView[T, F]) SetError(msg string) {
	v.mutex.Lock()
	v.errMsg = msg
	v.mutex.Unlock()
}

func (v *ListView[T, F]) Snapshot() domain.ListState[T, F] {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	snap := domain.ListState[T, F]{
		LiveFilters:    v.live,
		AppliedFilters: v.applied,
		Page:           v.page,
		Items:          append([]T{}, v.items...),
		IsLoading:      v.loading,
		Error:          v.errMsg,
		CanPrev:        v.meta.CanPrev(),
		CanNext:        v.meta.CanNext(),
	}
	if v.meta != nil {
		meta := *v.meta
		snap.Meta = &meta
	}
	if idx := v.indexOf(v.selectedID); v.selectedID != "" && idx >= 0 {
		selected := v.items[idx]
		snap.Selected = &selected
	}
	return snap
}

// indexOf вызывается под mutex
func (v *ListView[T, F]) indexOf(id string) int {
	if v.idOf == nil || id == "" {
		return -1
	}
	for i, item := range v.items {
		if v.idOf(item) == id {
			return i
		}
	}
	return -1
}
