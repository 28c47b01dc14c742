package usecase

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"context"
	"slices"
	"sync"
)

// Dashboard - агрегаты за выбранный период. Устаревшие ответы отбрасываются
// по номеру поколения, как и в списках.
type Dashboard struct {
	mutex sync.Mutex
	api   port.StatsAPIPort

	days       int
	stats      *domain.Stats
	loading    bool
	errMsg     string
	generation uint64
}

func NewDashboard(api port.StatsAPIPort) *Dashboard {
	return &Dashboard{api: api, days: domain.DefaultStatsDays}
}

// SetDays меняет период и перезагружает статистику
func (d *Dashboard) SetDays(ctx context.Context, days int) error {
	if !slices.Contains(domain.StatsPeriods, days) {
		return domain.NewValidationError("days must be one of %v", domain.StatsPeriods)
	}
	d.mutex.Lock()
	d.days = days
	d.mutex.Unlock()
	return d.Reload(ctx)
}

func (d *Dashboard) Reload(ctx context.Context) error {
	d.mutex.Lock()
	d.generation++
	gen, days := d.generation, d.days
	d.loading = true
	d.errMsg = ""
	d.mutex.Unlock()

	stats, err := d.api.FetchStats(ctx, days)

	d.mutex.Lock()
	defer d.mutex.Unlock()
	if gen != d.generation {
		return nil
	}
	d.loading = false

	if err != nil {
		// прошлые цифры остаются на экране вместе с баннером
		d.errMsg = domain.ErrorMessage(err, domain.MsgStatsFailed)
		contextkeys.LoggerFromContext(ctx).Warn("Failed to load stats", port.Fields{"component": "Dashboard", "days": days, "error": err.Error()})
		return err
	}
	d.stats = stats
	return nil
}

func (d *Dashboard) Snapshot() domain.DashboardState {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	state := domain.DashboardState{
		Days:      d.days,
		Periods:   slices.Clone(domain.StatsPeriods),
		IsLoading: d.loading,
		Error:     d.errMsg,
	}
	if d.stats != nil {
		stats := *d.stats
		state.Stats = &stats
	}
	return state
}
