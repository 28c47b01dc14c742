package usecase

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"context"
)

// OptimisticToggle - переключение булева флага сущности с немедленным
// отображением результата и откатом при ошибке.
//
// Порядок: Capture -> ClearErrors -> Apply(target) -> Mutate ->
// Reconcile(ответ сервера) или Revert(previous) + Report(сообщение).
// Перекрывающиеся переключения одной сущности не упорядочиваются:
// побеждает ответ, пришедший последним.
type OptimisticToggle[E any] struct {
	Name string

	// Capture возвращает текущее значение флага. found=false, если сущности нет ни в одном списке.
	Capture func(id string) (previous bool, found bool)
	// Apply показывает целевое значение во всех списках экрана
	Apply func(id string, value bool)
	// Mutate отправляет изменение на сервер и возвращает подтвержденную сущность
	Mutate func(ctx context.Context, id string, value bool) (*E, error)
	// Reconcile приводит списки к значению, которое сохранил сервер
	Reconcile func(id string, confirmed *E)
	// Revert возвращает прежнее значение во все списки
	Revert func(id string, previous bool)

	// ClearErrors и Report работают со всеми баннерами ошибок экрана
	ClearErrors func()
	Report      func(message string)

	Fallback string
}

// Run выполняет переключение. Пустой id игнорируется.
func (o OptimisticToggle[E]) Run(ctx context.Context, id string, target bool) (*E, error) {
	if id == "" {
		return nil, nil
	}

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "OptimisticToggle",
		"toggle":    o.Name,
		"entity_id": id,
		"target":    target,
	})

	previous, found := o.Capture(id)
	if !found {
		previous = !target
	}

	if o.ClearErrors != nil {
		o.ClearErrors()
	}
	o.Apply(id, target)

	confirmed, err := o.Mutate(ctx, id, target)
	if err != nil {
		o.Revert(id, previous)
		message := domain.ErrorMessage(err, o.Fallback)
		if o.Report != nil {
			o.Report(message)
		}
		logger.Warn("Optimistic toggle rolled back", port.Fields{"error": err.Error(), "previous": previous})
		return nil, err
	}

	o.Reconcile(id, confirmed)
	logger.Debug("Optimistic toggle confirmed", nil)
	return confirmed, nil
}
