// Package signup — запись на смены: классификация состояния пары
// (смена, пользователь) и переходы Request / Cancel / Approve / Deny.
// Каждый переход — одно обновление одного документа смены; списки
// участников ведут себя как множества по uid (добавление без дублей,
// удаление отсутствующего — no-op).
package signup

import (
	"context"
	"errors"

	"github.com/shiftsync/shiftsync_backend/internal/models"
)

// State — состояние пользователя относительно смены. Ровно одно из
// четырёх, вычисляется заново из текущих списков при каждом обращении.
type State int

const (
	StateAssigned State = iota // uid в списке утверждённых
	StatePending               // uid ждёт одобрения
	StateOpen                  // не записан, места ещё есть
	StateFull                  // не записан, мест нет
)

func (s State) String() string {
	switch s {
	case StateAssigned:
		return "assigned"
	case StatePending:
		return "pending"
	case StateOpen:
		return "open"
	default:
		return "full"
	}
}

// Classify определяет состояние. Порядок проверок важен: членство в
// assigned перекрывает pending, вместимость смотрим только для посторонних.
func Classify(shift *models.Shift, uid string) State {
	if models.ContainsMember(shift.Assigned, uid) {
		return StateAssigned
	}
	if models.ContainsMember(shift.Pending, uid) {
		return StatePending
	}
	if shift.IsFull() {
		return StateFull
	}
	return StateOpen
}

var (
	// ErrShiftFull — смена укомплектована; заявка со стороны работника
	// отклоняется здесь, само хранилище вместимость не проверяет.
	ErrShiftFull = errors.New("signup: shift already has the required workers")
)

// ShiftUpdater — точка применения изменений к документу смены.
type ShiftUpdater interface {
	Update(ctx context.Context, id string, fn func(*models.Shift) error) error
}

type Service struct {
	shifts ShiftUpdater
	// enforceCapacity дополнительно запрещает менеджеру одобрять заявки
	// в полную смену. По умолчанию выключено: перебронирование — решение
	// менеджера, а не ошибка системы.
	enforceCapacity bool
}

func NewService(shifts ShiftUpdater, enforceCapacity bool) *Service {
	return &Service{shifts: shifts, enforceCapacity: enforceCapacity}
}

// Request — заявка работника на смену. В полную смену не пускаем;
// повторная заявка и заявка уже утверждённого — no-op (семантика множества).
func (s *Service) Request(ctx context.Context, shiftID string, m models.Member) error {
	return s.shifts.Update(ctx, shiftID, func(shift *models.Shift) error {
		switch Classify(shift, m.ID) {
		case StateAssigned, StatePending:
			return nil
		case StateFull:
			return ErrShiftFull
		}
		shift.Pending = models.AddMember(shift.Pending, m)
		return nil
	})
}

// CancelRequest снимает ещё не одобренную заявку.
func (s *Service) CancelRequest(ctx context.Context, shiftID, uid string) error {
	return s.shifts.Update(ctx, shiftID, func(shift *models.Shift) error {
		shift.Pending = models.RemoveMember(shift.Pending, uid)
		return nil
	})
}

// CancelAssignment снимает утверждённого работника со смены. Заодно чистим
// pending — если записи там нет, удаление ничего не меняет.
func (s *Service) CancelAssignment(ctx context.Context, shiftID, uid string) error {
	return s.shifts.Update(ctx, shiftID, func(shift *models.Shift) error {
		shift.Assigned = models.RemoveMember(shift.Assigned, uid)
		shift.Pending = models.RemoveMember(shift.Pending, uid)
		return nil
	})
}

// Approve переносит работника из pending в assigned одним обновлением.
// Предусловия "заявка всё ещё висит" нет: если конкурирующий Deny уже убрал
// запись, удаление проходит впустую, а добавление всё равно выполняется —
// имя тогда берётся из запроса менеджера.
func (s *Service) Approve(ctx context.Context, shiftID string, m models.Member) error {
	return s.shifts.Update(ctx, shiftID, func(shift *models.Shift) error {
		if s.enforceCapacity && shift.IsFull() && !models.ContainsMember(shift.Assigned, m.ID) {
			return ErrShiftFull
		}
		if pending, ok := models.FindMember(shift.Pending, m.ID); ok {
			m.Name = pending.Name
		}
		shift.Pending = models.RemoveMember(shift.Pending, m.ID)
		shift.Assigned = models.AddMember(shift.Assigned, m)
		return nil
	})
}

// Deny отклоняет заявку: запись уходит из pending, в assigned не попадает.
func (s *Service) Deny(ctx context.Context, shiftID, uid string) error {
	return s.shifts.Update(ctx, shiftID, func(shift *models.Shift) error {
		shift.Pending = models.RemoveMember(shift.Pending, uid)
		return nil
	})
}
