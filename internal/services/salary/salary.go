// Package salary — оценка зарплаты за текущий месяц.
// Чистая агрегация: сумма (конец − начало) в часах × ставка по всем сменам,
// где пользователь утверждён и начало не раньше первого числа месяца.
// Ничего не кэшируется, отчёт считается заново при каждом запросе.
package salary

import (
	"context"
	"time"

	"github.com/shiftsync/shiftsync_backend/internal/models"
)

const msPerHour = 1000 * 60 * 60

type ShiftLister interface {
	ListAssignedSince(ctx context.Context, uid string, since int64) ([]models.Shift, error)
}

type UserGetter interface {
	GetByUID(ctx context.Context, uid string) (*models.User, error)
}

type Service struct {
	shifts ShiftLister
	users  UserGetter
}

func NewService(shifts ShiftLister, users UserGetter) *Service {
	return &Service{shifts: shifts, users: users}
}

// Line — одна смена в отчёте.
type Line struct {
	Shift  models.Shift `json:"shift"`
	Hours  float64      `json:"hours"`
	Amount float64      `json:"amount"`
}

type Report struct {
	UID        string  `json:"uid"`
	FullName   string  `json:"fullName"`
	HourlyRate float64 `json:"hourlyRate"`
	MonthStart int64   `json:"monthStart"`
	Lines      []Line  `json:"lines"`
	Total      float64 `json:"total"`
}

// StartOfMonth — первое число месяца, 00:00 в зоне now.
func StartOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// MonthlyReport строит отчёт на момент now. Отсечка только по началу смены:
// смена, начавшаяся в прошлом месяце, не учитывается вовсе, а начавшаяся в
// этом и перетекающая в следующий учитывается целиком.
func (s *Service) MonthlyReport(ctx context.Context, uid string, now time.Time) (*Report, error) {
	user, err := s.users.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	monthStart := StartOfMonth(now).UnixMilli()
	shifts, err := s.shifts.ListAssignedSince(ctx, uid, monthStart)
	if err != nil {
		return nil, err
	}

	report := &Report{
		UID:        user.UID,
		FullName:   user.FullName,
		HourlyRate: user.HourlyRate,
		MonthStart: monthStart,
		Lines:      make([]Line, 0, len(shifts)),
	}
	for _, shift := range shifts {
		hours := float64(shift.EndTime-shift.StartTime) / msPerHour
		amount := hours * user.HourlyRate
		report.Lines = append(report.Lines, Line{Shift: shift, Hours: hours, Amount: amount})
		report.Total += amount
	}
	return report, nil
}
