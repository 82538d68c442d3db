package repositories

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/shiftsync/shiftsync_backend/internal/models"
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

const shiftsCollection = "shifts"

type ShiftRepository struct {
	store store.Store
}

func NewShiftRepository(s store.Store) *ShiftRepository {
	return &ShiftRepository{store: s}
}

func (r *ShiftRepository) Create(ctx context.Context, shift *models.Shift) error {
	return r.store.Set(ctx, shiftsCollection, shift.ID, shift)
}

func (r *ShiftRepository) GetByID(ctx context.Context, id string) (*models.Shift, error) {
	var shift models.Shift
	if err := r.store.Get(ctx, shiftsCollection, id, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

// Update читает документ, применяет fn и записывает результат обратно.
// Все изменения смены (поля и списки участников) идут через эту точку,
// поэтому каждая операция затрагивает ровно один документ.
func (r *ShiftRepository) Update(ctx context.Context, id string, fn func(*models.Shift) error) error {
	shift, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := fn(shift); err != nil {
		return err
	}
	return r.store.Set(ctx, shiftsCollection, id, shift)
}

func (r *ShiftRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, shiftsCollection, id)
}

// listAll декодирует все смены; битые документы пропускаются, а не валят
// выборку целиком.
func (r *ShiftRepository) listAll(ctx context.Context) ([]models.Shift, error) {
	docs, err := r.store.List(ctx, shiftsCollection)
	if err != nil {
		return nil, err
	}
	shifts := make([]models.Shift, 0, len(docs))
	for _, doc := range docs {
		var shift models.Shift
		if err := json.Unmarshal(doc, &shift); err != nil {
			continue
		}
		shifts = append(shifts, shift)
	}
	return shifts, nil
}

// ListInRange — смены с началом в [from, to), отсортированные по startTime.
func (r *ShiftRepository) ListInRange(ctx context.Context, from, to int64) ([]models.Shift, error) {
	all, err := r.listAll(ctx)
	if err != nil {
		return nil, err
	}
	shifts := make([]models.Shift, 0, len(all))
	for _, s := range all {
		if s.StartTime >= from && s.StartTime < to {
			shifts = append(shifts, s)
		}
	}
	sortByStart(shifts)
	return shifts, nil
}

// ListByDay — смены выбранного дня: полуинтервал [00:00, 24:00).
func (r *ShiftRepository) ListByDay(ctx context.Context, day time.Time) ([]models.Shift, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	return r.ListInRange(ctx, start.UnixMilli(), end.UnixMilli())
}

// ListUpcoming — смены с началом строго после now.
func (r *ShiftRepository) ListUpcoming(ctx context.Context, now int64) ([]models.Shift, error) {
	all, err := r.listAll(ctx)
	if err != nil {
		return nil, err
	}
	shifts := make([]models.Shift, 0, len(all))
	for _, s := range all {
		if s.StartTime > now {
			shifts = append(shifts, s)
		}
	}
	sortByStart(shifts)
	return shifts, nil
}

// ListAssignedSince — смены, где uid утверждён и начало не раньше since.
func (r *ShiftRepository) ListAssignedSince(ctx context.Context, uid string, since int64) ([]models.Shift, error) {
	all, err := r.listAll(ctx)
	if err != nil {
		return nil, err
	}
	shifts := make([]models.Shift, 0, len(all))
	for _, s := range all {
		if s.StartTime >= since && models.ContainsMember(s.Assigned, uid) {
			shifts = append(shifts, s)
		}
	}
	sortByStart(shifts)
	return shifts, nil
}

func sortByStart(shifts []models.Shift) {
	sort.Slice(shifts, func(i, j int) bool {
		return shifts[i].StartTime < shifts[j].StartTime
	})
}
