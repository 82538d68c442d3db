package repositories

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/shiftsync/shiftsync_backend/internal/models"
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

const announcementsCollection = "announcements"

type AnnouncementRepository struct {
	store store.Store
}

func NewAnnouncementRepository(s store.Store) *AnnouncementRepository {
	return &AnnouncementRepository{store: s}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	return r.store.Set(ctx, announcementsCollection, a.ID, a)
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, announcementsCollection, id)
}

// List — объявления от новых к старым.
func (r *AnnouncementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	docs, err := r.store.List(ctx, announcementsCollection)
	if err != nil {
		return nil, err
	}
	items := make([]models.Announcement, 0, len(docs))
	for _, doc := range docs {
		var a models.Announcement
		if err := json.Unmarshal(doc, &a); err != nil {
			continue
		}
		items = append(items, a)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})
	return items, nil
}
