package repositories

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/shiftsync/shiftsync_backend/internal/models"
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

const (
	usersCollection       = "users"
	credentialsCollection = "credentials"
)

type UserRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	if err := r.store.Get(ctx, usersCollection, uid, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return r.store.Set(ctx, usersCollection, user.UID, user)
}

// Update — частичное обновление профиля через read-modify-write.
func (r *UserRepository) Update(ctx context.Context, uid string, fn func(*models.User) error) error {
	user, err := r.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	if err := fn(user); err != nil {
		return err
	}
	return r.store.Set(ctx, usersCollection, uid, user)
}

// Delete удаляет профиль вместе с учётными данными.
func (r *UserRepository) Delete(ctx context.Context, uid string) error {
	user, err := r.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	if err := r.store.Delete(ctx, usersCollection, uid); err != nil {
		return err
	}
	return r.store.Delete(ctx, credentialsCollection, credentialKey(user.Email))
}

// ListByRole — пользователи с заданной ролью, по имени по алфавиту.
func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	docs, err := r.store.List(ctx, usersCollection)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		var user models.User
		if err := json.Unmarshal(doc, &user); err != nil {
			continue
		}
		if user.Role == role {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].FullName < users[j].FullName
	})
	return users, nil
}

// --- Учётные данные ---
// Документ ключуется email-ом в нижнем регистре: логин нечувствителен
// к регистру адреса.

func credentialKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepository) GetCredentialByEmail(ctx context.Context, email string) (*models.Credential, error) {
	var cred models.Credential
	if err := r.store.Get(ctx, credentialsCollection, credentialKey(email), &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *UserRepository) SaveCredential(ctx context.Context, cred *models.Credential) error {
	return r.store.Set(ctx, credentialsCollection, credentialKey(cred.Email), cred)
}
