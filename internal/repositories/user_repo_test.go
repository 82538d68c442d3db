package repositories

import (
	"context"
	"testing"

	"github.com/shiftsync/shiftsync_backend/internal/models"
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

func TestCredentialEmailCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(store.NewMemoryStore())
	ctx := context.Background()

	err := repo.SaveCredential(ctx, &models.Credential{
		UID:          "u1",
		Email:        "Worker@Example.com",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("SaveCredential() error = %v", err)
	}

	cred, err := repo.GetCredentialByEmail(ctx, "  worker@example.COM ")
	if err != nil {
		t.Fatalf("GetCredentialByEmail() error = %v", err)
	}
	if cred.UID != "u1" {
		t.Errorf("uid = %s, want u1", cred.UID)
	}
}

func TestListByRole(t *testing.T) {
	repo := NewUserRepository(store.NewMemoryStore())
	ctx := context.Background()

	users := []*models.User{
		{UID: "m1", FullName: "Boss", Email: "boss@x.com", Role: models.RoleManager},
		{UID: "e2", FullName: "Zoe", Email: "zoe@x.com", Role: models.RoleEmployee},
		{UID: "e1", FullName: "Ann", Email: "ann@x.com", Role: models.RoleEmployee},
	}
	for _, u := range users {
		if err := repo.Save(ctx, u); err != nil {
			t.Fatalf("Save(%s) error = %v", u.UID, err)
		}
	}

	list, err := repo.ListByRole(ctx, models.RoleEmployee)
	if err != nil {
		t.Fatalf("ListByRole() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d employees, want 2", len(list))
	}
	// По алфавиту имён
	if list[0].FullName != "Ann" || list[1].FullName != "Zoe" {
		t.Errorf("order = %s, %s; want Ann, Zoe", list[0].FullName, list[1].FullName)
	}
}

// Удаление профиля забирает с собой и учётные данные.
func TestDeleteRemovesCredential(t *testing.T) {
	repo := NewUserRepository(store.NewMemoryStore())
	ctx := context.Background()

	user := &models.User{UID: "u1", FullName: "Worker", Email: "w@x.com", Role: models.RoleEmployee}
	if err := repo.Save(ctx, user); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	err := repo.SaveCredential(ctx, &models.Credential{UID: "u1", Email: "w@x.com", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("SaveCredential() error = %v", err)
	}

	if err := repo.Delete(ctx, "u1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.GetByUID(ctx, "u1"); err != store.ErrNotFound {
		t.Errorf("GetByUID() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetCredentialByEmail(ctx, "w@x.com"); err != store.ErrNotFound {
		t.Errorf("GetCredentialByEmail() error = %v, want ErrNotFound", err)
	}
}
