package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shiftsync/shiftsync_backend/config"
	"github.com/shiftsync/shiftsync_backend/internal/models"
	"github.com/shiftsync/shiftsync_backend/internal/repositories"
	authService "github.com/shiftsync/shiftsync_backend/internal/services/auth"
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

type fakeTokenStore struct {
	tokens map[string]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]string)}
}

func (f *fakeTokenStore) Save(ctx context.Context, token, uid string, ttl time.Duration) error {
	f.tokens[token] = uid
	return nil
}

func (f *fakeTokenStore) Lookup(ctx context.Context, token string) (string, error) {
	uid, ok := f.tokens[token]
	if !ok {
		return "", authService.ErrTokenNotFound
	}
	return uid, nil
}

func (f *fakeTokenStore) Revoke(ctx context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

type testEnv struct {
	handler *AuthHandler
	mem     *store.MemoryStore
	tokens  *fakeTokenStore
}

func newTestEnv() *testEnv {
	mem := store.NewMemoryStore()
	tokens := newFakeTokenStore()
	users := repositories.NewUserRepository(mem)
	jwtService := authService.NewJWTService("test-secret", tokens)
	cfg := &config.Config{JwtSecret: "test-secret", ManagerCode: "123456"}
	return &testEnv{
		handler: NewAuthHandler(users, jwtService, cfg),
		mem:     mem,
		tokens:  tokens,
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func register(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	rec := postJSON(t, env.handler.RegisterHandler, "/api/auth/register", models.RegisterRequest{
		FullName: "Test Worker",
		IDNumber: "123456789",
		Email:    email,
		Password: "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return resp["uid"]
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv()
	uid := register(t, env, "worker@example.com")

	rec := postJSON(t, env.handler.LoginHandler, "/api/auth/login", models.LoginRequest{
		Email:    "worker@example.com",
		Password: "secret1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp models.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.UID != uid {
		t.Errorf("uid = %s, want %s", resp.UID, uid)
	}
	if resp.Role != models.RoleEmployee {
		t.Errorf("role = %s, want employee", resp.Role)
	}
	if resp.Token == "" || resp.RefreshToken == "" {
		t.Error("expected both tokens in response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv()
	register(t, env, "worker@example.com")

	rec := postJSON(t, env.handler.LoginHandler, "/api/auth/login", models.LoginRequest{
		Email:    "worker@example.com",
		Password: "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// Учётные данные есть, профиля нет: 404, клиент возвращается на вход.
func TestLoginMissingProfile(t *testing.T) {
	env := newTestEnv()
	uid := register(t, env, "worker@example.com")

	if err := env.mem.Delete(context.Background(), "users", uid); err != nil {
		t.Fatalf("delete profile: %v", err)
	}

	rec := postJSON(t, env.handler.LoginHandler, "/api/auth/login", models.LoginRequest{
		Email:    "worker@example.com",
		Password: "secret1",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	register(t, env, "worker@example.com")

	rec := postJSON(t, env.handler.RegisterHandler, "/api/auth/register", models.RegisterRequest{
		FullName: "Second",
		Email:    "worker@example.com",
		Password: "secret2",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRegisterManagerCode(t *testing.T) {
	env := newTestEnv()

	rec := postJSON(t, env.handler.RegisterHandler, "/api/auth/register", models.RegisterRequest{
		FullName:    "Wannabe Boss",
		Email:       "boss@example.com",
		Password:    "secret1",
		Role:        models.RoleManager,
		ManagerCode: "000000",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status with wrong code = %d, want 403", rec.Code)
	}

	rec = postJSON(t, env.handler.RegisterHandler, "/api/auth/register", models.RegisterRequest{
		FullName:    "Real Boss",
		Email:       "boss@example.com",
		Password:    "secret1",
		Role:        models.RoleManager,
		ManagerCode: "123456",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status with valid code = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, env.handler.LoginHandler, "/api/auth/login", models.LoginRequest{
		Email:    "boss@example.com",
		Password: "secret1",
	})
	var resp models.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Role != models.RoleManager {
		t.Errorf("role = %s, want manager", resp.Role)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	env := newTestEnv()
	register(t, env, "worker@example.com")

	rec := postJSON(t, env.handler.LoginHandler, "/api/auth/login", models.LoginRequest{
		Email:    "worker@example.com",
		Password: "secret1",
	})
	var login models.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	rec = postJSON(t, env.handler.RefreshTokenHandler, "/api/auth/refresh", map[string]string{
		"refresh_token": login.RefreshToken,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// Старый refresh погашен
	rec = postJSON(t, env.handler.RefreshTokenHandler, "/api/auth/refresh", map[string]string{
		"refresh_token": login.RefreshToken,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("reused refresh status = %d, want 401", rec.Code)
	}
}
