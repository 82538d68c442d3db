package shift

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shiftsync/shiftsync_backend/config"
	"github.com/shiftsync/shiftsync_backend/internal/models"
	"github.com/shiftsync/shiftsync_backend/internal/repositories"
	"github.com/shiftsync/shiftsync_backend/internal/services/signup"
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

type requestsEnv struct {
	router *chi.Mux
	shifts *repositories.ShiftRepository
	users  *repositories.UserRepository
}

// Маршруты как в боевом routes.Setup, но с подстановкой uid прямо в контекст.
func newRequestsEnv(t *testing.T, uid string) *requestsEnv {
	t.Helper()

	mem := store.NewMemoryStore()
	shifts := repositories.NewShiftRepository(mem)
	users := repositories.NewUserRepository(mem)
	svc := signup.NewService(shifts, false)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), config.UserIDKey, uid)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/api/shifts/{shiftID}/request", RequestShiftHandler(svc, users))
	r.Post("/api/shifts/{shiftID}/cancel-request", CancelRequestHandler(svc))
	r.Get("/api/admin/requests", ListShiftRequestsHandler(shifts))
	r.Post("/api/admin/requests/approve", ApproveRequestHandler(svc))
	r.Post("/api/admin/requests/deny", DenyRequestHandler(svc))

	return &requestsEnv{router: r, shifts: shifts, users: users}
}

func (e *requestsEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func seedWorker(t *testing.T, env *requestsEnv, uid, name string) {
	t.Helper()
	err := env.users.Save(context.Background(), &models.User{
		UID:      uid,
		FullName: name,
		Email:    uid + "@example.com",
		Role:     models.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("save user: %v", err)
	}
}

func seedOpenShift(t *testing.T, env *requestsEnv, id string, required int) {
	t.Helper()
	start := time.Now().Add(24 * time.Hour).UnixMilli()
	err := env.shifts.Create(context.Background(), &models.Shift{
		ID:              id,
		StartTime:       start,
		EndTime:         start + 8*time.Hour.Milliseconds(),
		RequiredWorkers: required,
		Assigned:        []models.Member{},
		Pending:         []models.Member{},
	})
	if err != nil {
		t.Fatalf("create shift: %v", err)
	}
}

func TestRequestAndApproveFlow(t *testing.T) {
	env := newRequestsEnv(t, "u1")
	seedWorker(t, env, "u1", "Dana Levi")
	seedOpenShift(t, env, "s1", 2)

	rec := env.do(t, http.MethodPost, "/api/shifts/s1/request", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("request status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// Заявка видна менеджеру с именем из профиля
	rec = env.do(t, http.MethodGet, "/api/admin/requests", nil)
	var items []models.ShiftRequestItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 1 || items[0].UserID != "u1" || items[0].UserName != "Dana Levi" {
		t.Fatalf("unexpected request queue: %+v", items)
	}

	rec = env.do(t, http.MethodPost, "/api/admin/requests/approve", requestActionBody{
		ShiftID: "s1",
		UserID:  "u1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("approve status = %d, body = %s", rec.Code, rec.Body.String())
	}

	s, err := env.shifts.GetByID(context.Background(), "s1")
	if err != nil {
		t.Fatalf("get shift: %v", err)
	}
	if len(s.Pending) != 0 {
		t.Errorf("pending not cleared: %+v", s.Pending)
	}
	if len(s.Assigned) != 1 || s.Assigned[0].ID != "u1" || s.Assigned[0].Name != "Dana Levi" {
		t.Errorf("unexpected assigned: %+v", s.Assigned)
	}
}

func TestRequestFullShiftConflict(t *testing.T) {
	env := newRequestsEnv(t, "u2")
	seedWorker(t, env, "u2", "Noa Katz")
	seedOpenShift(t, env, "s1", 1)

	err := env.shifts.Update(context.Background(), "s1", func(s *models.Shift) error {
		s.Assigned = models.AddMember(s.Assigned, models.Member{ID: "other", Name: "Someone"})
		return nil
	})
	if err != nil {
		t.Fatalf("update shift: %v", err)
	}

	rec := env.do(t, http.MethodPost, "/api/shifts/s1/request", nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestRequestUnknownShift(t *testing.T) {
	env := newRequestsEnv(t, "u1")
	seedWorker(t, env, "u1", "Dana Levi")

	rec := env.do(t, http.MethodPost, "/api/shifts/nope/request", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCancelRequestViaHandler(t *testing.T) {
	env := newRequestsEnv(t, "u1")
	seedWorker(t, env, "u1", "Dana Levi")
	seedOpenShift(t, env, "s1", 1)

	env.do(t, http.MethodPost, "/api/shifts/s1/request", nil)
	rec := env.do(t, http.MethodPost, "/api/shifts/s1/cancel-request", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel status = %d, body = %s", rec.Code, rec.Body.String())
	}

	s, err := env.shifts.GetByID(context.Background(), "s1")
	if err != nil {
		t.Fatalf("get shift: %v", err)
	}
	if len(s.Pending) != 0 {
		t.Errorf("pending not cleared: %+v", s.Pending)
	}
}

func TestDenyRequestViaHandler(t *testing.T) {
	env := newRequestsEnv(t, "u1")
	seedWorker(t, env, "u1", "Dana Levi")
	seedOpenShift(t, env, "s1", 1)

	env.do(t, http.MethodPost, "/api/shifts/s1/request", nil)
	rec := env.do(t, http.MethodPost, "/api/admin/requests/deny", requestActionBody{
		ShiftID: "s1",
		UserID:  "u1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("deny status = %d, body = %s", rec.Code, rec.Body.String())
	}

	s, err := env.shifts.GetByID(context.Background(), "s1")
	if err != nil {
		t.Fatalf("get shift: %v", err)
	}
	if len(s.Pending) != 0 || len(s.Assigned) != 0 {
		t.Errorf("shift not back to open: pending=%+v assigned=%+v", s.Pending, s.Assigned)
	}
}
