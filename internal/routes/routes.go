package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/redis/go-redis/v9"

	"github.com/shiftsync/shiftsync_backend/config"
	adminHandlers "github.com/shiftsync/shiftsync_backend/internal/handlers/admin"
	announceHandlers "github.com/shiftsync/shiftsync_backend/internal/handlers/announce"
	authHandlers "github.com/shiftsync/shiftsync_backend/internal/handlers/auth"
	salaryHandlers "github.com/shiftsync/shiftsync_backend/internal/handlers/salary"
	shiftHandlers "github.com/shiftsync/shiftsync_backend/internal/handlers/shift"
	wsHandlers "github.com/shiftsync/shiftsync_backend/internal/handlers/ws"
	"github.com/shiftsync/shiftsync_backend/internal/middleware"
	"github.com/shiftsync/shiftsync_backend/internal/pkg/response"
	"github.com/shiftsync/shiftsync_backend/internal/repositories"
	authService "github.com/shiftsync/shiftsync_backend/internal/services/auth"
	"github.com/shiftsync/shiftsync_backend/internal/services/feed"
	salaryService "github.com/shiftsync/shiftsync_backend/internal/services/salary"
	"github.com/shiftsync/shiftsync_backend/internal/services/signup"
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

// Setup собирает зависимости и возвращает настроенный маршрутизатор.
func Setup(cfg *config.Config, redisClient *redis.Client) *chi.Mux {
	jwtAuth := jwtauth.New("HS256", []byte(cfg.JwtSecret), nil)
	jwtService := authService.NewJWTService(cfg.JwtSecret, authService.NewRedisTokenStore(redisClient))

	docStore := store.NewRedisStore(redisClient)
	shiftRepo := repositories.NewShiftRepository(docStore)
	userRepo := repositories.NewUserRepository(docStore)
	announcementRepo := repositories.NewAnnouncementRepository(docStore)

	signupSvc := signup.NewService(shiftRepo, cfg.EnforceCapacity)
	salarySvc := salaryService.NewService(shiftRepo, userRepo)
	shiftFeed := feed.NewShiftFeed(shiftRepo, docStore)

	authHandler := authHandlers.NewAuthHandler(userRepo, jwtService, cfg)
	profileHandler := authHandlers.NewProfileHandler(userRepo)
	announcementHandler := announceHandlers.NewAnnouncementHandler(announcementRepo, userRepo)

	router := chi.NewRouter()
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(jwtauth.Verifier(jwtAuth))
	router.Use(middleware.AddUserIDToContext())

	// Публичные маршруты
	router.Post("/api/auth/register", authHandler.RegisterHandler)
	router.Post("/api/auth/login", authHandler.LoginHandler)
	router.Post("/api/auth/refresh", authHandler.RefreshTokenHandler)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Защищённые маршруты
	router.Group(func(r chi.Router) {
		r.Use(jwtauth.Authenticator(jwtAuth))

		r.Get("/api/profile", profileHandler.GetProfile)
		r.Put("/api/profile/image", profileHandler.UploadImageHandler)
		r.Post("/api/profile/first-login", profileHandler.CompleteFirstLoginHandler)
		r.Post("/api/logout", authHandler.LogoutHandler)

		// Смены
		r.Get("/api/shifts/upcoming", shiftHandlers.GetUpcomingShiftsHandler(shiftRepo))
		r.Get("/api/shifts/mine", shiftHandlers.GetMyShiftsHandler(shiftRepo))
		r.Get("/api/shifts/date/{date}", shiftHandlers.GetShiftsByDateHandler(shiftRepo))
		r.Get("/api/shifts/{shiftID}", shiftHandlers.GetShiftHandler(shiftRepo))

		// Запись на смены (работник)
		r.Post("/api/shifts/{shiftID}/request", shiftHandlers.RequestShiftHandler(signupSvc, userRepo))
		r.Post("/api/shifts/{shiftID}/cancel-request", shiftHandlers.CancelRequestHandler(signupSvc))
		r.Post("/api/shifts/{shiftID}/cancel-assignment", shiftHandlers.CancelAssignmentHandler(signupSvc))

		// Объявления и зарплата
		r.Get("/api/announcements", announcementHandler.ListHandler)
		r.Get("/api/salary", salaryHandlers.GetSalaryHandler(salarySvc))
		r.Get("/api/salary/report.xlsx", salaryHandlers.ExportSalaryHandler(salarySvc))

		// Живая подписка на смены дня
		r.Get("/ws/shifts", wsHandlers.ShiftFeedHandler(shiftFeed))

		// Только для менеджера
		r.Group(func(mr chi.Router) {
			mr.Use(middleware.ManagerOnly())

			mr.Post("/api/admin/shifts", shiftHandlers.CreateShiftHandler(shiftRepo))
			mr.Put("/api/admin/shifts/{shiftID}", shiftHandlers.UpdateShiftHandler(shiftRepo))
			mr.Delete("/api/admin/shifts/{shiftID}", shiftHandlers.DeleteShiftHandler(shiftRepo))
			mr.Post("/api/admin/shifts/{shiftID}/remove-employee", shiftHandlers.RemoveAssignedHandler(signupSvc))

			mr.Get("/api/admin/requests", shiftHandlers.ListShiftRequestsHandler(shiftRepo))
			mr.Post("/api/admin/requests/approve", shiftHandlers.ApproveRequestHandler(signupSvc))
			mr.Post("/api/admin/requests/deny", shiftHandlers.DenyRequestHandler(signupSvc))

			mr.Get("/api/admin/employees", adminHandlers.ListEmployeesHandler(userRepo))
			mr.Patch("/api/admin/employees/{userID}", adminHandlers.UpdateEmployeeHandler(userRepo))
			mr.Delete("/api/admin/employees/{userID}", adminHandlers.DeleteEmployeeHandler(userRepo))

			mr.Post("/api/admin/announcements", announcementHandler.CreateHandler)
			mr.Delete("/api/admin/announcements/{id}", announcementHandler.DeleteHandler)

			mr.Get("/api/admin/stats", adminHandlers.DashboardStatsHandler(shiftRepo))
		})
	})

	return router
}
