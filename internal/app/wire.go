package app

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harshit-shukla-1/secret-santa/internal/auth"
	"github.com/harshit-shukla-1/secret-santa/internal/game"
	"github.com/harshit-shukla-1/secret-santa/internal/guard"
	"github.com/harshit-shukla-1/secret-santa/internal/handler"
	adminhandler "github.com/harshit-shukla-1/secret-santa/internal/handler/admin"
	"github.com/harshit-shukla-1/secret-santa/internal/infra"
	"github.com/harshit-shukla-1/secret-santa/internal/provider"
	"github.com/harshit-shukla-1/secret-santa/internal/repository"
	"github.com/harshit-shukla-1/secret-santa/internal/service"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	Pool    *pgxpool.Pool
	JWTMgr  *auth.JWTManager
	Blobs   *provider.BlobStore
	Config  *infra.Config
	Logger  *slog.Logger
	Limiter *guard.RateLimiter
}

// NewRouter assembles the chi.Router with all routes and middleware.
func NewRouter(deps RouterDeps) chi.Router {
	pool := deps.Pool
	jwtMgr := deps.JWTMgr
	logger := deps.Logger

	// Repositories
	userRepo := repository.NewUserRepository()
	messageRepo := repository.NewMessageRepository()
	guessRepo := repository.NewGuessRepository()
	commentRepo := repository.NewCommentRepository()
	configRepo := repository.NewConfigRepository()
	outboxRepo := repository.NewOutboxRepository()

	// Game engine
	engine := game.NewEngine(pool, messageRepo, guessRepo, userRepo, outboxRepo, logger)
	aggregator := game.NewAggregator(pool, guessRepo, userRepo)

	// Services
	authSvc := service.NewAuthService(pool, userRepo, outboxRepo, jwtMgr, logger)
	msgSvc := service.NewMessageService(pool, messageRepo, userRepo, configRepo, outboxRepo, logger)
	commentSvc := service.NewCommentService(pool, commentRepo, messageRepo, logger)
	adminSvc := service.NewAdminService(pool, userRepo, configRepo, outboxRepo, deps.Config.AdminDefaultPassword, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	messageHandler := handler.NewMessageHandler(msgSvc)
	wallHandler := handler.NewWallHandler(msgSvc, pool, userRepo)
	gameHandler := handler.NewGameHandler(engine, deps.Limiter)
	leaderboardHandler := handler.NewLeaderboardHandler(aggregator)
	commentHandler := handler.NewCommentHandler(commentSvc)
	uploadHandler := handler.NewUploadHandler(deps.Blobs)

	// Admin handlers
	userAdmin := adminhandler.NewUserAdminHandler(adminSvc)
	configAdmin := adminhandler.NewConfigAdminHandler(adminSvc)
	moderationAdmin := adminhandler.NewModerationHandler(pool, msgSvc)

	// Router
	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.CORS(deps.Config.CORSAllowedOrigins))
	r.Use(handler.JSONContentType)

	// Health (no auth)
	r.Get("/health", handler.HealthHandler(pool))

	// Auth routes (no auth)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(auth.Authenticate(jwtMgr))

		r.Get("/auth/me", authHandler.Me)
		r.Post("/auth/password", authHandler.ChangePassword)
		r.Put("/auth/avatar", authHandler.UpdateAvatar)

		r.Get("/users", wallHandler.Users)

		r.Route("/messages", func(r chi.Router) {
			r.Post("/", messageHandler.Send)
			r.Get("/inbox", messageHandler.Inbox)
			r.Get("/sent", messageHandler.Sent)
			r.Delete("/{id}", messageHandler.Delete)
			r.Post("/{id}/comments", commentHandler.Add)
			r.Get("/{id}/comments", commentHandler.List)
		})

		r.Delete("/comments/{id}", commentHandler.Delete)

		r.Get("/wall", wallHandler.Wall)

		r.Route("/game", func(r chi.Router) {
			r.Post("/guess", gameHandler.SubmitGuess)
			r.Get("/history", gameHandler.History)
			r.Get("/messages", gameHandler.Guessable)
		})

		r.Get("/leaderboard", leaderboardHandler.Leaderboard)

		r.Route("/uploads", func(r chi.Router) {
			r.Post("/", uploadHandler.Create)
			r.Get("/url", uploadHandler.Download)
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin())

			r.Route("/admin", func(r chi.Router) {
				r.Get("/users", userAdmin.ListUsers)
				r.Post("/users", userAdmin.CreateUser)
				r.Delete("/users/{username}", userAdmin.DeleteUser)
				r.Post("/reset", userAdmin.ResetAdmin)

				r.Get("/config", configAdmin.GetConfig)
				r.Put("/config/wall", configAdmin.SetWall)

				r.Get("/messages", moderationAdmin.ListMessages)
				r.Delete("/messages/{id}", moderationAdmin.DeleteMessage)
			})
		})
	})

	return r
}
