package rest

import (
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewRouter собирает маршруты консоли. Все экраны, кроме входа, требуют сессию.
func NewRouter(allowedOrigins []string, handlers *ConsoleHandlers, session port.SessionStorePort, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/console", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/", handlers.HandleAuthState)
			r.Post("/otp", handlers.HandleSendOTP)
			r.Post("/verify", handlers.HandleVerifyOTP)
			r.Post("/change-email", handlers.HandleChangeEmail)
			r.Post("/logout", handlers.HandleLogout)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireSession(session))

			r.Get("/dashboard", handlers.HandleDashboard)

			r.Route("/properties", func(r chi.Router) {
				mountListRoutes[domain.Property, domain.PropertyFilters](r, handlers.properties, renderProperties)
				r.Post("/", handlers.HandleCreateProperty)
				r.Get("/new", handlers.HandleNewPropertyForm)
				r.Get("/{id}", handlers.HandleOpenPropertyForm)
				r.Put("/{id}", handlers.HandleUpdateProperty)
				r.Delete("/{id}", handlers.HandleDeleteProperty)
			})

			r.Route("/uploads", func(r chi.Router) {
				r.Post("/images", handlers.HandleUploadImages)
				r.Post("/video", handlers.HandleUploadVideo)
			})

			r.Route("/featured", func(r chi.Router) {
				r.Get("/", handlers.HandleFeaturedLoad)
				r.Post("/refresh", handlers.HandleFeaturedLoad)
				r.Post("/search", handlers.HandleFeaturedSearch)
				r.Post("/reset", handlers.HandleFeaturedReset)
				r.Put("/{id}", handlers.HandleSetFeatured)
			})

			r.Route("/queries", func(r chi.Router) {
				mountListRoutes[domain.Query, domain.QueryFilters](r, handlers.queries, nil)
			})

			r.Route("/ratings", func(r chi.Router) {
				mountListRoutes[domain.Rating, domain.RatingFilters](r, handlers.ratings, nil)
				r.Post("/stars", handlers.HandleRatingStars)
				r.Post("/clear-selection", handlers.HandleRatingClearSelection)
				r.Get("/{id}", handlers.HandleRatingSelect)
			})

			r.Route("/users", func(r chi.Router) {
				mountListRoutes[domain.User, domain.UserFilters](r, handlers.users, nil)
				r.Post("/clear-selection", handlers.HandleUserClearSelection)
				r.Get("/{id}", handlers.HandleUserSelect)
				r.Put("/{id}/blocked", handlers.HandleSetUserBlocked)
			})
		})
	})

	return r
}

func NewServer(cfg ServerConfig, handlers *ConsoleHandlers, session port.SessionStorePort, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: NewRouter(cfg.AllowedOrigins, handlers, session, baseLogger),
		},
		logger: baseLogger,
	}
}

// Start запускает HTTP-сервер и блокируется до Stop
func (s *Server) Start() error {
	s.logger.Info("Starting console API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping console API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
