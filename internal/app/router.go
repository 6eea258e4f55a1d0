package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/ironboundtech/TheDrinkDistrict/internal/handlers"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, deps.responder, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, rs *handlers.Responder, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger, rs))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	h := deps.handlers
	rs := deps.responder
	authenticated := handlers.AuthMiddleware(deps.jwtManager, deps.store.users, rs)
	adminOnly := handlers.RequireRole(domain.RoleAdmin, rs)

	// Health check эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)

	r.Route("/api", func(r chi.Router) {
		// Аутентификация
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.auth.Register)
			r.Post("/login", h.auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.Get("/profile", h.auth.Profile)

				r.With(handlers.RequireRole(domain.RoleManager, rs)).Route("/users/{userID}", func(r chi.Router) {
					r.Put("/role", h.auth.UpdateRole)
					r.Put("/status", h.auth.UpdateStatus)
				})
			})
		})

		// Каталог: чтение публичное, изменение только для администратора
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.catalog.ListProducts)
			r.Get("/{id}", h.catalog.GetProduct)
			r.With(authenticated, adminOnly).Post("/", h.catalog.CreateProduct)
			r.With(authenticated, adminOnly).Put("/{id}", h.catalog.UpdateProduct)
		})
		r.Route("/courts", func(r chi.Router) {
			r.Get("/", h.catalog.ListCourts)
			r.Get("/available", h.catalog.AvailableCourts)
			r.Get("/{id}", h.catalog.GetCourt)
			r.With(authenticated, adminOnly).Post("/", h.catalog.CreateCourt)
			r.With(authenticated, adminOnly).Put("/{id}", h.catalog.UpdateCourt)
		})

		// Защищенные эндпоинты
		r.Group(func(r chi.Router) {
			r.Use(authenticated)

			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.wallet.GetBalance)
				r.Post("/topup", h.wallet.TopUp)
				r.Get("/transactions", h.wallet.GetTransactions)
			})

			r.Route("/purchases", func(r chi.Router) {
				r.Post("/", h.purchases.Create)
				r.With(adminOnly).Get("/", h.purchases.ListAll)
				r.Get("/user/{userID}", h.purchases.ListByUser)
				r.Get("/{id}", h.purchases.Get)
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Post("/", h.bookings.Create)
				r.With(adminOnly).Get("/", h.bookings.ListAll)
				r.Get("/user/{userID}", h.bookings.ListByUser)
				r.Patch("/{id}/status", h.bookings.UpdateStatus)
			})
		})
	})
}
