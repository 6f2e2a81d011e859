package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Auth routes
	r.Post("/api/auth/signup", handlers.Signup)
	r.Post("/api/auth/signin", handlers.Signin)
	r.Post("/api/auth/signout", handlers.Signout)
	r.Get("/api/auth/me", handlers.GetMe)

	// Health profile routes
	r.Get("/api/profile", handlers.GetProfile)
	r.Put("/api/profile", handlers.SaveProfile)

	// Medical report routes
	r.Post("/api/reports", handlers.UploadReport)
	r.Get("/api/reports", handlers.ListReports)

	// Dashboard aggregation + vitals placeholders
	r.Get("/api/dashboard", handlers.GetDashboard)
	r.Get("/api/vitals", handlers.GetVitals)

	// Simulated smartwatch integration
	r.Post("/api/device/connect", handlers.ConnectDevice)

	// WebSocket endpoint streaming simulated vitals
	r.Get("/ws/vitals", handlers.VitalsWebSocket)
}
