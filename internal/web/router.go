package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/handlers"
)

func Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handlers.Health)
	r.Get("/qr/session/{id}.png", handlers.SessionQR)

	r.Route("/api", func(api chi.Router) {
		// Public
		api.Post("/login", handlers.Login)
		api.Post("/logout", handlers.Logout)
		api.Get("/schedule", handlers.Schedule)
		api.Get("/quote", handlers.QuoteOfDay)
		api.Get("/config", handlers.GetConfig)
		api.Get("/locations", handlers.ListLocations)
		api.Get("/workout-types", handlers.ListWorkoutTypes)
		api.Get("/sessions/{id}/calendar.ics", handlers.SessionICS)

		// Trainee-guarded
		api.Group(func(tr chi.Router) {
			tr.Use(handlers.RequireTrainee)
			tr.Get("/me", handlers.Me)
			tr.Put("/me", handlers.UpdateMe)
			tr.Post("/me/waiver", handlers.SignWaiver)
			tr.Post("/sessions/{id}/register", handlers.Register)
		})

		// Admin
		api.Route("/admin", func(ar chi.Router) {
			ar.Post("/login", handlers.AdminLogin)
			ar.Post("/logout", handlers.AdminLogout)

			ar.Group(func(ag chi.Router) {
				ag.Use(handlers.RequireAdmin)

				// Trainees
				ag.Get("/users", handlers.AdminListUsers)
				ag.Post("/users", handlers.AdminCreateUser)
				ag.Put("/users/{id}", handlers.AdminUpdateUser)
				ag.Delete("/users/{id}", handlers.AdminDeleteUser)

				// Sessions
				ag.Get("/sessions", handlers.AdminListSessions)
				ag.Post("/sessions", handlers.AdminCreateSession)
				ag.Put("/sessions/{id}", handlers.AdminUpdateSession)
				ag.Delete("/sessions/{id}", handlers.AdminDeleteSession)
				ag.Put("/sessions/{id}/roster", handlers.AdminSetRoster)

				// Attendance
				ag.Get("/sessions/{id}/attendance", handlers.AdminGetAttendance)
				ag.Put("/sessions/{id}/attendance", handlers.AdminPutAttendance)

				// Lookup tables + configuration
				ag.Post("/locations", handlers.AdminCreateLocation)
				ag.Put("/locations/{id}", handlers.AdminUpdateLocation)
				ag.Delete("/locations/{id}", handlers.AdminDeleteLocation)
				ag.Post("/workout-types", handlers.AdminCreateWorkoutType)
				ag.Delete("/workout-types/{id}", handlers.AdminDeleteWorkoutType)
				ag.Get("/quotes", handlers.AdminListQuotes)
				ag.Post("/quotes", handlers.AdminCreateQuote)
				ag.Delete("/quotes/{id}", handlers.AdminDeleteQuote)
				ag.Put("/config", handlers.AdminUpdateConfig)
			})
		})
	})

	return r
}
