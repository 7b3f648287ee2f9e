package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/hugmob/hugger-backend/internal/handlers"
	"github.com/hugmob/hugger-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps, guards *middleware.Middleware) chi.Router {
	r := chi.NewRouter()

	logmw := middleware.NewLoggerMiddleware(deps.Log)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(logmw.LoggerMiddleware)
	r.Use(guards.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.GHLKeyHeader},
		MaxAge:         300,
	}))
	r.Use(httprate.LimitByIP(100, time.Minute))

	hh := handlers.NewHealthHandlers(deps)
	ph := handlers.NewProvisionHandlers(deps)
	lh := handlers.NewLifecycleHandlers(deps)
	nh := handlers.NewNotificationHandlers(deps)
	uh := handlers.NewUserHandlers(deps)

	r.Get("/health", hh.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/send-notification", nh.SendNotification)
		r.Get("/notification-stats", nh.Stats)
		r.Get("/users", uh.ListUsers)
		r.Post("/make-triple-hugger", lh.MakeTripleHugger)
		r.Post("/make-double-hugger", lh.MakeDoubleHugger)
		r.Post("/remove-password-change-requirement", lh.ClearPasswordRequirement)

		// admin console routes: bearer token + admin profile
		r.Group(func(r chi.Router) {
			r.Use(guards.RequireAdmin)
			r.Post("/grant-admin", ph.GrantAdmin)
			r.Post("/create-user", ph.CreateUser)
			r.Post("/make-inactive", lh.MakeInactive)
			r.Post("/make-active", lh.MakeActive)
		})

		// GHL integration routes: shared static key
		r.Route("/ghl", func(r chi.Router) {
			r.Use(guards.RequireGHLKey)
			r.Post("/create-user", ph.GHLCreateUser)
			r.Post("/create-trial-user", ph.GHLCreateTrialUser)
			r.Post("/make-inactive", lh.MakeInactive)
			r.Post("/make-active", lh.MakeActive)
			r.Post("/make-triple-hugger", lh.MakeTripleHugger)
			r.Post("/make-double-hugger", lh.MakeDoubleHugger)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		deps.ResponseHandler.WriteError(w, r, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		deps.ResponseHandler.WriteError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	return r
}
