package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ovasilescu/travel-planner/internal/middleware"
)

// Routes mounts every endpoint onto a chi router and returns it.
// Cross-cutting middleware (request ID, logging, CORS, body limits) is
// applied by main around this router; only the auth middleware lives here
// because it is route-specific.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		// Public browsing of published plans. GetPlan uses OptionalAuth so
		// owners can view their own unpublished plans through the same route.
		r.Get("/plans", s.ListPublishedPlans)
		r.With(middleware.OptionalAuth(s.tokens)).Get("/plans/{id}", s.GetPlan)

		// Everything below requires a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(s.tokens))

			r.Post("/plans", s.CreatePlan)
			r.Get("/me/plans", s.ListMyPlans)
			r.Delete("/plans/{id}", s.DeletePlan)
			r.Post("/plans/{id}/publish", s.PublishPlan)
			r.Post("/plans/{id}/unpublish", s.UnpublishPlan)
			r.Put("/plans/{id}/days/{date}", s.SetDayDetails)
			r.Post("/plans/{id}/copy", s.CopyPlan)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})

	return r
}
