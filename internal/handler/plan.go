package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/ovasilescu/travel-planner/internal/domain"
	"github.com/ovasilescu/travel-planner/internal/middleware"
)

// ListPublishedPlans handles GET /api/v1/plans.
// It returns every published plan, for any caller.
func (s *Server) ListPublishedPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.plans.ListPublished(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plansToResponse(plans))
}

// GetPlan handles GET /api/v1/plans/{id}.
// Published plans are visible to everyone; an unpublished plan is visible
// only to its owner (via OptionalAuth) and reads as 404 for anyone else.
// The body carries the full itinerary view: date range and trip length
// included.
func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(w, r)
	if !ok {
		return
	}

	plan, err := s.plans.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if !plan.Published {
		identity, ok := middleware.IdentityFrom(r.Context())
		if !ok || identity.Username != plan.OwnerUsername {
			writeError(w, http.StatusNotFound, "not_found", "resource not found")
			return
		}
	}

	writeJSON(w, http.StatusOK, planToDetailResponse(plan))
}

// CreatePlan handles POST /api/v1/plans.
func (s *Server) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	plan, err := req.toPlan()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	user, err := s.currentUser(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	created, err := s.plans.Create(r.Context(), plan, user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, planToResponse(created))
}

// ListMyPlans handles GET /api/v1/me/plans.
// It returns every plan owned by the authenticated user, published or not.
func (s *Server) ListMyPlans(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFrom(r.Context())
	plans, err := s.plans.FindByOwner(r.Context(), identity.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plansToResponse(plans))
}

// DeletePlan handles DELETE /api/v1/plans/{id}. Owner only.
func (s *Server) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(w, r)
	if !ok {
		return
	}

	identity, _ := middleware.IdentityFrom(r.Context())
	if err := s.plans.Delete(r.Context(), id, identity.Username); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PublishPlan handles POST /api/v1/plans/{id}/publish. Owner only.
func (s *Server) PublishPlan(w http.ResponseWriter, r *http.Request) {
	s.setPublished(w, r, true)
}

// UnpublishPlan handles POST /api/v1/plans/{id}/unpublish. Owner only.
func (s *Server) UnpublishPlan(w http.ResponseWriter, r *http.Request) {
	s.setPublished(w, r, false)
}

func (s *Server) setPublished(w http.ResponseWriter, r *http.Request, published bool) {
	id, ok := planID(w, r)
	if !ok {
		return
	}

	identity, _ := middleware.IdentityFrom(r.Context())
	plan, err := s.plans.SetPublished(r.Context(), id, identity.Username, published)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, planToResponse(plan))
}

// SetDayDetails handles PUT /api/v1/plans/{id}/days/{date}. Owner only.
// The date path segment is YYYY-MM-DD and must fall within the plan's range;
// out-of-range dates are rejected without persisting anything.
func (s *Server) SetDayDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(w, r)
	if !ok {
		return
	}
	date, err := domain.ParseDateKey(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "date must be formatted YYYY-MM-DD")
		return
	}

	var req dayDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	identity, _ := middleware.IdentityFrom(r.Context())
	plan, err := s.plans.SetDayDetails(r.Context(), id, identity.Username, date, req.Hotel, req.Activity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, planToResponse(plan))
}

// CopyPlan handles POST /api/v1/plans/{id}/copy.
// Copy-on-save: clones the source plan into a brand-new private plan owned by
// the authenticated user. Copying your own plan is rejected and nothing is
// created.
func (s *Server) CopyPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(w, r)
	if !ok {
		return
	}

	source, err := s.plans.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := s.currentUser(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	// The self-copy rule lives here, ahead of the service call: compare the
	// source's denormalized owner username against the acting user.
	if source.OwnerUsername == user.Username {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "you cannot save a copy of your own trip")
		return
	}

	clone, err := s.plans.SaveCopyForUser(r.Context(), source, user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, planToResponse(clone))
}

// currentUser resolves the authenticated identity to the full account record.
func (s *Server) currentUser(r *http.Request) (domain.User, error) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return s.users.FindByUsername(r.Context(), identity.Username)
}

// planID parses the {id} path parameter, writing a 404 for malformed UUIDs —
// a garbled ID can never name an existing plan.
func planID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return uuid.Nil, false
	}
	return id, true
}

// --- request/response types -------------------------------------------------

// createPlanRequest is the body for POST /api/v1/plans.
// Dates are date-only (YYYY-MM-DD); openapi_types.Date enforces the format
// during unmarshalling.
type createPlanRequest struct {
	Name      string              `json:"name"`
	StartDate *openapi_types.Date `json:"start_date"`
	EndDate   *openapi_types.Date `json:"end_date"`
}

func (req createPlanRequest) toPlan() (domain.Plan, error) {
	if req.StartDate == nil || req.EndDate == nil {
		return domain.Plan{}, errors.New("start_date and end_date are required")
	}
	return domain.Plan{
		Name:      req.Name,
		StartDate: domain.NormalizeDate(req.StartDate.Time),
		EndDate:   domain.NormalizeDate(req.EndDate.Time),
	}, nil
}

// dayDetailsRequest is the body for PUT /api/v1/plans/{id}/days/{date}.
type dayDetailsRequest struct {
	Hotel    string `json:"hotel"`
	Activity string `json:"activity"`
}

// planResponse is the wire shape of a plan in lists and mutations.
type planResponse struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	StartDate      openapi_types.Date `json:"start_date"`
	EndDate        openapi_types.Date `json:"end_date"`
	Owner          string             `json:"owner"`
	Published      bool               `json:"published"`
	Hotels         map[string]string  `json:"hotels"`
	Activities     map[string]string  `json:"activities"`
	TripLengthDays int                `json:"trip_length_days"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// planDetailResponse adds the expanded day-by-day date range for the single
// plan view.
type planDetailResponse struct {
	planResponse
	DateRange []openapi_types.Date `json:"date_range"`
}

func planToResponse(p domain.Plan) planResponse {
	hotels := p.Hotels
	if hotels == nil {
		hotels = map[string]string{}
	}
	activities := p.Activities
	if activities == nil {
		activities = map[string]string{}
	}
	return planResponse{
		ID:             p.ID,
		Name:           p.Name,
		StartDate:      openapi_types.Date{Time: p.StartDate},
		EndDate:        openapi_types.Date{Time: p.EndDate},
		Owner:          p.OwnerUsername,
		Published:      p.Published,
		Hotels:         hotels,
		Activities:     activities,
		TripLengthDays: p.TripLengthInDays(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func planToDetailResponse(p domain.Plan) planDetailResponse {
	rng := p.DateRange()
	dates := make([]openapi_types.Date, len(rng))
	for i, d := range rng {
		dates[i] = openapi_types.Date{Time: d}
	}
	return planDetailResponse{planResponse: planToResponse(p), DateRange: dates}
}

func plansToResponse(plans []domain.Plan) []planResponse {
	out := make([]planResponse, len(plans))
	for i, p := range plans {
		out[i] = planToResponse(p)
	}
	return out
}
