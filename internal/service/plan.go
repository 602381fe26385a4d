// Package service contains the business logic for the travel planner.
// Services validate inputs, enforce ownership rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ovasilescu/travel-planner/internal/domain"
	"github.com/ovasilescu/travel-planner/internal/metrics"
	"github.com/ovasilescu/travel-planner/internal/repo"
)

// PlanService implements business logic for trip plan operations.
type PlanService struct {
	plans repo.PlanRepo
}

// NewPlanService constructs a PlanService backed by the provided PlanRepo.
func NewPlanService(plans repo.PlanRepo) *PlanService {
	return &PlanService{plans: plans}
}

// ListPublished returns all published plans.
// Always returns a non-nil slice so callers can safely range over it.
func (s *PlanService) ListPublished(ctx context.Context) ([]domain.Plan, error) {
	plans, err := s.plans.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PlanService.ListPublished: %w", err)
	}
	if plans == nil {
		return []domain.Plan{}, nil
	}
	return plans, nil
}

// GetByID returns a single plan by ID.
// Returns domain.ErrNotFound if no plan with that ID exists — absence is a
// value every caller has to handle, never a nil to dereference.
func (s *PlanService) GetByID(ctx context.Context, id uuid.UUID) (domain.Plan, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("service.PlanService.GetByID: %w", err)
	}
	return plan, nil
}

// Create validates and persists a new plan for owner.
// Returns domain.ErrValidation if the name is blank or either date is unset.
// An inverted date range (start after end) is accepted; it simply yields an
// empty itinerary.
func (s *PlanService) Create(ctx context.Context, plan domain.Plan, owner domain.User) (domain.Plan, error) {
	if err := validatePlan(plan); err != nil {
		return domain.Plan{}, err
	}
	plan.ID = uuid.Nil
	plan.Published = false
	plan.SetOwner(owner)

	result, err := s.plans.Create(ctx, plan)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("service.PlanService.Create: %w", err)
	}
	return result, nil
}

// Save upserts a plan: inserts when the ID is unset, updates otherwise.
// Returns domain.ErrNotFound when updating a plan that no longer exists.
func (s *PlanService) Save(ctx context.Context, plan domain.Plan) (domain.Plan, error) {
	var result domain.Plan
	var err error
	if plan.ID == uuid.Nil {
		result, err = s.plans.Create(ctx, plan)
	} else {
		result, err = s.plans.Update(ctx, plan)
	}
	if err != nil {
		return domain.Plan{}, fmt.Errorf("service.PlanService.Save: %w", err)
	}
	return result, nil
}

// Delete removes a plan by ID on behalf of actingUsername.
// Returns domain.ErrNotFound if the plan does not exist and domain.ErrNotOwner
// if it is owned by someone else; nothing is deleted in either case.
func (s *PlanService) Delete(ctx context.Context, id uuid.UUID, actingUsername string) error {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.PlanService.Delete: %w", err)
	}
	if plan.OwnerUsername != actingUsername {
		return fmt.Errorf("service.PlanService.Delete: %w", domain.ErrNotOwner)
	}
	if err := s.plans.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PlanService.Delete: %w", err)
	}
	return nil
}

// FindByOwner returns all plans owned by username.
// Always returns a non-nil slice so callers can safely range over it.
func (s *PlanService) FindByOwner(ctx context.Context, username string) ([]domain.Plan, error) {
	plans, err := s.plans.ListByOwner(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("service.PlanService.FindByOwner: %w", err)
	}
	if plans == nil {
		return []domain.Plan{}, nil
	}
	return plans, nil
}

// SaveCopyForUser clones source into a brand-new plan owned by user and
// persists it. The clone copies name, dates, hotels, and activities, gets a
// fresh identity, and is always unpublished. The source plan is never
// mutated.
//
// The self-copy business rule ("a user may not copy their own plan") is
// enforced by the caller before invoking this — compare
// source.OwnerUsername against the acting user first.
func (s *PlanService) SaveCopyForUser(ctx context.Context, source domain.Plan, user domain.User) (domain.Plan, error) {
	clone := source.CopyForOwner(user)
	result, err := s.plans.Create(ctx, clone)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("service.PlanService.SaveCopyForUser: %w", err)
	}
	metrics.PlansCopied.Inc()
	return result, nil
}

// SetPublished flips the published flag on behalf of actingUsername.
// Returns domain.ErrNotFound if the plan does not exist and
// domain.ErrNotOwner if it is owned by someone else.
func (s *PlanService) SetPublished(ctx context.Context, id uuid.UUID, actingUsername string, published bool) (domain.Plan, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("service.PlanService.SetPublished: %w", err)
	}
	if plan.OwnerUsername != actingUsername {
		return domain.Plan{}, fmt.Errorf("service.PlanService.SetPublished: %w", domain.ErrNotOwner)
	}

	plan.Published = published
	result, err := s.plans.Update(ctx, plan)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("service.PlanService.SetPublished: %w", err)
	}
	return result, nil
}

// SetDayDetails records the hotel and activity for one date of the plan on
// behalf of actingUsername.
// Returns domain.ErrNotFound if the plan does not exist, domain.ErrNotOwner
// if it is owned by someone else, and domain.ErrValidation if the date falls
// outside the plan's range — nothing is persisted in any of those cases.
func (s *PlanService) SetDayDetails(ctx context.Context, id uuid.UUID, actingUsername string, date time.Time, hotel, activity string) (domain.Plan, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("service.PlanService.SetDayDetails: %w", err)
	}
	if plan.OwnerUsername != actingUsername {
		return domain.Plan{}, fmt.Errorf("service.PlanService.SetDayDetails: %w", domain.ErrNotOwner)
	}
	if !plan.ContainsDate(date) {
		return domain.Plan{}, fmt.Errorf("%w: date is outside the trip's range", domain.ErrValidation)
	}

	plan.SetHotel(date, hotel)
	plan.SetActivity(date, activity)

	result, err := s.plans.Update(ctx, plan)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("service.PlanService.SetDayDetails: %w", err)
	}
	return result, nil
}

// validatePlan enforces the rules common to plan creation.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - Both dates must be set; the derived itinerary needs them.
func validatePlan(plan domain.Plan) error {
	if strings.TrimSpace(plan.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if plan.StartDate.IsZero() || plan.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	return nil
}
