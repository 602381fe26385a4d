// Package handler implements the HTTP layer of the travel planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, plan.go, user.go) but all share the same Server struct so
// they can access its dependencies. Handlers stay thin: decode, delegate to a
// service, map errors, encode.
package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ovasilescu/travel-planner/internal/auth"
	"github.com/ovasilescu/travel-planner/internal/domain"
	"github.com/ovasilescu/travel-planner/internal/service"
)

// PlanServicer defines the business operations the plan handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type PlanServicer interface {
	ListPublished(ctx context.Context) ([]domain.Plan, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Plan, error)
	Create(ctx context.Context, plan domain.Plan, owner domain.User) (domain.Plan, error)
	Delete(ctx context.Context, id uuid.UUID, actingUsername string) error
	FindByOwner(ctx context.Context, username string) ([]domain.Plan, error)
	SaveCopyForUser(ctx context.Context, source domain.Plan, user domain.User) (domain.Plan, error)
	SetPublished(ctx context.Context, id uuid.UUID, actingUsername string, published bool) (domain.Plan, error)
	SetDayDetails(ctx context.Context, id uuid.UUID, actingUsername string, date time.Time, hotel, activity string) (domain.Plan, error)
}

// UserServicer defines the account operations the user handlers depend on.
type UserServicer interface {
	Register(ctx context.Context, reg service.Registration) (domain.User, error)
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

// Server holds the dependencies shared by all HTTP handlers.
type Server struct {
	plans  PlanServicer
	users  UserServicer
	tokens *auth.TokenManager
}

// NewServer constructs the Server with all its dependencies.
func NewServer(plans PlanServicer, users UserServicer, tokens *auth.TokenManager) *Server {
	return &Server{plans: plans, users: users, tokens: tokens}
}
