// Package repo contains all database access logic for the travel planner.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ovasilescu/travel-planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PlanRepo defines the persistence operations for trip plans.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type PlanRepo interface {
	// Create inserts a new plan and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, plan domain.Plan) (domain.Plan, error)

	// GetByID retrieves a single plan by its UUID primary key.
	// Returns domain.ErrNotFound if no plan with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Plan, error)

	// Update overwrites the mutable fields of an existing plan and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, plan domain.Plan) (domain.Plan, error)

	// Delete removes a plan by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListPublished returns all plans with published = true, oldest first.
	ListPublished(ctx context.Context) ([]domain.Plan, error)

	// ListByOwner returns all plans whose owner_username equals username,
	// oldest first.
	ListByOwner(ctx context.Context, username string) ([]domain.Plan, error)
}

// pgPlanRepo is the Postgres implementation of PlanRepo.
type pgPlanRepo struct {
	db db
}

// NewPlanRepo constructs a PlanRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPlanRepo(db db) PlanRepo {
	return &pgPlanRepo{db: db}
}

const planColumns = `id, name, start_date, end_date, owner_id, owner_username,
		       published, hotels, activities, created_at, updated_at`

// Create inserts a new plan row and returns the full persisted record.
func (r *pgPlanRepo) Create(ctx context.Context, plan domain.Plan) (domain.Plan, error) {
	const q = `
		INSERT INTO plans (name, start_date, end_date, owner_id, owner_username,
		                   published, hotels, activities)
		VALUES (@name, @start_date, @end_date, @owner_id, @owner_username,
		        @published, @hotels, @activities)
		RETURNING ` + planColumns

	row := r.db.QueryRow(ctx, q, planArgs(plan))
	result, err := scanPlan(row)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("repo.PlanRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a plan by primary key.
func (r *pgPlanRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Plan, error) {
	const q = `
		SELECT ` + planColumns + `
		FROM plans
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanPlan(row)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("repo.PlanRepo.GetByID: %w", err)
	}
	return result, nil
}

// Update overwrites the mutable fields of a plan and returns the updated record.
func (r *pgPlanRepo) Update(ctx context.Context, plan domain.Plan) (domain.Plan, error) {
	const q = `
		UPDATE plans
		SET name           = @name,
		    start_date     = @start_date,
		    end_date       = @end_date,
		    owner_id       = @owner_id,
		    owner_username = @owner_username,
		    published      = @published,
		    hotels         = @hotels,
		    activities     = @activities,
		    updated_at     = now()
		WHERE id = @id
		RETURNING ` + planColumns

	args := planArgs(plan)
	args["id"] = plan.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPlan(row)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("repo.PlanRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a plan by primary key.
func (r *pgPlanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM plans WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.PlanRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PlanRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// ListPublished returns all published plans in insertion order.
func (r *pgPlanRepo) ListPublished(ctx context.Context) ([]domain.Plan, error) {
	const q = `
		SELECT ` + planColumns + `
		FROM plans
		WHERE published
		ORDER BY created_at`

	return r.list(ctx, "ListPublished", q, nil)
}

// ListByOwner returns all plans owned by username in insertion order.
func (r *pgPlanRepo) ListByOwner(ctx context.Context, username string) ([]domain.Plan, error) {
	const q = `
		SELECT ` + planColumns + `
		FROM plans
		WHERE owner_username = @owner_username
		ORDER BY created_at`

	return r.list(ctx, "ListByOwner", q, pgx.NamedArgs{"owner_username": username})
}

// list runs a multi-row plan query and scans the results.
func (r *pgPlanRepo) list(ctx context.Context, op, q string, args pgx.NamedArgs) ([]domain.Plan, error) {
	var rows pgx.Rows
	var err error
	if args == nil {
		rows, err = r.db.Query(ctx, q)
	} else {
		rows, err = r.db.Query(ctx, q, args)
	}
	if err != nil {
		return nil, fmt.Errorf("repo.PlanRepo.%s: %w", op, err)
	}
	defer rows.Close()

	plans := []domain.Plan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PlanRepo.%s: scan: %w", op, err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PlanRepo.%s: rows: %w", op, err)
	}
	return plans, nil
}

// planArgs builds the named arguments shared by Create and Update.
// Nil detail maps are stored as empty JSONB objects so reads never see NULL.
func planArgs(plan domain.Plan) pgx.NamedArgs {
	hotels := plan.Hotels
	if hotels == nil {
		hotels = map[string]string{}
	}
	activities := plan.Activities
	if activities == nil {
		activities = map[string]string{}
	}
	return pgx.NamedArgs{
		"name":           plan.Name,
		"start_date":     plan.StartDate,
		"end_date":       plan.EndDate,
		"owner_id":       plan.OwnerID,
		"owner_username": plan.OwnerUsername,
		"published":      plan.Published,
		"hotels":         hotels,
		"activities":     activities,
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanPlan to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanPlan maps a single database row into a domain.Plan.
// The hotels and activities JSONB columns unmarshal straight into the
// string-keyed maps via pgx's JSON codec.
func scanPlan(s scanner) (domain.Plan, error) {
	var (
		p       domain.Plan
		id      pgtype.UUID
		ownerID pgtype.UUID
		start   pgtype.Date
		end     pgtype.Date
	)

	err := s.Scan(&id, &p.Name, &start, &end, &ownerID, &p.OwnerUsername,
		&p.Published, &p.Hotels, &p.Activities, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Plan{}, domain.ErrNotFound
		}
		return domain.Plan{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.OwnerID = uuid.UUID(ownerID.Bytes)
	p.StartDate = domain.NormalizeDate(start.Time)
	p.EndDate = domain.NormalizeDate(end.Time)
	return p, nil
}
