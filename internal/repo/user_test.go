package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovasilescu/travel-planner/internal/domain"
	"github.com/ovasilescu/travel-planner/internal/repo"
	"github.com/ovasilescu/travel-planner/testutil"
)

// newTestTx opens a transaction against the test database. The transaction is
// automatically rolled back when the test finishes, giving free per-test
// isolation with no cleanup SQL.
//
// Requires TEST_DATABASE_URL to be set; migrations are applied by TestMain.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// userFixture returns a domain.User with sensible defaults for use in tests.
func userFixture(username string) domain.User {
	return domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$10$fixturefixturefixturefixturefixturefixturefixturefix",
	}
}

func TestUserRepo_Create(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	got, err := r.Create(ctx, userFixture("alice"))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated")
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestUserRepo_Create_DuplicateUsername(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.Create(ctx, userFixture("alice"))
	require.NoError(t, err)

	// The unique constraint backstops the service-level check.
	_, err = r.Create(ctx, userFixture("alice"))

	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestUserRepo_GetByUsername(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, userFixture("alice"))
	require.NoError(t, err)

	got, err := r.GetByUsername(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.PasswordHash, got.PasswordHash)
}

func TestUserRepo_GetByUsername_NotFound(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))

	_, err := r.GetByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_Delete(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, userFixture("alice"))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
