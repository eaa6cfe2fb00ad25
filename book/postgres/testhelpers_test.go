//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
Integration test helpers: a real PostgreSQL container per test.

Run with: go test -tags=integration ./book/postgres/...

Requires Docker. Set TESTCONTAINERS_REUSE_ENABLE=true to share one
container across tests and cut the runtime considerably.
*/

const (
	defaultDatabase = "testdb"
	defaultUser     = "testuser"
	defaultPassword = "testpass"
)

// PostgresContainer bundles the container with an open connection
type PostgresContainer struct {
	Container testcontainers.Container
	DB        *sql.DB
	ConnStr   string
}

// SetupPostgresContainer creates and starts a real PostgreSQL container
func SetupPostgresContainer(t *testing.T, ctx context.Context) (*PostgresContainer, func()) {
	t.Helper()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(defaultDatabase),
		postgres.WithUsername(defaultUser),
		postgres.WithPassword(defaultPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	cleanup := func() {
		db.Close()
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("terminating container: %v", err)
		}
	}

	return &PostgresContainer{
		Container: pgContainer,
		DB:        db,
		ConnStr:   connStr,
	}, cleanup
}

// CreateTestRepository opens a repository against the test container
func CreateTestRepository(t *testing.T, connStr string) *Repository {
	t.Helper()

	repo, err := NewRepository(connStr)
	require.NoError(t, err)
	return repo
}

// CreateTestSchema creates the book table in the test database
func CreateTestSchema(t *testing.T, ctx context.Context, db *sql.DB) {
	t.Helper()

	repo := &Repository{DB: db}
	require.NoError(t, repo.CreateTable(ctx))
}
