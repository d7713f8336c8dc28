// Package testutil provides PostgreSQL helpers for integration tests.
package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/slotstash/internal/config"
	"github.com/cory-johannsen/slotstash/internal/storage/postgres"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance.
type PostgresContainer struct {
	container testcontainers.Container
	Pool      *postgres.Pool
	Config    config.DatabaseConfig
}

// NewPostgresContainer starts a PostgreSQL test container and returns
// a connected Pool.
//
// Precondition: Docker must be available.
// Postcondition: Returns a running container with a connected pool,
// or fails the test.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	ctx := context.Background()
	start := time.Now()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("starting postgres container: %v [%s]", err, time.Since(start))
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("getting container host: %v", err)
	}
	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("getting mapped port: %v", err)
	}

	dbCfg := config.DatabaseConfig{
		Enabled:         true,
		Host:            host,
		Port:            mappedPort.Int(),
		User:            "test",
		Password:        "test",
		Name:            "test",
		SSLMode:         "disable",
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 5 * time.Minute,
	}

	pool, err := postgres.NewPool(ctx, dbCfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("connecting to test postgres: %v [%s]", err, time.Since(start))
	}
	t.Logf("postgres container started [%s]", time.Since(start))

	t.Cleanup(func() {
		pool.Close()
		_ = container.Terminate(ctx)
	})
	return &PostgresContainer{container: container, Pool: pool, Config: dbCfg}
}

// ApplyMigrations runs every up migration in the repository's migrations
// directory against the container.
//
// Postcondition: The schema is at the latest version, or the test has failed.
func (pc *PostgresContainer) ApplyMigrations(t *testing.T) {
	t.Helper()
	MigrateUp(t, pc.Config.DSN())
}

// MigrateUp applies all up migrations to the database at dsn.
func MigrateUp(t *testing.T, dsn string) {
	t.Helper()
	start := time.Now()
	m, err := migrate.New("file://"+MigrationsDir(t), dsn)
	if err != nil {
		t.Fatalf("creating migrator: %v", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("applying migrations: %v", err)
	}
	t.Logf("migrations applied [%s]", time.Since(start))
}

// MigrationsDir returns the absolute path of the repository's migrations directory.
func MigrationsDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("locating testutil source file")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// NewPool returns a migrated pgx pool for integration tests. TEST_DSN selects
// an existing database; otherwise STASH_TEST_DOCKER=1 starts a container.
// The test is skipped when neither is set.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if dsn := os.Getenv("TEST_DSN"); dsn != "" {
		MigrateUp(t, dsn)
		pool, err := pgxpool.New(context.Background(), dsn)
		if err != nil {
			t.Fatalf("connecting to test DB: %v", err)
		}
		t.Cleanup(pool.Close)
		return pool
	}
	if os.Getenv("STASH_TEST_DOCKER") != "1" {
		t.Skip("TEST_DSN not set and STASH_TEST_DOCKER != 1; skipping integration test")
	}
	pc := NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return pc.Pool.DB()
}
