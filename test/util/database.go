// Package util holds the shared Postgres plumbing for tests: one container
// (or the CI service database) per package, one schema per test.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/trendscope/trendscope/ent"
)

var (
	containerOnce sync.Once
	containerErr  error
	sharedConnStr string
)

// SetupTestDatabase gives the calling test its own schema on the shared
// database, migrated via ent, with cleanup registered. The returned pool has
// search_path baked into its connection string so every pooled connection
// lands in the test's schema.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	ctx := context.Background()
	connStr := baseDatabase(t)
	schema := GenerateSchemaName(t)

	admin, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema))
	require.NoError(t, err)
	require.NoError(t, admin.Close())
	t.Logf("Created test schema: %s", schema)

	db, err := stdsql.Open("pgx", AddSearchPathToConnString(connStr, schema))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	require.NoError(t, entClient.Schema.Create(ctx))

	t.Cleanup(func() {
		// Drop first, while the pool is still open.
		if _, err := db.ExecContext(context.Background(),
			fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
			t.Logf("Warning: failed to drop schema %s: %v", schema, err)
		}
		_ = entClient.Close()
		_ = db.Close()
	})

	return entClient, db
}

// GetBaseConnectionString exposes the raw connection string, without a
// search_path, for code that opens its own dedicated connection — the
// NOTIFY listener's pgx.Conn in particular.
func GetBaseConnectionString(t *testing.T) string {
	return baseDatabase(t)
}

// baseDatabase returns CI_DATABASE_URL when set, else starts the package's
// shared testcontainer exactly once.
func baseDatabase(t *testing.T) string {
	if ciURL := os.Getenv("CI_DATABASE_URL"); ciURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		return ciURL
	}

	containerOnce.Do(func() {
		ctx := context.Background()
		t.Log("Starting shared PostgreSQL testcontainer")

		container, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			postgres.WithInitScripts(initScriptPath()),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}

		sharedConnStr, err = container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			containerErr = fmt.Errorf("failed to get connection string: %w", err)
			return
		}
		t.Logf("Shared container ready: %s", sharedConnStr)
	})

	require.NoError(t, containerErr, "shared test container setup failed")
	return sharedConnStr
}

// GenerateSchemaName builds a unique schema identifier from the test name:
// test_<sanitized_name>_<random_hex>, kept under Postgres's 63-char limit.
func GenerateSchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("failed to generate schema suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// AddSearchPathToConnString appends search_path so every connection the pool
// opens targets the given schema.
func AddSearchPathToConnString(connStr, schema string) string {
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	return connStr + sep + "search_path=" + schema
}

// initScriptPath resolves deploy/postgres-init/01-init.sql relative to this
// source file, so tests in any package find it.
func initScriptPath() string {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("initScriptPath: runtime.Caller(0) failed")
	}
	root := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	return filepath.Join(root, "deploy", "postgres-init", "01-init.sql")
}
