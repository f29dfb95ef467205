// Package database builds *database.Client instances for tests, backed by a
// per-test PostgreSQL schema.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/pkg/database"
	"github.com/trendscope/trendscope/test/util"
)

// NewTestClient returns a migrated client on a fresh schema. With
// CI_DATABASE_URL set it targets the external CI Postgres; otherwise a
// testcontainer is started. SetupTestDatabase registers cleanup for both the
// schema and the connections.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)
	drv := entsql.OpenDB(dialect.Postgres, db)

	// ent's Schema.Create ran in SetupTestDatabase; the raw-SQL indexes
	// (full-text search, in-flight orchestrator dedup) go on top here.
	require.NoError(t, database.CreateSearchIndexes(ctx, drv))
	require.NoError(t, database.CreatePartialUniqueIndexes(ctx, drv))

	return database.NewClientFromEnt(entClient, db)
}
