package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/pkg/database"
	"github.com/trendscope/trendscope/test/util"
)

// SharedTestDB is one PostgreSQL schema shared by several simulated replicas.
// Every replica gets its own connection pool through NewClient, all pointing
// at the same schema, so tests can publish an audit event through one pool
// and observe NOTIFY delivery through another.
type SharedTestDB struct {
	schemaConnStr string
	baseConnStr   string
	schema        string
}

// NewSharedTestDB provisions the schema, migrates it once, and drops it on
// cleanup. Replica pools are created afterwards with NewClient.
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()
	ctx := context.Background()

	baseConnStr := util.GetBaseConnectionString(t)
	schema := util.GenerateSchemaName(t)

	admin, err := stdsql.Open("pgx", baseConnStr)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema))
	require.NoError(t, err)
	require.NoError(t, admin.Close())
	t.Logf("SharedTestDB: created schema %s", schema)

	s := &SharedTestDB{
		schemaConnStr: util.AddSearchPathToConnString(baseConnStr, schema),
		baseConnStr:   baseConnStr,
		schema:        schema,
	}

	// Migrate through a throwaway pool; replicas never run migrations.
	db, drv := s.openPool(t)
	migrator := ent.NewClient(ent.Driver(drv))
	require.NoError(t, migrator.Schema.Create(ctx))
	require.NoError(t, database.CreateSearchIndexes(ctx, drv))
	require.NoError(t, database.CreatePartialUniqueIndexes(ctx, drv))
	_ = migrator.Close()
	_ = db.Close()

	// Cleanups run LIFO, so every replica registered later closes its pool
	// before the schema drops.
	t.Cleanup(func() {
		admin, err := stdsql.Open("pgx", s.baseConnStr)
		if err != nil {
			t.Logf("SharedTestDB: cannot connect to drop schema %s: %v", s.schema, err)
			return
		}
		defer func() { _ = admin.Close() }()
		if _, err := admin.ExecContext(context.Background(),
			fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", s.schema)); err != nil {
			t.Logf("SharedTestDB: failed to drop schema %s: %v", s.schema, err)
		}
	})

	return s
}

// NewClient opens an independent pool onto the shared schema, wrapped as a
// *database.Client. Each replica owning its pool means one can be shut down
// mid-test without starving the others.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	db, drv := s.openPool(t)
	entClient := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})
	return database.NewClientFromEnt(entClient, db)
}

func (s *SharedTestDB) openPool(t *testing.T) (*stdsql.DB, *entsql.Driver) {
	t.Helper()
	db, err := stdsql.Open("pgx", s.schemaConnStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	return db, entsql.OpenDB(dialect.Postgres, db)
}
