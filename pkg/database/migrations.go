package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient text search over scraped article bodies, which the
// outlier categorizer and the training-pattern endpoint query.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_client_articles_content_gin
		ON client_articles USING gin(to_tsvector('simple', COALESCE(content_text, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create client_articles content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_competitor_articles_content_gin
		ON competitor_articles USING gin(to_tsvector('simple', COALESCE(content_text, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create competitor_articles content GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express through the schema DSL.
//
// The in-flight orchestrator index is the backbone of audit dedup: at most
// one pending/running audit_orchestrator execution may exist per domain, so
// concurrent audit requests race on a constraint violation instead of
// launching duplicate work.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS workflowexecution_inflight_orchestrator
		ON workflow_executions (workflow_type, domain)
		WHERE workflow_type = 'audit_orchestrator'
		  AND status IN ('pending', 'running')
		  AND deleted_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create in-flight orchestrator index: %w", err)
	}

	return nil
}
