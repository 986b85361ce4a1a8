package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text GIN indexes for PostgreSQL. The
// 'simple' configuration tokenizes CJK text character-by-character, which is
// what memory retrieval over mixed Chinese/English chat needs.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_messages_content_gin
		ON messages USING gin(to_tsvector('simple', content))`)
	if err != nil {
		return fmt.Errorf("failed to create messages content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_transcripts_text_gin
		ON transcripts USING gin(to_tsvector('simple', user_text || ' ' || bot_text))`)
	if err != nil {
		return fmt.Errorf("failed to create transcripts text GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_derived_notes_content_gin
		ON derived_notes USING gin(to_tsvector('simple', content))`)
	if err != nil {
		return fmt.Errorf("failed to create derived_notes content GIN index: %w", err)
	}

	return nil
}
