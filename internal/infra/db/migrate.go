package db

import (
	"database/sql"
)

// MigrateUp creates the schema if it does not exist. Statements are
// idempotent so the migration can run on every startup.
func MigrateUp(db *sql.DB) error {
	// gen_random_uuid() is built in since PostgreSQL 13; the extension
	// covers older servers. Ignore errors when the role lacks privileges.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`)

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    title        TEXT NOT NULL,
    summary      TEXT NOT NULL,
    content      TEXT,
    category     VARCHAR(20) NOT NULL,
    language     VARCHAR(2) NOT NULL,
    author       TEXT NOT NULL,
    image_url    TEXT,
    read_minutes INTEGER NOT NULL DEFAULT 5,
    views        INTEGER NOT NULL DEFAULT 0,
    is_breaking  BOOLEAN NOT NULL DEFAULT FALSE,
    published_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// every listing sorts on published_at DESC
		`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_language ON articles(language)`,
		// breaking news is a small subset, partial index keeps it cheap
		`CREATE INDEX IF NOT EXISTS idx_articles_is_breaking ON articles(is_breaking) WHERE is_breaking = TRUE`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the schema in reverse order of creation.
// Use with caution: this deletes all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_articles_is_breaking`,
		`DROP INDEX IF EXISTS idx_articles_language`,
		`DROP INDEX IF EXISTS idx_articles_category`,
		`DROP INDEX IF EXISTS idx_articles_published_at`,
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS users`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
