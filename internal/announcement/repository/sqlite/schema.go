package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates all tables needed for the announcement store.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
-- Announcements
CREATE TABLE IF NOT EXISTS announcements (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    url TEXT NOT NULL DEFAULT '',
    posted_at TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL DEFAULT '',
    approved INTEGER,
    calendar_data TEXT,
    reason TEXT NOT NULL DEFAULT '',
    revalidation_requested INTEGER NOT NULL DEFAULT 0
);

-- Attachment images, ordered by idx within one announcement
CREATE TABLE IF NOT EXISTS announcement_images (
    announcement_id TEXT NOT NULL REFERENCES announcements(id) ON DELETE CASCADE,
    idx INTEGER NOT NULL,
    url TEXT NOT NULL,
    ocr_text TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (announcement_id, idx)
);

CREATE INDEX IF NOT EXISTS idx_announcements_approved ON announcements(approved);
`
