package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS records (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			date       DATE NOT NULL,
			start_time TIME,
			end_time   TIME,
			title      TEXT NOT NULL,
			content    TEXT NOT NULL,
			tags       TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME
		);

		CREATE INDEX IF NOT EXISTS idx_records_date ON records(date);

		CREATE TABLE IF NOT EXISTS comments (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			record_id  INTEGER NOT NULL REFERENCES records(id) ON DELETE CASCADE,
			content    TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_comments_record ON comments(record_id);

		CREATE TABLE IF NOT EXISTS profile (
			id         INTEGER PRIMARY KEY CHECK (id = 1),
			name       TEXT NOT NULL DEFAULT '',
			company    TEXT NOT NULL DEFAULT '',
			position   TEXT NOT NULL DEFAULT '',
			interests  TEXT NOT NULL DEFAULT '',
			email      TEXT NOT NULL DEFAULT '',
			github     TEXT NOT NULL DEFAULT '',
			linkedin   TEXT NOT NULL DEFAULT '',
			updated_at DATETIME
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
