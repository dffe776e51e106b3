// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/hsinyuc/worklog/internal/record"
)

// SQLite implements record.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// CreateRecord adds a new record to the repository.
func (s *SQLite) CreateRecord(ctx context.Context, r *record.Record) error {
	tags, err := encodeTags(r.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO records (date, start_time, end_time, title, content, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		r.Date.Format("2006-01-02"),
		nullString(r.StartTime),
		nullString(r.EndTime),
		r.Title,
		r.Content,
		tags,
		r.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	r.ID = id

	return nil
}

// GetRecord retrieves a record by ID.
func (s *SQLite) GetRecord(ctx context.Context, id int64) (*record.Record, error) {
	query := selectRecords + ` WHERE id = ?`

	r, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, record.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying record: %w", err)
	}
	return r, nil
}

// UpdateRecord replaces the stored record with the given one.
func (s *SQLite) UpdateRecord(ctx context.Context, r *record.Record) error {
	tags, err := encodeTags(r.Tags)
	if err != nil {
		return err
	}

	query := `
		UPDATE records
		SET date = ?, start_time = ?, end_time = ?, title = ?, content = ?, tags = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		r.Date.Format("2006-01-02"),
		nullString(r.StartTime),
		nullString(r.EndTime),
		r.Title,
		r.Content,
		tags,
		time.Now().Format(time.RFC3339),
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("updating record: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return record.ErrRecordNotFound
	}

	return nil
}

// DeleteRecord removes a record and its comments.
func (s *SQLite) DeleteRecord(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return record.ErrRecordNotFound
	}

	return nil
}

// ListRecords returns all records in the given order.
func (s *SQLite) ListRecords(ctx context.Context, order record.SortOrder) ([]*record.Record, error) {
	query := selectRecords + ` ORDER BY date, created_at, id`
	if order == record.SortDateDesc {
		query = selectRecords + ` ORDER BY date DESC, created_at DESC, id DESC`
	}

	return s.queryRecords(ctx, query)
}

// ListRecordsByDateRange returns records dated within the range (inclusive).
func (s *SQLite) ListRecordsByDateRange(ctx context.Context, start, end time.Time) ([]*record.Record, error) {
	query := selectRecords + ` WHERE date >= ? AND date <= ? ORDER BY date, created_at, id`
	return s.queryRecords(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// AddComment attaches a comment to a record.
func (s *SQLite) AddComment(ctx context.Context, c *record.Comment) error {
	if _, err := s.GetRecord(ctx, c.RecordID); err != nil {
		return err
	}

	query := `INSERT INTO comments (record_id, content, created_at) VALUES (?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		c.RecordID,
		c.Content,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	c.ID = id

	return nil
}

// ListComments returns a record's comments ordered by creation time.
func (s *SQLite) ListComments(ctx context.Context, recordID int64) ([]*record.Comment, error) {
	query := `
		SELECT id, record_id, content, created_at
		FROM comments
		WHERE record_id = ?
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, recordID)
	if err != nil {
		return nil, fmt.Errorf("querying comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var comments []*record.Comment
	for rows.Next() {
		var (
			c         record.Comment
			createdAt string
		)
		if err := rows.Scan(&c.ID, &c.RecordID, &c.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comments: %w", err)
	}

	return comments, nil
}

// GetProfile returns the stored profile, or nil if none has been saved.
func (s *SQLite) GetProfile(ctx context.Context) (*record.Profile, error) {
	query := `
		SELECT name, company, position, interests, email, github, linkedin, updated_at
		FROM profile
		WHERE id = 1
	`

	var (
		p         record.Profile
		updatedAt sql.NullString
	)

	err := s.db.QueryRowContext(ctx, query).Scan(
		&p.Name,
		&p.Company,
		&p.Position,
		&p.Interests,
		&p.Email,
		&p.GitHub,
		&p.LinkedIn,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	if updatedAt.Valid {
		p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing updated at: %w", err)
		}
	}

	return &p, nil
}

// SaveProfile creates or replaces the profile.
func (s *SQLite) SaveProfile(ctx context.Context, p *record.Profile) error {
	query := `
		INSERT INTO profile (id, name, company, position, interests, email, github, linkedin, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			company = excluded.company,
			position = excluded.position,
			interests = excluded.interests,
			email = excluded.email,
			github = excluded.github,
			linkedin = excluded.linkedin,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.Company,
		p.Position,
		p.Interests,
		p.Email,
		p.GitHub,
		p.LinkedIn,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

const selectRecords = `
	SELECT id, date, start_time, end_time, title, content, tags, created_at, updated_at
	FROM records
`

// scanner abstracts sql.Row and sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*record.Record, error) {
	var (
		r         record.Record
		date      string
		startTime sql.NullString
		endTime   sql.NullString
		tags      string
		createdAt string
		updatedAt sql.NullString
	)

	err := row.Scan(
		&r.ID,
		&date,
		&startTime,
		&endTime,
		&r.Title,
		&r.Content,
		&tags,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.Date, err = time.Parse(time.RFC3339, date)
	if err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}

	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	if updatedAt.Valid {
		r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing updated at: %w", err)
		}
	}

	r.StartTime = startTime.String
	r.EndTime = endTime.String

	if err := json.Unmarshal([]byte(tags), &r.Tags); err != nil {
		return nil, fmt.Errorf("parsing tags: %w", err)
	}

	return &r, nil
}

func (s *SQLite) queryRecords(ctx context.Context, query string, args ...any) ([]*record.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*record.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return records, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encoding tags: %w", err)
	}
	return string(data), nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
