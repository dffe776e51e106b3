package record

import (
	"context"
	"time"
)

// SortOrder controls record listing order.
type SortOrder string

const (
	SortDateAsc  SortOrder = "date-asc"
	SortDateDesc SortOrder = "date-desc"
)

// Repository defines the storage interface for records, comments and the profile.
type Repository interface {
	// CreateRecord adds a new record to the repository.
	CreateRecord(ctx context.Context, r *Record) error

	// GetRecord retrieves a record by ID.
	// Returns ErrRecordNotFound if no record exists with the given ID.
	GetRecord(ctx context.Context, id int64) (*Record, error)

	// UpdateRecord replaces the stored record with the given one.
	UpdateRecord(ctx context.Context, r *Record) error

	// DeleteRecord removes a record and its comments.
	DeleteRecord(ctx context.Context, id int64) error

	// ListRecords returns all records in the given order.
	ListRecords(ctx context.Context, order SortOrder) ([]*Record, error)

	// ListRecordsByDateRange returns records dated within the range (inclusive).
	ListRecordsByDateRange(ctx context.Context, start, end time.Time) ([]*Record, error)

	// AddComment attaches a comment to a record.
	AddComment(ctx context.Context, c *Comment) error

	// ListComments returns a record's comments ordered by creation time.
	ListComments(ctx context.Context, recordID int64) ([]*Comment, error)

	// GetProfile returns the stored profile, or nil if none has been saved.
	GetProfile(ctx context.Context) (*Profile, error)

	// SaveProfile creates or replaces the profile.
	SaveProfile(ctx context.Context, p *Profile) error

	// Close releases any resources held by the repository.
	Close() error
}
