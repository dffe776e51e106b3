// Package record defines the core domain types for worklog.
package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/hsinyuc/worklog/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle        = fmt.Errorf("title cannot be empty")
	ErrEmptyContent      = fmt.Errorf("content cannot be empty")
	ErrInvalidTimeFormat = fmt.Errorf("time must be in HH:MM format")
	ErrEndBeforeStart    = fmt.Errorf("end time must be after start time")
	ErrEmptyComment      = fmt.Errorf("comment content cannot be empty")
)

// Domain errors.
var (
	ErrRecordNotFound  = fmt.Errorf("record not found")
	ErrCommentNotFound = fmt.Errorf("comment not found")
)

// Record represents a dated journal entry.
type Record struct {
	ID        int64
	Date      time.Time // calendar date, no time component
	StartTime string    // "HH:MM", empty when not recorded
	EndTime   string    // "HH:MM", empty when not recorded
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Comment is feedback text attached to a record.
type Comment struct {
	ID        int64
	RecordID  int64
	Content   string
	CreatedAt time.Time
}

// Profile holds the intern's personal details used for report metadata.
type Profile struct {
	Name      string
	Company   string
	Position  string
	Interests string
	Email     string
	GitHub    string
	LinkedIn  string
	UpdatedAt time.Time
}

// New creates a new Record with validation.
// date can be empty (defaults to today) or in YYYY-MM-DD format.
// start and end are optional, but when both are present end must be after start.
func New(title, content, date, start, end string, tags []string) (*Record, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	day, err := dateutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	if start != "" {
		if err := ValidateClock(start); err != nil {
			return nil, fmt.Errorf("start time: %w", err)
		}
	}
	if end != "" {
		if err := ValidateClock(end); err != nil {
			return nil, fmt.Errorf("end time: %w", err)
		}
	}
	if start != "" && end != "" && end <= start {
		return nil, ErrEndBeforeStart
	}

	return &Record{
		Date:      day,
		StartTime: start,
		EndTime:   end,
		Title:     title,
		Content:   content,
		Tags:      normalizeTags(tags),
		CreatedAt: time.Now(),
	}, nil
}

// NewComment creates a Comment with validation.
func NewComment(recordID int64, content string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}
	return &Comment{
		RecordID:  recordID,
		Content:   content,
		CreatedAt: time.Now(),
	}, nil
}

// ValidateClock checks that a wall-clock string is in HH:MM format.
func ValidateClock(s string) error {
	if len(s) != 5 {
		return ErrInvalidTimeFormat
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return ErrInvalidTimeFormat
	}
	return nil
}

// HasTag reports whether the record carries the given tag (case-insensitive).
func (r *Record) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range r.Tags {
		if strings.ToLower(t) == tag {
			return true
		}
	}
	return false
}

// Matches reports whether the record matches a free-text search query
// against title, content and tags.
func (r *Record) Matches(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Content), query) {
		return true
	}
	for _, t := range r.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

func normalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		out = append(out, t)
	}
	return out
}

// DefaultProfile returns placeholder profile values used until the intern
// fills in their own details.
func DefaultProfile() *Profile {
	return &Profile{
		Name:     "Your Name",
		Company:  "Current Company",
		Position: "Intern",
	}
}
