package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hsinyuc/worklog/internal/record"
)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "worklog.db"))
	if err != nil {
		t.Fatalf("creating test repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testRecord(t *testing.T, date string) *record.Record {
	t.Helper()
	r, err := record.New("Work on importer", "Wrote the CSV import path.", date, "09:00", "18:00", []string{"go"})
	if err != nil {
		t.Fatalf("building record: %v", err)
	}
	return r
}

func TestCreateRecord(t *testing.T) {
	repo := newTestRepo(t)

	r := testRecord(t, "2025-03-10")
	if err := repo.CreateRecord(context.Background(), r); err != nil {
		t.Fatalf("CreateRecord failed: %v", err)
	}

	if r.ID == 0 {
		t.Error("expected ID to be set after insert")
	}
}

func TestGetRecord(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	r := testRecord(t, "2025-03-10")
	if err := repo.CreateRecord(ctx, r); err != nil {
		t.Fatalf("CreateRecord failed: %v", err)
	}

	got, err := repo.GetRecord(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}

	if got.Title != r.Title {
		t.Errorf("expected title %q, got %q", r.Title, got.Title)
	}
	if !got.Date.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", got.Date)
	}
	if got.StartTime != "09:00" || got.EndTime != "18:00" {
		t.Errorf("unexpected times %s-%s", got.StartTime, got.EndTime)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "go" {
		t.Errorf("unexpected tags %v", got.Tags)
	}
}

func TestGetRecord_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetRecord(context.Background(), 999)
	if !errors.Is(err, record.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestGetRecord_EmptyTimes(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	r, err := record.New("Notes", "Sprint planning notes.", "2025-03-10", "", "", nil)
	if err != nil {
		t.Fatalf("building record: %v", err)
	}
	if err := repo.CreateRecord(ctx, r); err != nil {
		t.Fatalf("CreateRecord failed: %v", err)
	}

	got, err := repo.GetRecord(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if got.StartTime != "" || got.EndTime != "" {
		t.Errorf("expected empty times, got %q-%q", got.StartTime, got.EndTime)
	}
}

func TestUpdateRecord(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	r := testRecord(t, "2025-03-10")
	if err := repo.CreateRecord(ctx, r); err != nil {
		t.Fatalf("CreateRecord failed: %v", err)
	}

	r.Title = "Work on exporter"
	r.Tags = []string{"go", "xlsx"}
	if err := repo.UpdateRecord(ctx, r); err != nil {
		t.Fatalf("UpdateRecord failed: %v", err)
	}

	got, err := repo.GetRecord(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if got.Title != "Work on exporter" {
		t.Errorf("expected updated title, got %q", got.Title)
	}
	if len(got.Tags) != 2 {
		t.Errorf("expected 2 tags, got %v", got.Tags)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("expected updated_at to be set")
	}
}

func TestUpdateRecord_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	r := testRecord(t, "2025-03-10")
	r.ID = 999
	if err := repo.UpdateRecord(context.Background(), r); !errors.Is(err, record.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteRecord(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	r := testRecord(t, "2025-03-10")
	if err := repo.CreateRecord(ctx, r); err != nil {
		t.Fatalf("CreateRecord failed: %v", err)
	}

	c, err := record.NewComment(r.ID, "Nice work")
	if err != nil {
		t.Fatalf("building comment: %v", err)
	}
	if err := repo.AddComment(ctx, c); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	if err := repo.DeleteRecord(ctx, r.ID); err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}

	if _, err := repo.GetRecord(ctx, r.ID); !errors.Is(err, record.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound after delete, got %v", err)
	}

	comments, err := repo.ListComments(ctx, r.ID)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("expected comments to cascade, got %d", len(comments))
	}
}

func TestListRecords_Order(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, date := range []string{"2025-03-12", "2025-03-10", "2025-03-14"} {
		if err := repo.CreateRecord(ctx, testRecord(t, date)); err != nil {
			t.Fatalf("CreateRecord failed: %v", err)
		}
	}

	asc, err := repo.ListRecords(ctx, record.SortDateAsc)
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if len(asc) != 3 {
		t.Fatalf("expected 3 records, got %d", len(asc))
	}
	if asc[0].Date.Day() != 10 || asc[2].Date.Day() != 14 {
		t.Errorf("unexpected ascending order: %v, %v, %v", asc[0].Date, asc[1].Date, asc[2].Date)
	}

	desc, err := repo.ListRecords(ctx, record.SortDateDesc)
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if desc[0].Date.Day() != 14 || desc[2].Date.Day() != 10 {
		t.Errorf("unexpected descending order: %v, %v, %v", desc[0].Date, desc[1].Date, desc[2].Date)
	}
}

func TestListRecordsByDateRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, date := range []string{"2025-03-09", "2025-03-10", "2025-03-12", "2025-03-16", "2025-03-17"} {
		if err := repo.CreateRecord(ctx, testRecord(t, date)); err != nil {
			t.Fatalf("CreateRecord failed: %v", err)
		}
	}

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

	got, err := repo.ListRecordsByDateRange(ctx, start, end)
	if err != nil {
		t.Fatalf("ListRecordsByDateRange failed: %v", err)
	}

	// Both bounds are inclusive.
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if got[0].Date.Day() != 10 || got[2].Date.Day() != 16 {
		t.Errorf("unexpected range result: %v, %v, %v", got[0].Date, got[1].Date, got[2].Date)
	}
}

func TestComments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	r := testRecord(t, "2025-03-10")
	if err := repo.CreateRecord(ctx, r); err != nil {
		t.Fatalf("CreateRecord failed: %v", err)
	}

	for _, content := range []string{"First pass looks good.", "Consider adding tests."} {
		c, err := record.NewComment(r.ID, content)
		if err != nil {
			t.Fatalf("building comment: %v", err)
		}
		if err := repo.AddComment(ctx, c); err != nil {
			t.Fatalf("AddComment failed: %v", err)
		}
		if c.ID == 0 {
			t.Error("expected comment ID to be set")
		}
	}

	comments, err := repo.ListComments(ctx, r.ID)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Content != "First pass looks good." {
		t.Errorf("unexpected first comment %q", comments[0].Content)
	}
}

func TestAddComment_MissingRecord(t *testing.T) {
	repo := newTestRepo(t)

	c, err := record.NewComment(999, "orphan")
	if err != nil {
		t.Fatalf("building comment: %v", err)
	}
	if err := repo.AddComment(context.Background(), c); !errors.Is(err, record.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestProfile(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	got, err := repo.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil profile before save, got %+v", got)
	}

	p := &record.Profile{
		Name:     "Chen Yu",
		Company:  "Acme Labs",
		Position: "Backend Intern",
		Email:    "chen@example.com",
	}
	if err := repo.SaveProfile(ctx, p); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, err = repo.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected profile after save")
	}
	if got.Name != "Chen Yu" || got.Position != "Backend Intern" {
		t.Errorf("unexpected profile %+v", got)
	}

	// Saving again replaces the single row.
	p.Position = "Platform Intern"
	if err := repo.SaveProfile(ctx, p); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	got, err = repo.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.Position != "Platform Intern" {
		t.Errorf("expected replaced position, got %q", got.Position)
	}
}
