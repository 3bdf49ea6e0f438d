package assessment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mwalimu/gradebook/core"
	"github.com/mwalimu/gradebook/core/assessment"
	"github.com/mwalimu/gradebook/core/maintenance"
	inmemdb "github.com/mwalimu/gradebook/storage/database/inmem"
	testutil "github.com/mwalimu/gradebook/tests"
)

func setup(t *testing.T) (*assessment.Service, *maintenance.Service) {
	t.Helper()
	db := inmemdb.Open()
	gate := maintenance.NewService(inmemdb.NewSettingsRepository(db), &testutil.TestLogger{})
	return assessment.NewService(inmemdb.NewAssessmentRepository(db), gate), gate
}

func TestServiceRecordScoreUpsert(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	if err := svc.RecordScore(ctx, 101, "s42", "quiz", 55); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	// same key again: update, not duplicate
	if err := svc.RecordScore(ctx, 101, "s42", "quiz", 75); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}

	scores, err := svc.ScoresForSection(ctx, 101)
	if err != nil {
		t.Fatalf("ScoresForSection() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("ScoresForSection() returned %d rows, want 1", len(scores))
	}
	if scores[0].Score != 75 {
		t.Errorf("current score = %v, want last write 75", scores[0].Score)
	}
}

func TestServiceRecordScoreDistinctKeys(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	for _, rec := range []struct {
		student string
		typ     string
		score   float64
	}{
		{"s42", "quiz", 55},
		{"s42", "midterm", 60},
		{"s43", "quiz", 70},
	} {
		if err := svc.RecordScore(ctx, 101, rec.student, rec.typ, rec.score); err != nil {
			t.Fatalf("RecordScore(%s, %s) failed: %v", rec.student, rec.typ, err)
		}
	}

	scores, err := svc.ScoresForSection(ctx, 101)
	if err != nil {
		t.Fatalf("ScoresForSection() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("ScoresForSection() returned %d rows, want 3", len(scores))
	}
}

func TestServiceAverage(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	// no rows: zero-default, not an error
	avg, err := svc.Average(ctx, 101, "s42", "quiz")
	if err != nil {
		t.Fatalf("Average() failed: %v", err)
	}
	if avg != 0 {
		t.Errorf("Average() with no rows = %v, want 0", avg)
	}

	if err := svc.RecordScore(ctx, 101, "s42", "quiz", 60); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	avg, err = svc.Average(ctx, 101, "s42", "quiz")
	if err != nil {
		t.Fatalf("Average() failed: %v", err)
	}
	if avg != 60 {
		t.Errorf("Average() = %v, want 60", avg)
	}
}

func TestServiceRecordScoreBlockedUnderMaintenance(t *testing.T) {
	svc, gate := setup(t)
	ctx := context.Background()

	if err := gate.Set(ctx, true); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	err := svc.RecordScore(ctx, 101, "s42", "quiz", 55)
	if !errors.Is(err, core.ErrMaintenanceActive) {
		t.Errorf("RecordScore() error = %v, want ErrMaintenanceActive", err)
	}
}
