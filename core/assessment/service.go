package assessment

import (
	"context"

	"github.com/mwalimu/gradebook/core"
)

type (
	Repository interface {
		// UpdateScore updates the current row matching (section, student,
		// type) and returns the number of rows affected.
		UpdateScore(ctx context.Context, sectionID int, studentID, typ string, score float64) (int64, error)
		// InsertScore appends a new row with a fresh recorded_at timestamp.
		InsertScore(ctx context.Context, sc Score) error
		QueryScoresBySection(ctx context.Context, sectionID int) ([]Score, error)
		// AverageScore returns the arithmetic mean over all historical rows
		// matching (section, student, type) and the number of rows counted.
		AverageScore(ctx context.Context, sectionID int, studentID, typ string) (float64, int64, error)
	}

	Service struct {
		repo  Repository
		guard core.WriteGuard
	}
)

func NewService(repo Repository, guard core.WriteGuard) *Service {
	return &Service{repo: repo, guard: guard}
}

// RecordScore upserts: an update is attempted by (section, student, type);
// only when zero rows match is an insert performed. Duplicate-key errors never
// reach the caller. The score is stored as-is, range validation is the
// caller's responsibility.
func (svc *Service) RecordScore(ctx context.Context, sectionID int, studentID, typ string, score float64) error {
	if err := svc.guard.CheckWritable(ctx); err != nil {
		return err
	}
	studentID = core.CleanString(studentID)
	typ = core.CleanString(typ, true /* lower */)

	n, err := svc.repo.UpdateScore(ctx, sectionID, studentID, typ, score)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return svc.repo.InsertScore(ctx, Score{
		SectionID: sectionID,
		StudentID: studentID,
		Type:      typ,
		Score:     score,
	})
}

func (svc *Service) ScoresForSection(ctx context.Context, sectionID int) ([]Score, error) {
	return svc.repo.QueryScoresBySection(ctx, sectionID)
}

// Average returns 0 when no rows exist; "no data" is not an error here.
func (svc *Service) Average(ctx context.Context, sectionID int, studentID, typ string) (float64, error) {
	avg, n, err := svc.repo.AverageScore(ctx, sectionID, core.CleanString(studentID), core.CleanString(typ, true))
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	return avg, nil
}
