package grading

import (
	"context"
	"errors"

	"github.com/mwalimu/gradebook/core"
)

var (
	// errors
	ErrInvalidScheme     = errors.New("invalid grading scheme")
	ErrTransactionFailed = errors.New("grading transaction failed, no change made")
)

type (
	Repository interface {
		// ReplaceScheme deletes all existing components for the section and
		// inserts the new set as one atomic unit. A half-replaced scheme must
		// never be observable.
		ReplaceScheme(ctx context.Context, sectionID int, s Scheme) error
		// GetScheme returns an empty scheme when none is saved.
		GetScheme(ctx context.Context, sectionID int) (Scheme, error)
		// UpsertGrades fully replaces the (section, student) grade row.
		UpsertGrades(ctx context.Context, rec GradeRecord) error
		QueryGradesBySection(ctx context.Context, sectionID int) ([]GradeRecord, error)
	}

	Service struct {
		repo  Repository
		guard core.WriteGuard
		log   core.Logger
	}
)

func NewService(repo Repository, guard core.WriteGuard, log core.Logger) *Service {
	return &Service{repo: repo, guard: guard, log: log}
}

// SaveScheme validates and persists the scheme for a section, wholesale: the
// new mapping fully supersedes the previous one, never a partial merge.
func (svc *Service) SaveScheme(ctx context.Context, sectionID int, s Scheme) error {
	if err := svc.guard.CheckWritable(ctx); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if err := svc.repo.ReplaceScheme(ctx, sectionID, s); err != nil {
		svc.log.Error("replacing grading scheme", err, map[string]interface{}{"section": sectionID})
		return ErrTransactionFailed
	}
	return nil
}

func (svc *Service) LoadScheme(ctx context.Context, sectionID int) (Scheme, error) {
	return svc.repo.GetScheme(ctx, sectionID)
}

// SaveGrades replaces the student's grade record for the section.
func (svc *Service) SaveGrades(ctx context.Context, rec GradeRecord) error {
	if err := svc.guard.CheckWritable(ctx); err != nil {
		return err
	}
	return svc.repo.UpsertGrades(ctx, rec)
}

func (svc *Service) GradesForSection(ctx context.Context, sectionID int) ([]GradeRecord, error) {
	return svc.repo.QueryGradesBySection(ctx, sectionID)
}

// ComputeGrade loads the section's scheme and applies it to the raw record.
// It does not persist anything.
func (svc *Service) ComputeGrade(ctx context.Context, rec GradeRecord) (float64, error) {
	scheme, err := svc.repo.GetScheme(ctx, rec.SectionID)
	if err != nil {
		return 0, err
	}
	return scheme.Weighted(rec), nil
}
