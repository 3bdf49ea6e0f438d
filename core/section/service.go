package section

import (
	"context"
	"errors"

	"github.com/mwalimu/gradebook/core"
)

var (
	// errors
	ErrNotFound = errors.New("section not found")
)

type (
	Repository interface {
		CreateSection(ctx context.Context, sec Section) (Section, error)
		QueryAllSections(ctx context.Context) ([]Section, error)
		// QuerySectionsByInstructor applies an exact-match filter; ordering is
		// store-default, callers sort if needed.
		QuerySectionsByInstructor(ctx context.Context, instructorID int, term string, year int) ([]Section, error)
		// UpdateSectionCapacity returns the number of rows affected; 0 means
		// the section does not exist.
		UpdateSectionCapacity(ctx context.Context, id, capacity int) (int64, error)
		SetSectionEnrollmentOpen(ctx context.Context, id int, open bool) (int64, error)
		// GetSectionEnrollmentOpen returns ErrNotFound when the section does
		// not exist.
		GetSectionEnrollmentOpen(ctx context.Context, id int) (bool, error)
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

func (svc *Service) Create(ctx context.Context, ns NewSection) (Section, error) {
	if err := svc.guard.CheckWritable(ctx); err != nil {
		return Section{}, err
	}
	if err := ns.Validate(); err != nil {
		return Section{}, err
	}
	sec := Section{
		CourseCode:     ns.CourseCode,
		Title:          ns.Title,
		InstructorID:   ns.InstructorID,
		Term:           ns.Term,
		Year:           ns.Year,
		DayTime:        ns.DayTime,
		Room:           ns.Room,
		Capacity:       ns.Capacity,
		EnrollmentOpen: true,
	}
	return svc.repo.CreateSection(ctx, sec)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Section, error) {
	return svc.repo.QueryAllSections(ctx)
}

func (svc *Service) QueryByInstructor(ctx context.Context, instructorID int, term string, year int) ([]Section, error) {
	return svc.repo.QuerySectionsByInstructor(ctx, instructorID, core.CleanString(term, true /* lower */), year)
}

// UpdateCapacity returns the number of rows affected so callers can detect a
// missing section (0 affected) without an error round-trip.
func (svc *Service) UpdateCapacity(ctx context.Context, id, capacity int) (int64, error) {
	if err := svc.guard.CheckWritable(ctx); err != nil {
		return 0, err
	}
	if capacity <= 0 {
		return 0, core.NewValidationError(
			errors.New("invalid capacity"),
			core.FieldError{Field: "capacity", Error: "capacity must be a positive integer"},
		)
	}
	return svc.repo.UpdateSectionCapacity(ctx, id, capacity)
}

// SetEnrollmentOpen reports whether a row was affected.
func (svc *Service) SetEnrollmentOpen(ctx context.Context, id int, open bool) (bool, error) {
	if err := svc.guard.CheckWritable(ctx); err != nil {
		return false, err
	}
	n, err := svc.repo.SetSectionEnrollmentOpen(ctx, id, open)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IsEnrollmentOpen defaults to open when the section does not exist or the
// column cannot be read. Legacy deployments predate the enrollment_open
// column and must keep enrolling.
func (svc *Service) IsEnrollmentOpen(ctx context.Context, id int) bool {
	open, err := svc.repo.GetSectionEnrollmentOpen(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			svc.log.Warn("reading enrollment_open, defaulting to open", err)
		}
		return true
	}
	return open
}
