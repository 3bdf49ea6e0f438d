// Package workflow is the instructor-facing boundary of the engine: every
// operation takes the caller's opaque session credential, authorizes it, then
// delegates to the underlying services. Maintenance gating itself is enforced
// inside those services.
package workflow

import (
	"context"

	"github.com/mwalimu/gradebook/core/assessment"
	"github.com/mwalimu/gradebook/core/grading"
	"github.com/mwalimu/gradebook/core/maintenance"
	"github.com/mwalimu/gradebook/core/section"
	"github.com/mwalimu/gradebook/core/session"
)

type Service struct {
	verifier    *session.Verifier
	sections    *section.Service
	grading     *grading.Service
	assessments *assessment.Service
	gate        *maintenance.Service
}

func NewService(
	verifier *session.Verifier,
	sections *section.Service,
	grd *grading.Service,
	assessments *assessment.Service,
	gate *maintenance.Service,
) *Service {
	return &Service{
		verifier:    verifier,
		sections:    sections,
		grading:     grd,
		assessments: assessments,
		gate:        gate,
	}
}

func (svc *Service) authorize(token string) (*session.Claims, error) {
	claims, err := svc.verifier.Verify(token)
	if err != nil {
		return nil, err
	}
	if !claims.CanGrade() {
		return nil, session.ErrForbidden
	}
	return claims, nil
}

// RegisterSection creates a new section. Admin only.
func (svc *Service) RegisterSection(ctx context.Context, token string, ns section.NewSection) (section.Section, error) {
	claims, err := svc.verifier.Verify(token)
	if err != nil {
		return section.Section{}, err
	}
	if !claims.IsAdmin {
		return section.Section{}, session.ErrForbidden
	}
	return svc.sections.Create(ctx, ns)
}

// MySections lists the caller's sections for a term.
func (svc *Service) MySections(ctx context.Context, token, term string, year int) ([]section.Section, error) {
	claims, err := svc.authorize(token)
	if err != nil {
		return nil, err
	}
	instructorID, err := claims.SubjectID()
	if err != nil {
		return nil, err
	}
	return svc.sections.QueryByInstructor(ctx, instructorID, term, year)
}

// EnterScore records one assessment score for a student.
func (svc *Service) EnterScore(ctx context.Context, token string, sectionID int, studentID, typ string, score float64) error {
	if _, err := svc.authorize(token); err != nil {
		return err
	}
	return svc.assessments.RecordScore(ctx, sectionID, studentID, typ, score)
}

// PublishScheme validates and saves the section's grading scheme.
func (svc *Service) PublishScheme(ctx context.Context, token string, sectionID int, s grading.Scheme) error {
	if _, err := svc.authorize(token); err != nil {
		return err
	}
	return svc.grading.SaveScheme(ctx, sectionID, s)
}

// FinalizeGrade persists the raw grade record, then computes and returns the
// weighted final grade under the section's saved scheme.
func (svc *Service) FinalizeGrade(ctx context.Context, token string, rec grading.GradeRecord) (float64, error) {
	if _, err := svc.authorize(token); err != nil {
		return 0, err
	}
	if err := svc.grading.SaveGrades(ctx, rec); err != nil {
		return 0, err
	}
	return svc.grading.ComputeGrade(ctx, rec)
}

// ToggleMaintenance flips the global maintenance flag. Admin only; this is
// the one mutating operation that must work while maintenance is on.
func (svc *Service) ToggleMaintenance(ctx context.Context, token string) (bool, error) {
	claims, err := svc.verifier.Verify(token)
	if err != nil {
		return false, err
	}
	if !claims.IsAdmin {
		return false, session.ErrForbidden
	}
	return svc.gate.Toggle(ctx)
}

// MaintenanceOn reports the current maintenance flag.
func (svc *Service) MaintenanceOn(ctx context.Context) bool {
	return svc.gate.IsOn(ctx)
}
