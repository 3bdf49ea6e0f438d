package workflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwalimu/gradebook/core"
	"github.com/mwalimu/gradebook/core/assessment"
	"github.com/mwalimu/gradebook/core/grading"
	"github.com/mwalimu/gradebook/core/maintenance"
	"github.com/mwalimu/gradebook/core/section"
	"github.com/mwalimu/gradebook/core/session"
	"github.com/mwalimu/gradebook/core/workflow"
	inmemdb "github.com/mwalimu/gradebook/storage/database/inmem"
	testutil "github.com/mwalimu/gradebook/tests"
)

var secretKey = []byte("secret")

func setup(t *testing.T) (*workflow.Service, *maintenance.Service) {
	t.Helper()
	db := inmemdb.Open()
	log := &testutil.TestLogger{}
	conf := &core.Config{SecretKey: secretKey}

	gate := maintenance.NewService(inmemdb.NewSettingsRepository(db), log)
	svc := workflow.NewService(
		session.NewVerifier(conf),
		section.NewService(inmemdb.NewSectionRepository(db), gate, log),
		grading.NewService(inmemdb.NewGradingRepository(db), gate, log),
		assessment.NewService(inmemdb.NewAssessmentRepository(db), gate),
		gate,
	)
	return svc, gate
}

func tokens(t *testing.T) (teacher, admin, student string) {
	t.Helper()
	teacher = testutil.MakeSessionToken(t, secretKey, testutil.SessionClaims{UserID: "7", IsTeacher: true})
	admin = testutil.MakeSessionToken(t, secretKey, testutil.SessionClaims{UserID: "1", IsAdmin: true})
	student = testutil.MakeSessionToken(t, secretKey, testutil.SessionClaims{UserID: "9", IsStudent: true})
	return
}

func TestServiceAuthorization(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	teacher, admin, student := tokens(t)

	// students may not mutate records
	err := svc.EnterScore(ctx, student, 101, "s42", "quiz", 80)
	assert.Equal(t, session.ErrForbidden, err)

	// garbage credentials are rejected outright
	err = svc.EnterScore(ctx, "nope", 101, "s42", "quiz", 80)
	assert.Equal(t, session.ErrInvalidCredential, err)

	// section registration is admin-only
	_, err = svc.RegisterSection(ctx, teacher, section.NewSection{
		CourseCode: "CS101", Title: "T", InstructorID: 7, Term: "fall", Year: 2026, Capacity: 30,
	})
	assert.Equal(t, session.ErrForbidden, err)

	// maintenance toggling is admin-only
	_, err = svc.ToggleMaintenance(ctx, teacher)
	assert.Equal(t, session.ErrForbidden, err)
	on, err := svc.ToggleMaintenance(ctx, admin)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestServiceInstructorFlow(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	teacher, admin, _ := tokens(t)

	sec, err := svc.RegisterSection(ctx, admin, section.NewSection{
		CourseCode: "CS101", Title: "Intro to Computing", InstructorID: 7,
		Term: "fall", Year: 2026, Capacity: 60,
	})
	require.NoError(t, err)

	mine, err := svc.MySections(ctx, teacher, "fall", 2026)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, sec.ID, mine[0].ID)

	require.NoError(t, svc.EnterScore(ctx, teacher, sec.ID, "s42", "quiz", 80))
	require.NoError(t, svc.PublishScheme(ctx, teacher, sec.ID, grading.Scheme{
		"quiz": 20, "midterm": 30, "final": 50,
	}))

	grade, err := svc.FinalizeGrade(ctx, teacher, grading.GradeRecord{
		SectionID: sec.ID, StudentID: "s42", Quiz: 80, Midterm: 70, Final: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, 82.0, grade)
}

func TestServiceMaintenanceGatesWrites(t *testing.T) {
	svc, gate := setup(t)
	ctx := context.Background()
	teacher, admin, _ := tokens(t)

	require.NoError(t, gate.Set(ctx, true))
	assert.True(t, svc.MaintenanceOn(ctx))

	err := svc.EnterScore(ctx, teacher, 101, "s42", "quiz", 80)
	assert.Equal(t, core.ErrMaintenanceActive, err)
	err = svc.PublishScheme(ctx, teacher, 101, grading.Scheme{"final": 100})
	assert.Equal(t, core.ErrMaintenanceActive, err)

	// the toggle itself must keep working while under maintenance
	on, err := svc.ToggleMaintenance(ctx, admin)
	require.NoError(t, err)
	assert.False(t, on)
}
