package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"

	"github.com/mwalimu/gradebook/core"
	"github.com/mwalimu/gradebook/core/section"
)

// TestLogger is a core.Logger capturing messages for assertions.
type TestLogger struct {
	mutex    sync.Mutex
	Messages []string
}

var _ core.Logger = (*TestLogger)(nil)

func (l *TestLogger) record(msg string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.Messages = append(l.Messages, msg)
}

func (l *TestLogger) Enable(bool)                        {}
func (l *TestLogger) Debug(msg string, _ ...interface{}) { l.record(msg) }
func (l *TestLogger) Info(msg string, _ ...interface{})  { l.record(msg) }
func (l *TestLogger) Warn(msg string, _ ...interface{})  { l.record(msg) }
func (l *TestLogger) Error(msg string, _ ...interface{}) { l.record(msg) }
func (l *TestLogger) Fatal(msg string, _ ...interface{}) { l.record(msg) }

// CreateSection persists a section through the repository, failing the test
// on error.
func CreateSection(
	t *testing.T,
	repo section.Repository,
	courseCode, title string,
	instructorID int,
	term string,
	year, capacity int,
) section.Section {
	t.Helper()
	sec, err := repo.CreateSection(context.Background(), section.Section{
		CourseCode:     courseCode,
		Title:          title,
		InstructorID:   instructorID,
		Term:           term,
		Year:           year,
		Capacity:       capacity,
		EnrollmentOpen: true,
	})
	if err != nil {
		t.Fatalf("CreateSection() failed: %v", err)
	}
	return sec
}

// SessionClaims describes the session token to mint for a test caller.
type SessionClaims struct {
	UserID    string
	IsStudent bool
	IsTeacher bool
	IsAdmin   bool
	ExpiresAt time.Time
}

// MakeSessionToken signs a session credential the way the auth layer would.
func MakeSessionToken(t *testing.T, key []byte, sc SessionClaims) string {
	t.Helper()
	if sc.ExpiresAt.IsZero() {
		sc.ExpiresAt = time.Now().Add(time.Hour)
	}
	claims := jwt.MapClaims{
		"jti":        uuid.New().String(),
		"sub":        sc.UserID,
		"exp":        sc.ExpiresAt.Unix(),
		"is_student": sc.IsStudent,
		"is_teacher": sc.IsTeacher,
		"is_admin":   sc.IsAdmin,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("MakeSessionToken() failed: %v", err)
	}
	return token
}
