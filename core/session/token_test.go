package session_test

import (
	"testing"
	"time"

	"github.com/mwalimu/gradebook/core"
	"github.com/mwalimu/gradebook/core/session"
	testutil "github.com/mwalimu/gradebook/tests"
)

var secretKey = []byte("secret")

func verifier() *session.Verifier {
	return session.NewVerifier(&core.Config{SecretKey: secretKey})
}

func TestVerifierVerify(t *testing.T) {
	v := verifier()

	valid := testutil.MakeSessionToken(t, secretKey, testutil.SessionClaims{UserID: "7", IsTeacher: true})
	expired := testutil.MakeSessionToken(t, secretKey, testutil.SessionClaims{
		UserID: "7", IsTeacher: true, ExpiresAt: time.Now().Add(-time.Hour),
	})
	wrongKey := testutil.MakeSessionToken(t, []byte("other"), testutil.SessionClaims{UserID: "7"})

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "no token", token: "", wantErr: session.ErrInvalidCredential},
		{name: "garbage", token: "lmaooolol", wantErr: session.ErrInvalidCredential},
		{name: "wrong signing key", token: wrongKey, wantErr: session.ErrInvalidCredential},
		{name: "expired", token: expired, wantErr: session.ErrInvalidCredential},
		{name: "valid", token: valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := v.Verify(tt.token)
			if err != tt.wantErr {
				t.Fatalf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && claims == nil {
				t.Fatal("Verify() returned nil claims without error")
			}
		})
	}
}

func TestClaimsHelpers(t *testing.T) {
	v := verifier()

	token := testutil.MakeSessionToken(t, secretKey, testutil.SessionClaims{UserID: "42", IsTeacher: true})
	claims, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}

	if !claims.CanGrade() {
		t.Error("CanGrade() = false for teacher session")
	}
	id, err := claims.SubjectID()
	if err != nil {
		t.Fatalf("SubjectID() failed: %v", err)
	}
	if id != 42 {
		t.Errorf("SubjectID() = %d, want 42", id)
	}

	student := testutil.MakeSessionToken(t, secretKey, testutil.SessionClaims{UserID: "9", IsStudent: true})
	claims, err = v.Verify(student)
	if err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if claims.CanGrade() {
		t.Error("CanGrade() = true for student session")
	}
}
