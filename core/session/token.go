// Package session consumes the opaque session credentials issued by the auth
// layer. Issuance lives elsewhere; this side only verifies and reads claims
// before authorizing engine calls.
package session

import (
	"errors"
	"strconv"

	"github.com/dgrijalva/jwt-go"

	"github.com/mwalimu/gradebook/core"
)

var (
	// errors
	ErrInvalidCredential = errors.New("invalid or expired session credential")
	ErrForbidden         = errors.New("session is not allowed to perform this operation")
)

// Claims represents the authorization claims transmitted via a session
// credential.
type Claims struct {
	jwt.StandardClaims
	IsStudent bool     `json:"is_student"`
	IsTeacher bool     `json:"is_teacher"`
	IsAdmin   bool     `json:"is_admin"`
	Roles     []string `json:"roles"`
}

// CanGrade reports whether the session may mutate academic records.
func (c *Claims) CanGrade() bool {
	return c.IsTeacher || c.IsAdmin
}

// SubjectID returns the authenticated user id carried in the subject claim.
func (c *Claims) SubjectID() (int, error) {
	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return 0, ErrInvalidCredential
	}
	return id, nil
}

// Verifier checks session credentials against the shared signing key.
type Verifier struct {
	key []byte
}

func NewVerifier(conf *core.Config) *Verifier {
	return &Verifier{key: conf.SecretKey}
}

// Verify parses the credential and checks its signature and expiry.
func (v *Verifier) Verify(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrInvalidCredential
	}
	claims := new(Claims)
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredential
		}
		return v.key, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidCredential
	}
	return claims, nil
}
