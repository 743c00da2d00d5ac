package jwt_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/rubayet36/jatri-ovijog/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "a very well hidden signing secret!"

// TestIssueValidate_RoundTrip verifies that a freshly issued token yields the
// claims supplied at issuance plus subject, issued-at and expiry.
func TestIssueValidate_RoundTrip(t *testing.T) {
	svc := jwt.New(testSecret, 24*time.Hour)

	token, err := svc.Issue(float64(42), "admin", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, float64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.NotEmpty(t, claims.ID, "every token carries a jti")
	assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

// TestValidate_Expired verifies that a token past its expiry is rejected with
// ErrTokenExpired.
func TestValidate_Expired(t *testing.T) {
	svc := jwt.New(testSecret, -1*time.Minute)

	token, err := svc.Issue(float64(1), "user", "a@x.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

// TestValidate_WrongKey verifies that a token signed with a different secret
// fails signature verification.
func TestValidate_WrongKey(t *testing.T) {
	issuer := jwt.New(testSecret, time.Hour)
	verifier := jwt.New("someone else's secret entirely!!", time.Hour)

	token, err := issuer.Issue(float64(1), "user", "a@x.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

// TestValidate_Malformed verifies that garbage and tampered tokens are
// rejected as invalid.
func TestValidate_Malformed(t *testing.T) {
	svc := jwt.New(testSecret, time.Hour)

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)

	token, err := svc.Issue(float64(1), "user", "a@x.com")
	require.NoError(t, err)

	// Flip the payload segment
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	_, err = svc.Validate(tampered)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

// TestNew_Base64Secret verifies that a base64 encoded secret and its raw
// decoded form produce the same key material: tokens issued under one
// validate under the other.
func TestNew_Base64Secret(t *testing.T) {
	// The raw secret contains spaces and '!' so it cannot itself decode
	// as base64, while its encoding decodes back to the raw bytes.
	encoded := base64.StdEncoding.EncodeToString([]byte(testSecret))

	rawSvc := jwt.New(testSecret, time.Hour)
	encodedSvc := jwt.New(encoded, time.Hour)

	token, err := rawSvc.Issue(float64(7), "user", "b@x.com")
	require.NoError(t, err)

	claims, err := encodedSvc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", claims.Subject)
}
