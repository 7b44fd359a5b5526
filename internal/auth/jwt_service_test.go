package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_IssueAndParse(t *testing.T) {
	svc := NewJWTService("test-secret", 24*time.Hour)

	token, expiry, err := svc.IssueToken("alice", "customer", 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, uint(42), claims.UserID)
	assert.NotEmpty(t, claims.ID)

	// embedded expiry is issue time + ttl and matches the returned expiry
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiry, 5*time.Second)
	assert.WithinDuration(t, expiry, claims.ExpiresAt.Time, time.Second)
}

func TestJWTService_ParseToken_Invalid(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, _, err := svc.IssueToken("alice", "customer", 42)
	assert.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		expectedErr error
	}{
		{
			name:        "garbage token",
			token:       "not.a.jwt",
			expectedErr: ErrTokenInvalid,
		},
		{
			name:        "corrupted signature",
			token:       token[:len(token)-2] + "xx",
			expectedErr: ErrTokenInvalid,
		},
		{
			name: "signed with a different secret",
			token: func() string {
				other := NewJWTService("other-secret", time.Hour)
				tok, _, _ := other.IssueToken("alice", "customer", 42)
				return tok
			}(),
			expectedErr: ErrTokenInvalid,
		},
		{
			name: "expired token",
			token: func() string {
				claims := &Claims{
					Username: "alice",
					Role:     "customer",
					UserID:   42,
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
						IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
					},
				}
				tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
				return tok
			}(),
			expectedErr: ErrTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ParseToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	svc := NewJWTService("test-secret", 0)
	assert.Equal(t, SessionTokenTTL, svc.TTL())
}
