package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionTokenTTL is the lifetime of an issued session token.
const SessionTokenTTL = 24 * time.Hour

var (
	// ErrTokenInvalid is returned when a token is malformed or its signature
	// does not verify.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned when a token's embedded expiry has passed.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the identity payload embedded in a session token.
type Claims struct {
	Username string `json:"sub"`
	Role     string `json:"role"`
	UserID   uint   `json:"uid"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies session tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a token service with the given signing secret and
// session lifetime.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = SessionTokenTTL
	}
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

// IssueToken signs a session token for the user and returns it together with
// the absolute expiry embedded in the payload. Callers persisting the token
// must store that same expiry so the stored record and the signed payload
// always agree.
func (s *JWTService) IssueToken(username, role string, userID uint) (token string, expiry time.Time, err error) {
	now := time.Now()
	expiry = now.Add(s.ttl)
	claims := &Claims{
		Username: username,
		Role:     role,
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = tokenObj.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiry, nil
}

// ParseToken verifies a session token and returns its claims. Expired tokens
// fail with ErrTokenExpired; anything else wrong with the token fails with
// ErrTokenInvalid so callers can report the two cases distinctly.
func (s *JWTService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
