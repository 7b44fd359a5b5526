package middleware

import (
	"errors"
	"fmt"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"kodbank/internal/auth"
	apperrors "kodbank/internal/errors"
	"kodbank/internal/repository"
)

// IdentityContextKey is the echo context key under which the guard stores the
// authenticated identity.
const IdentityContextKey = "session"

// TokenLookup checks the session cookie first, then the Authorization header,
// matching how login delivers the token.
const TokenLookup = "cookie:token,header:Authorization:Bearer "

// errStoreUnavailable marks a token-store round-trip failure so it maps to a
// 500 instead of a 401.
var errStoreUnavailable = errors.New("token store unavailable")

// Identity is the authenticated-identity context produced for downstream
// handlers once a token passes both validations.
type Identity struct {
	Username string
	Role     string
	UserID   uint
	Token    string
}

// IdentityFromContext returns the identity set by the session guard.
func IdentityFromContext(c echo.Context) (*Identity, bool) {
	identity, ok := c.Get(IdentityContextKey).(*Identity)
	return identity, ok
}

// SessionGuard validates incoming session tokens. A token is accepted only
// when its signature verifies, its embedded expiry is in the future AND a
// non-expired record for it still exists in the token store. The store check
// is what makes logout effective before the signed expiry passes.
type SessionGuard struct {
	jwtService *auth.JWTService
	tokenRepo  repository.TokenRepository
}

// NewSessionGuard creates a session guard.
func NewSessionGuard(jwtService *auth.JWTService, tokenRepo repository.TokenRepository) *SessionGuard {
	return &SessionGuard{jwtService: jwtService, tokenRepo: tokenRepo}
}

// Middleware returns the echo middleware enforcing the guard.
func (g *SessionGuard) Middleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:     IdentityContextKey,
		TokenLookup:    TokenLookup,
		ParseTokenFunc: g.parseToken,
		ErrorHandler:   g.handleError,
	})
}

// parseToken runs the cheap local checks before the store round-trip:
// signature and embedded expiry via the codec, then revocation via the store.
func (g *SessionGuard) parseToken(c echo.Context, tokenString string) (interface{}, error) {
	claims, err := g.jwtService.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if _, err := g.tokenRepo.FindValid(c.Request().Context(), tokenString); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// logged out or otherwise revoked server-side
			return nil, auth.ErrTokenInvalid
		}
		return nil, fmt.Errorf("%w: %v", errStoreUnavailable, err)
	}

	return &Identity{
		Username: claims.Username,
		Role:     claims.Role,
		UserID:   claims.UserID,
		Token:    tokenString,
	}, nil
}

func (g *SessionGuard) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "token expired",
			Code:  "TOKEN_EXPIRED",
		})
	case errors.Is(err, auth.ErrTokenInvalid):
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "invalid token",
			Code:  "INVALID_TOKEN",
		})
	case errors.Is(err, errStoreUnavailable):
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	default:
		// no token was presented at all
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "access denied, no token provided",
			Code:  "NO_TOKEN",
		})
	}
}
