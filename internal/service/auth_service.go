package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"kodbank/internal/auth"
	"kodbank/internal/model"
	"kodbank/internal/repository"
)

var (
	// ErrMissingFields is returned when a required registration or login
	// field is empty.
	ErrMissingFields = errors.New("all fields are required")
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("username or email already exists")
	// ErrInvalidCredentials is returned on login failure. Unknown username
	// and wrong password share this one error so callers cannot probe which
	// accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Session is the artifact handed to the transport layer after a successful
// login. Expiry matches the expiry embedded in the signed token.
type Session struct {
	Token    string
	Username string
	Role     string
	Expiry   time.Time
}

// AuthService handles registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, username, email, password, phone string) (uint, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo   repository.UserRepository
	tokenRepo  repository.TokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account with a hashed password, the customer role
// and the default opening balance, and returns the new uid.
func (s *authService) Register(ctx context.Context, username, email, password, phone string) (uint, error) {
	if username == "" || email == "" || password == "" || phone == "" {
		return 0, ErrMissingFields
	}

	// Pre-check for a friendlier error; the unique constraints below remain
	// the real guard against a raced duplicate.
	existing, err := s.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err == nil && existing != nil {
		return 0, ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Phone:        phone,
		Role:         model.RoleCustomer,
		Balance:      model.DefaultBalance,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrUserAlreadyExists
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return user.UID, nil
}

// Login authenticates the user, issues a signed session token with the
// configured lifetime and persists its record with the same expiry instant.
func (s *authService) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, expiry, err := s.jwtService.IssueToken(user.Username, user.Role, user.UID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	if err := s.tokenRepo.Save(ctx, token, user.UID, expiry); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}

	return &Session{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
		Expiry:   expiry,
	}, nil
}

// Logout deletes the token's stored record, revoking the session even though
// the signed token may still be within its lifetime. Logging out an unknown
// or already-expired token succeeds.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.tokenRepo.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
