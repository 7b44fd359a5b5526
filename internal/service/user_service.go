package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"kodbank/internal/cache"
	"kodbank/internal/errors"
	"kodbank/internal/repository"
)

const balanceCacheTTL = 5 * time.Minute

// UserService exposes account lookups for authenticated users.
type UserService interface {
	GetBalance(ctx context.Context, username string) (decimal.Decimal, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(username string) string {
	return fmt.Sprintf("balance:%s", username)
}

// GetBalance returns the balance for the given username with caching.
func (s *userService) GetBalance(ctx context.Context, username string) (decimal.Decimal, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(username)); data != nil {
		if cached, err := decimal.NewFromString(string(data)); err == nil {
			return cached, nil
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return decimal.Zero, errors.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("find user: %w", err)
	}

	_ = s.cache.Set(ctx, s.cacheKey(username), []byte(user.Balance.String()), balanceCacheTTL)
	return user.Balance, nil
}
