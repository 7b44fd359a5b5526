package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kodbank/internal/model"
)

// TokenRepository defines session-token persistence operations.
type TokenRepository interface {
	Save(ctx context.Context, token string, userID uint, expiry time.Time) error
	FindValid(ctx context.Context, token string) (*model.UserToken, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository builds a GORM-backed repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Save(ctx context.Context, token string, userID uint, expiry time.Time) error {
	record := &model.UserToken{
		Token:  token,
		UserID: userID,
		Expiry: expiry,
	}
	return r.db.WithContext(ctx).Create(record).Error
}

// FindValid returns the stored record for a token whose expiry is strictly in
// the future, or gorm.ErrRecordNotFound when the token is absent or expired.
func (r *tokenRepository) FindValid(ctx context.Context, token string) (*model.UserToken, error) {
	var record model.UserToken
	err := r.db.WithContext(ctx).
		Where("token = ? AND expiry > ?", token, time.Now()).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes a token record by value. Deleting an absent token is not an
// error, so logout stays idempotent.
func (r *tokenRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.UserToken{}).Error
}

// DeleteExpired purges rows whose expiry has passed. Expired rows are already
// invisible to FindValid; this only reclaims space.
func (r *tokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("expiry <= ?", time.Now()).Delete(&model.UserToken{})
	return res.RowsAffected, res.Error
}
