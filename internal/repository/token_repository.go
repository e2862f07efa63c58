package repository

import (
	"context"
	"errors"
	"fmt"

	"codetrack/internal/middleware"
	"codetrack/internal/model"

	"gorm.io/gorm"
)

type TokenRepository interface {
	CreateVerificationToken(ctx context.Context, tx *gorm.DB, token *model.UserVerificationToken) error
	FindVerificationToken(ctx context.Context, db *gorm.DB, token string) (*model.UserVerificationToken, error)
	DeleteVerificationToken(ctx context.Context, tx *gorm.DB, token string) error
}

type gormTokenRepository struct{}

func NewGormTokenRepository() TokenRepository {
	return &gormTokenRepository{}
}

func (r *gormTokenRepository) CreateVerificationToken(ctx context.Context, tx *gorm.DB, token *model.UserVerificationToken) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(token)
	if result.Error != nil {
		logger.Error("Error creating verification token in DB", "error", result.Error)
		return fmt.Errorf("gormTokenRepository.CreateVerificationToken: %w", result.Error)
	}
	return nil
}

func (r *gormTokenRepository) FindVerificationToken(ctx context.Context, db *gorm.DB, token string) (*model.UserVerificationToken, error) {
	logger := middleware.GetLogger(ctx)
	var record model.UserVerificationToken
	result := db.WithContext(ctx).Where("token = ?", token).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding verification token in DB", "error", result.Error)
		return nil, fmt.Errorf("gormTokenRepository.FindVerificationToken: %w", result.Error)
	}
	return &record, nil
}

func (r *gormTokenRepository) DeleteVerificationToken(ctx context.Context, tx *gorm.DB, token string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Delete(&model.UserVerificationToken{}, "token = ?", token)
	if result.Error != nil {
		logger.Error("Error deleting verification token in DB", "error", result.Error)
		return fmt.Errorf("gormTokenRepository.DeleteVerificationToken: %w", result.Error)
	}
	return nil
}
