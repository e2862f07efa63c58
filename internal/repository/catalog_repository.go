//go:generate mockery --name CatalogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"codetrack/internal/middleware"
	"codetrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository は静的なトピック・問題カタログへの読み取りアクセスを提供します。
// カタログはコアからは読み取り専用です (投入は cmd/seed が行う)。
type CatalogRepository interface {
	ListTopics(ctx context.Context, db *gorm.DB) ([]*model.Topic, error)
	// ListProblems は新しく追加された問題が先に来るように返します。
	ListProblems(ctx context.Context, db *gorm.DB, filter model.ProblemFilter) ([]*model.Problem, error)
	FindProblemByID(ctx context.Context, db *gorm.DB, problemID uuid.UUID) (*model.Problem, error)
}

type gormCatalogRepository struct{}

func NewGormCatalogRepository() CatalogRepository {
	return &gormCatalogRepository{}
}

func (r *gormCatalogRepository) ListTopics(ctx context.Context, db *gorm.DB) ([]*model.Topic, error) {
	logger := middleware.GetLogger(ctx)
	var topics []*model.Topic
	result := db.WithContext(ctx).Order("order_index ASC, name ASC").Find(&topics)
	if result.Error != nil {
		logger.Error("Error listing topics in DB", "error", result.Error)
		return nil, fmt.Errorf("gormCatalogRepository.ListTopics: %w", result.Error)
	}
	return topics, nil
}

func (r *gormCatalogRepository) ListProblems(ctx context.Context, db *gorm.DB, filter model.ProblemFilter) ([]*model.Problem, error) {
	logger := middleware.GetLogger(ctx)
	var problems []*model.Problem

	query := db.WithContext(ctx)
	if filter.TopicID != nil {
		query = query.Where("topic_id = ?", *filter.TopicID)
	}
	if filter.Difficulty != nil {
		query = query.Where("difficulty = ?", *filter.Difficulty)
	}

	result := query.Order("created_at DESC").Find(&problems)
	if result.Error != nil {
		logger.Error("Error listing problems in DB", "error", result.Error)
		return nil, fmt.Errorf("gormCatalogRepository.ListProblems: %w", result.Error)
	}
	return problems, nil
}

func (r *gormCatalogRepository) FindProblemByID(ctx context.Context, db *gorm.DB, problemID uuid.UUID) (*model.Problem, error) {
	logger := middleware.GetLogger(ctx)
	var problem model.Problem
	result := db.WithContext(ctx).Where("problem_id = ?", problemID).First(&problem)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding problem by ID in DB",
			"error", result.Error,
			"problem_id", problemID.String(),
		)
		return nil, fmt.Errorf("gormCatalogRepository.FindProblemByID: %w", result.Error)
	}
	return &problem, nil
}
