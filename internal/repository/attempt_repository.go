//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
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

// TopicSolvedRow はトピック別解答数のグループ化クエリ (高速パス) の1行です。
type TopicSolvedRow struct {
	TopicID uuid.UUID `gorm:"column:topic_id"`
	Count   int64     `gorm:"column:count"`
}

// AttemptRepository は取り組みイベント (attempt_events) へのアクセスを提供します。
type AttemptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, event *model.AttemptEvent) error
	Update(ctx context.Context, tx *gorm.DB, event *model.AttemptEvent) error
	FindByUserAndProblem(ctx context.Context, db *gorm.DB, userID, problemID uuid.UUID) (*model.AttemptEvent, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter model.AttemptFilter) ([]*model.AttemptEvent, error)
	// CountSolvedByTopic はストア側のグループ化集計 (高速パス) です。
	// 結果の形はサービス層で検証し、不正なら手動集計にフォールバックします。
	CountSolvedByTopic(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]TopicSolvedRow, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) Create(ctx context.Context, tx *gorm.DB, event *model.AttemptEvent) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(event)
	if result.Error != nil {
		logger.Error("Error creating attempt event in DB",
			"error", result.Error,
			"user_id", event.UserID.String(),
			"problem_id", event.ProblemID.String(),
		)
		return fmt.Errorf("gormAttemptRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAttemptRepository) Update(ctx context.Context, tx *gorm.DB, event *model.AttemptEvent) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(event)
	if result.Error != nil {
		logger.Error("Error updating attempt event in DB",
			"error", result.Error,
			"attempt_id", event.AttemptID.String(),
		)
		return fmt.Errorf("gormAttemptRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormAttemptRepository) FindByUserAndProblem(ctx context.Context, db *gorm.DB, userID, problemID uuid.UUID) (*model.AttemptEvent, error) {
	logger := middleware.GetLogger(ctx)
	var event model.AttemptEvent
	result := db.WithContext(ctx).Where("user_id = ? AND problem_id = ?", userID, problemID).First(&event)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding attempt event in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"problem_id", problemID.String(),
		)
		return nil, fmt.Errorf("gormAttemptRepository.FindByUserAndProblem: %w", result.Error)
	}
	return &event, nil
}

func (r *gormAttemptRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter model.AttemptFilter) ([]*model.AttemptEvent, error) {
	logger := middleware.GetLogger(ctx)
	var events []*model.AttemptEvent

	query := db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.From != nil {
		query = query.Where("solved_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("solved_at <= ?", *filter.To)
	}

	result := query.Order("updated_at DESC").Find(&events)
	if result.Error != nil {
		logger.Error("Error finding attempt events in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormAttemptRepository.FindByUser: %w", result.Error)
	}
	return events, nil
}

func (r *gormAttemptRepository) CountSolvedByTopic(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]TopicSolvedRow, error) {
	logger := middleware.GetLogger(ctx)
	var rows []TopicSolvedRow
	result := db.WithContext(ctx).
		Model(&model.AttemptEvent{}).
		Select("problems.topic_id AS topic_id, COUNT(*) AS count").
		Joins("JOIN problems ON problems.problem_id = attempt_events.problem_id").
		Where("attempt_events.user_id = ? AND attempt_events.status = ?", userID, model.StatusSolved).
		Group("problems.topic_id").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting solved attempts by topic in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormAttemptRepository.CountSolvedByTopic: %w", result.Error)
	}
	return rows, nil
}
