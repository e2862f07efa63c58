//go:generate mockery --name StreakRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codetrack/internal/middleware"
	"codetrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StreakRepository はユーザーごとのサマリ行 (user_streak_summaries) へのアクセスを提供します。
type StreakRepository interface {
	Find(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserStreakSummary, error)
	Upsert(ctx context.Context, tx *gorm.DB, summary *model.UserStreakSummary) error
	// FindAtRisk は最終活動日が date と一致し、ストリークが継続中のサマリを返します。
	// リマインダージョブ用。
	FindAtRisk(ctx context.Context, db *gorm.DB, date time.Time) ([]*model.UserStreakSummary, error)
}

type gormStreakRepository struct{}

func NewGormStreakRepository() StreakRepository {
	return &gormStreakRepository{}
}

func (r *gormStreakRepository) Find(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserStreakSummary, error) {
	logger := middleware.GetLogger(ctx)
	var summary model.UserStreakSummary
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&summary)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// サマリ行がまだ無いのは「新規ユーザー」であり、エラー扱いは呼び出し元で判断する
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding streak summary in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormStreakRepository.Find: %w", result.Error)
	}
	return &summary, nil
}

// Upsert は user_id をコンフリクトキーとして行を書き込みます。
// 同日の重複呼び出しは遷移関数側で冪等になっているため、last-writer-wins で問題ありません。
// longest_streak の防御的な max はトランザクション内のサービス層で取っています。
func (r *gormStreakRepository) Upsert(ctx context.Context, tx *gorm.DB, summary *model.UserStreakSummary) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_solved",
			"current_streak",
			"longest_streak",
			"daily_goal",
			"last_activity_date",
			"updated_at",
		}),
	}).Create(summary)
	if result.Error != nil {
		logger.Error("Error upserting streak summary in DB",
			"error", result.Error,
			"user_id", summary.UserID.String(),
		)
		return fmt.Errorf("gormStreakRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormStreakRepository) FindAtRisk(ctx context.Context, db *gorm.DB, date time.Time) ([]*model.UserStreakSummary, error) {
	logger := middleware.GetLogger(ctx)
	var summaries []*model.UserStreakSummary
	day := date.UTC().Truncate(24 * time.Hour)
	result := db.WithContext(ctx).
		Where("current_streak > 0 AND last_activity_date = ?", day).
		Find(&summaries)
	if result.Error != nil {
		logger.Error("Error finding at-risk streaks in DB", "error", result.Error)
		return nil, fmt.Errorf("gormStreakRepository.FindAtRisk: %w", result.Error)
	}
	return summaries, nil
}
