package model

import (
	"time"

	"github.com/google/uuid"
)

// UserStreakSummary はユーザーごとに1行だけ存在する連続学習日数のサマリです。
// 不変条件: LongestStreak >= CurrentStreak、LastActivityDate は単調非減少。
type UserStreakSummary struct {
	UserID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	TotalSolved      int        `gorm:"not null;default:0" json:"total_solved"`
	CurrentStreak    int        `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak    int        `gorm:"not null;default:0" json:"longest_streak"`
	DailyGoal        int        `gorm:"not null;default:1" json:"daily_goal"`
	LastActivityDate *time.Time `gorm:"type:date" json:"last_activity_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (UserStreakSummary) TableName() string {
	return "user_streak_summaries"
}

// UpdateGoalRequest は1日の目標問題数を変更するリクエストボディ (DTO)
type UpdateGoalRequest struct {
	DailyGoal int `json:"daily_goal" validate:"required,min=1"`
}
