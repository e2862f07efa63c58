package model

import (
	"time"

	"github.com/google/uuid"
)

// AttemptStatus は問題への取り組み状態を表します
type AttemptStatus string

const (
	StatusNone      AttemptStatus = "none"
	StatusAttempted AttemptStatus = "attempted"
	StatusSolved    AttemptStatus = "solved"
)

// Valid は定義済みのステータスかどうかを返します
func (s AttemptStatus) Valid() bool {
	switch s {
	case StatusNone, StatusAttempted, StatusSolved:
		return true
	}
	return false
}

// rank はステータス遷移の順序 (none → attempted → solved) を表します
func (s AttemptStatus) rank() int {
	switch s {
	case StatusAttempted:
		return 1
	case StatusSolved:
		return 2
	default:
		return 0
	}
}

// CanTransitionTo はステータスの後退 (solved → attempted 等) を禁止します。
// 同一ステータスの再送信は冪等な再適用として許可します。
func (s AttemptStatus) CanTransitionTo(next AttemptStatus) bool {
	return next.rank() >= s.rank()
}

// AttemptEvent はユーザーの問題への取り組みイベントを表します。
// user_id + problem_id で一意。ステータス遷移 (attempted → solved) 以外は不変です。
type AttemptEvent struct {
	AttemptID   uuid.UUID     `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index:idx_user_problem,unique" json:"user_id"`
	ProblemID   uuid.UUID     `gorm:"type:uuid;not null;index:idx_user_problem,unique" json:"problem_id"`
	Status      AttemptStatus `gorm:"type:varchar(16);not null;default:'none'" json:"status"`
	AttemptedAt *time.Time    `json:"attempted_at,omitempty"`
	SolvedAt    *time.Time    `gorm:"index" json:"solved_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// 関連 (Preload用)
	Problem *Problem `gorm:"foreignKey:ProblemID;references:ProblemID" json:"-"`
}

func (AttemptEvent) TableName() string {
	return "attempt_events"
}

// AttemptFilter は取り組みイベント一覧の絞り込み条件です
type AttemptFilter struct {
	Status *AttemptStatus
	From   *time.Time
	To     *time.Time
}

// RecordAttemptRequest は取り組み記録APIのリクエストボディ (DTO)
type RecordAttemptRequest struct {
	ProblemID uuid.UUID `json:"problem_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=attempted solved"`
}
