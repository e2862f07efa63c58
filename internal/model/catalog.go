package model

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty は問題の難易度を表します
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Rank は難易度の並び替え用の序数を返します (easy < medium < hard)
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		// 不明な難易度は最後に回す
		return 4
	}
}

// Valid は定義済みの難易度かどうかを返します
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Topic は学習トピック（静的カタログ）を表します
type Topic struct {
	TopicID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"topic_id"`
	Name       string    `gorm:"not null;unique" json:"name"`
	OrderIndex int       `gorm:"not null;default:0;index" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Topic) TableName() string {
	return "topics"
}

// Problem は練習問題（静的カタログ）を表します
type Problem struct {
	ProblemID  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"problem_id"`
	TopicID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"topic_id"`
	Title      string     `gorm:"not null" json:"title"`
	Difficulty Difficulty `gorm:"type:varchar(16);not null" json:"difficulty"`
	Tags       string     `gorm:"type:text" json:"tags"` // カンマ区切り
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// 関連 (Preload用)
	Topic *Topic `gorm:"foreignKey:TopicID;references:TopicID" json:"-"`
}

func (Problem) TableName() string {
	return "problems"
}

// ProblemFilter はカタログ検索の絞り込み条件です
type ProblemFilter struct {
	TopicID    *uuid.UUID
	Difficulty *Difficulty
}
