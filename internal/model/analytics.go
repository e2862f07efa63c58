package model

import "github.com/google/uuid"

// TopicCount はトピックごとの解答数（導出値、永続化しない）
type TopicCount struct {
	TopicID   uuid.UUID `json:"topic_id"`
	TopicName string    `json:"topic_name"`
	Count     int       `json:"count"`
}

// DayCount は1日あたりの解答数（導出値、永続化しない）
type DayCount struct {
	Date  string `json:"date"` // "2006-01-02" 形式
	Count int    `json:"count"`
}

// CalendarResponse はヒートマップ表示用のレスポンスDTO。
// 連続日数はサマリ行の値をそのまま返す（表示中の月から再計算はしない）。
type CalendarResponse struct {
	Year          int        `json:"year"`
	Month         int        `json:"month"`
	Days          []DayCount `json:"days"`
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
}

// RecommendedProblem は推薦問題のレスポンスDTO
type RecommendedProblem struct {
	ProblemID  uuid.UUID  `json:"problem_id"`
	TopicID    uuid.UUID  `json:"topic_id"`
	TopicName  string     `json:"topic_name,omitempty"`
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
}
