// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "codetrack"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort          = ":8080"
	DefaultLogLevel            = "info"
	DefaultRecommendationLimit = 3
	DefaultWeakTopicCount      = 2
	DefaultProblemsPerTopic    = 2
	DefaultDailyGoal           = 1
	DefaultReminderHour        = 20 // 20:00 UTC
	DefaultJWTExpiryHours      = 72
)
