// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// AppConfig は進捗分析・推薦まわりのアプリケーション設定です
type AppConfig struct {
	RecommendationLimit int `mapstructure:"recommendation_limit"` // 推薦問題の最大件数
	WeakTopicCount      int `mapstructure:"weak_topic_count"`     // 弱点トピックの選出数
	ProblemsPerTopic    int `mapstructure:"problems_per_topic"`   // 弱点トピックごとの問題数
	DefaultDailyGoal    int `mapstructure:"default_daily_goal"`   // サマリ新規作成時の1日の目標
	ReminderHour        int `mapstructure:"reminder_hour"`        // ストリークリマインダーの送信時刻 (UTC)
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey   string `mapstructure:"secret_key"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// RedisConfig は変更通知 (pub/sub) 用のRedis設定です。
// 無効の場合は通知なし (ポーリングのみ) にフォールバックします。
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
	Enabled         bool   `mapstructure:"enabled"`
}

type MailConfig struct {
	VerificationURL string `mapstructure:"verification_url"` // 確認メールに載せるURLのベース
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	App      AppConfig      `mapstructure:"app"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Redis    RedisConfig    `mapstructure:"redis"`
	SES      SESConfig      `mapstructure:"ses"`
	Mail     MailConfig     `mapstructure:"mail"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("redis.addr", "REDIS_ADDR")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.App.RecommendationLimit <= 0 {
		Cfg.App.RecommendationLimit = DefaultRecommendationLimit
	}
	if Cfg.App.WeakTopicCount <= 0 {
		Cfg.App.WeakTopicCount = DefaultWeakTopicCount
	}
	if Cfg.App.ProblemsPerTopic <= 0 {
		Cfg.App.ProblemsPerTopic = DefaultProblemsPerTopic
	}
	if Cfg.App.DefaultDailyGoal <= 0 {
		Cfg.App.DefaultDailyGoal = DefaultDailyGoal
	}
	if Cfg.App.ReminderHour < 0 || Cfg.App.ReminderHour > 23 {
		Cfg.App.ReminderHour = DefaultReminderHour
	}
	if Cfg.JWT.ExpiryHours <= 0 {
		Cfg.JWT.ExpiryHours = DefaultJWTExpiryHours
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	// Auth.Enabled のデフォルト値を設定 (未設定なら有効にする)
	if !viper.IsSet("auth.enabled") {
		Cfg.Auth.Enabled = true
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Recommendation Limit: %d", Cfg.App.RecommendationLimit)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}
