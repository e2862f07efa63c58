package service

import (
	"context"
	"log/slog"

	"codetrack/internal/config"
	"codetrack/internal/middleware"
)

// Mailer はアカウント確認メールやリマインダーの送信を抽象化します。
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer は実際には送信せず、ログに出力するだけの実装です (開発用)。
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// NewMailer は設定に応じてメーラー実装を選択するファクトリ関数です。
func NewMailer(cfg *config.Config) Mailer {
	logger := slog.Default()
	if cfg.SES.Enabled {
		logger.Info("Initializing SES mailer...")
		return NewSESMailer(cfg)
	}
	logger.Info("Initializing Log mailer...")
	return &LogMailer{}
}
