package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"codetrack/internal/config"
	"codetrack/internal/repository"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// ReminderScheduler はストリークが途切れそうなユーザーに
// 1日1回リマインダーメールを送るジョブを管理します。
type ReminderScheduler struct {
	scheduler  *gocron.Scheduler
	db         *gorm.DB
	streakRepo repository.StreakRepository
	userRepo   repository.UserRepository
	mailer     Mailer
	cfg        *config.Config
	logger     *slog.Logger
	now        func() time.Time
}

func NewReminderScheduler(db *gorm.DB, streakRepo repository.StreakRepository, userRepo repository.UserRepository, mailer Mailer, cfg *config.Config, logger *slog.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		scheduler:  gocron.NewScheduler(time.UTC),
		db:         db,
		streakRepo: streakRepo,
		userRepo:   userRepo,
		mailer:     mailer,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// Start はスケジューラを非同期で起動します。
// 送信時刻は設定の reminder_hour (UTC) に従います。
func (s *ReminderScheduler) Start() {
	at := fmt.Sprintf("%02d:00", s.cfg.App.ReminderHour)
	if _, err := s.scheduler.Every(1).Day().At(at).Do(s.sendStreakReminders); err != nil {
		s.logger.Error("Failed to schedule streak reminder job", "error", err)
		return
	}
	s.scheduler.StartAsync()
	s.logger.Info("Streak reminder job scheduled", "at_utc", at)
}

func (s *ReminderScheduler) Stop() {
	s.scheduler.Stop()
}

// sendStreakReminders は「昨日は活動したが今日はまだ」のユーザーに
// リマインダーを送ります。今日すでに活動したユーザーの
// last_activity_date は今日になっているため対象から外れます。
func (s *ReminderScheduler) sendStreakReminders() {
	ctx := context.Background()
	yesterday := TruncateToDay(s.now()).AddDate(0, 0, -1)

	summaries, err := s.streakRepo.FindAtRisk(ctx, s.db, yesterday)
	if err != nil {
		s.logger.Error("Failed to find at-risk streaks", "error", err)
		return
	}
	if len(summaries) == 0 {
		s.logger.Info("No at-risk streaks today")
		return
	}

	sent := 0
	for _, summary := range summaries {
		user, err := s.userRepo.FindByID(ctx, s.db, summary.UserID)
		if err != nil {
			s.logger.Warn("Failed to resolve user for reminder, skipping", "user_id", summary.UserID, "error", err)
			continue
		}
		if !user.IsActive {
			continue
		}

		subject := "【codetrack】今日の1問を忘れずに！"
		body := fmt.Sprintf(
			"%sさん\n\n現在%d日連続で学習を継続中です。\n今日まだ問題を解いていません。1問解いてストリークをつなぎましょう！",
			user.Name, summary.CurrentStreak,
		)
		if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
			s.logger.Warn("Failed to send streak reminder", "user_id", user.UserID, "error", err)
			continue
		}
		sent++
	}

	s.logger.Info("Streak reminders sent", "candidates", len(summaries), "sent", sent)
}
