//go:generate mockery --name StreakService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"codetrack/internal/config"
	"codetrack/internal/middleware"
	"codetrack/internal/model"
	"codetrack/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StreakService は連続学習日数サマリの読み書きを提供します。
type StreakService interface {
	// RecordActivity は「今日」の活動を記録し、ストリーク遷移を適用します。
	// solvedDelta は今回の活動で新たに解けた問題数 (ログインだけなら0)。
	RecordActivity(ctx context.Context, userID uuid.UUID, solvedDelta int) (*model.UserStreakSummary, error)
	GetSummary(ctx context.Context, userID uuid.UUID) (*model.UserStreakSummary, error)
	UpdateDailyGoal(ctx context.Context, userID uuid.UUID, goal int) (*model.UserStreakSummary, error)
}

type streakService struct {
	db         *gorm.DB
	streakRepo repository.StreakRepository
	notifier   repository.ProgressNotifier
	cfg        *config.Config
	now        func() time.Time // テストで差し替え可能にする
}

func NewStreakService(db *gorm.DB, streakRepo repository.StreakRepository, notifier repository.ProgressNotifier, cfg *config.Config) StreakService {
	return &streakService{
		db:         db,
		streakRepo: streakRepo,
		notifier:   notifier,
		cfg:        cfg,
		now:        time.Now,
	}
}

// TruncateToDay は時刻をUTCの日付粒度に正規化します。
// 「今日」の判定はクライアント・サーバーの双方でUTC基準に統一します。
func TruncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeNextStreak は前回のサマリと「今日」から次のサマリを計算する純粋関数です。
// 引数の prev は変更しません。
//   - prev == nil: 新規ユーザーとしてストリーク1から開始
//   - 最終活動日 == 今日: 何もしない (同日の重複呼び出しは冪等)
//   - 最終活動日 == 昨日: ストリーク継続 (+1)
//   - それ以外 (2日以上の空白): ストリークを1にリセット
func ComputeNextStreak(userID uuid.UUID, prev *model.UserStreakSummary, today time.Time, defaultGoal int) *model.UserStreakSummary {
	day := TruncateToDay(today)

	if prev == nil {
		return &model.UserStreakSummary{
			UserID:           userID,
			TotalSolved:      0,
			CurrentStreak:    1,
			LongestStreak:    1,
			DailyGoal:        defaultGoal,
			LastActivityDate: &day,
		}
	}

	next := *prev

	if prev.LastActivityDate != nil {
		last := TruncateToDay(*prev.LastActivityDate)
		switch {
		case last.Equal(day):
			// 同日の再呼び出し。ストリークは増やさない。
			return &next
		case last.After(day):
			// last_activity_date は単調非減少。過去日での呼び出しは同日扱いで無視する。
			return &next
		case last.AddDate(0, 0, 1).Equal(day):
			next.CurrentStreak = prev.CurrentStreak + 1
		default:
			next.CurrentStreak = 1
		}
	} else {
		next.CurrentStreak = 1
	}

	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}
	next.LastActivityDate = &day
	return &next
}

func (s *streakService) RecordActivity(ctx context.Context, userID uuid.UUID, solvedDelta int) (*model.UserStreakSummary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	var result *model.UserStreakSummary
	var wrote bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prev, err := s.streakRepo.Find(ctx, tx, userID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to read streak summary in transaction", "error", err)
			return model.NewAppError("STORE_UNAVAILABLE", "進捗ストアにアクセスできませんでした。", "", model.ErrStoreUnavailable)
		}
		if errors.Is(err, model.ErrNotFound) {
			prev = nil // 新規ユーザー
		}

		next := ComputeNextStreak(userID, prev, s.now(), s.cfg.App.DefaultDailyGoal)
		if solvedDelta > 0 {
			next.TotalSolved += solvedDelta
		}

		// 同日の呼び出しで解答数の増分も無い場合は書き込み自体を省略する
		if prev != nil && next.CurrentStreak == prev.CurrentStreak &&
			next.TotalSolved == prev.TotalSolved &&
			prev.LastActivityDate != nil && next.LastActivityDate != nil &&
			TruncateToDay(*prev.LastActivityDate).Equal(*next.LastActivityDate) {
			result = next
			return nil
		}

		// 別日の計算同士が競合した場合に備え、書き込み時点でも max を取る
		if prev != nil && prev.LongestStreak > next.LongestStreak {
			next.LongestStreak = prev.LongestStreak
		}

		if err := s.streakRepo.Upsert(ctx, tx, next); err != nil {
			logger.Error("Failed to upsert streak summary", "error", err)
			return model.NewAppError("STORE_UNAVAILABLE", "進捗の保存に失敗しました。", "", model.ErrStoreUnavailable)
		}

		result = next
		wrote = true
		return nil
	})
	if err != nil {
		// ローカルでの適用は行わない。永続化できなければ失敗として返す。
		return nil, err
	}

	// 変更通知はベストエフォート。失敗しても操作自体は成功扱い。
	// 書き込みを省略した場合は何も変わっていないので購読側にも通知しない。
	if wrote {
		if pubErr := s.notifier.Publish(ctx, repository.ProgressChange{
			Table:  model.UserStreakSummary{}.TableName(),
			UserID: userID,
			At:     s.now(),
		}); pubErr != nil {
			logger.Warn("Failed to publish streak change notification", "error", pubErr)
		}
	}

	logger.Info("Streak activity recorded",
		"current_streak", result.CurrentStreak,
		"longest_streak", result.LongestStreak,
		"total_solved", result.TotalSolved,
	)
	return result, nil
}

func (s *streakService) GetSummary(ctx context.Context, userID uuid.UUID) (*model.UserStreakSummary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	summary, err := s.streakRepo.Find(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// サマリ行がまだ無いのは「新規ユーザー」。デフォルト値を返す (永続化はしない)。
			return &model.UserStreakSummary{
				UserID:    userID,
				DailyGoal: s.cfg.App.DefaultDailyGoal,
			}, nil
		}
		logger.Error("Failed to get streak summary", "error", err)
		return nil, model.NewAppError("STORE_UNAVAILABLE", "進捗の取得に失敗しました。", "", model.ErrStoreUnavailable)
	}
	return summary, nil
}

func (s *streakService) UpdateDailyGoal(ctx context.Context, userID uuid.UUID, goal int) (*model.UserStreakSummary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if goal <= 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "1日の目標は1以上で入力してください。", "daily_goal", model.ErrInvalidInput)
	}

	var result *model.UserStreakSummary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		summary, err := s.streakRepo.Find(ctx, tx, userID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to read streak summary for goal update", "error", err)
			return model.NewAppError("STORE_UNAVAILABLE", "進捗ストアにアクセスできませんでした。", "", model.ErrStoreUnavailable)
		}
		if errors.Is(err, model.ErrNotFound) {
			// 活動前に目標だけ設定するケース。ストリーク0のサマリを作る。
			summary = &model.UserStreakSummary{UserID: userID}
		}

		summary.DailyGoal = goal
		if err := s.streakRepo.Upsert(ctx, tx, summary); err != nil {
			logger.Error("Failed to upsert streak summary for goal update", "error", err)
			return model.NewAppError("STORE_UNAVAILABLE", "進捗の保存に失敗しました。", "", model.ErrStoreUnavailable)
		}
		result = summary
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Daily goal updated", "daily_goal", goal)
	return result, nil
}
