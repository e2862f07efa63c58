//go:generate mockery --name AttemptService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"codetrack/internal/middleware"
	"codetrack/internal/model"
	"codetrack/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptService は問題への取り組みイベントの記録と一覧を提供します。
type AttemptService interface {
	// RecordAttempt はステータス遷移 (none → attempted → solved) を適用します。
	// solved からの後退は拒否します。新たに solved になった場合は
	// ストリークへ解答1件分の活動を反映します。
	RecordAttempt(ctx context.Context, userID, problemID uuid.UUID, status model.AttemptStatus) (*model.AttemptEvent, error)
	ListAttempts(ctx context.Context, userID uuid.UUID, filter model.AttemptFilter) ([]*model.AttemptEvent, error)
}

type attemptService struct {
	db          *gorm.DB
	attemptRepo repository.AttemptRepository
	catalogRepo repository.CatalogRepository
	streakSvc   StreakService
	notifier    repository.ProgressNotifier
	now         func() time.Time
}

func NewAttemptService(db *gorm.DB, attemptRepo repository.AttemptRepository, catalogRepo repository.CatalogRepository, streakSvc StreakService, notifier repository.ProgressNotifier) AttemptService {
	return &attemptService{
		db:          db,
		attemptRepo: attemptRepo,
		catalogRepo: catalogRepo,
		streakSvc:   streakSvc,
		notifier:    notifier,
		now:         time.Now,
	}
}

func (s *attemptService) RecordAttempt(ctx context.Context, userID, problemID uuid.UUID, status model.AttemptStatus) (*model.AttemptEvent, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "problem_id", problemID)

	if !status.Valid() || status == model.StatusNone {
		return nil, model.NewAppError("VALIDATION_ERROR", "ステータスは attempted または solved を指定してください。", "status", model.ErrInvalidInput)
	}

	// 存在しない問題への記録は拒否する
	if _, err := s.catalogRepo.FindProblemByID(ctx, s.db, problemID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定された問題が見つかりません。", "problem_id", model.ErrNotFound)
		}
		logger.Error("Failed to look up problem", "error", err)
		return nil, model.NewAppError("STORE_UNAVAILABLE", "問題カタログにアクセスできませんでした。", "", model.ErrStoreUnavailable)
	}

	var (
		event    *model.AttemptEvent
		newSolve bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.attemptRepo.FindByUserAndProblem(ctx, tx, userID, problemID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to look up attempt event", "error", err)
			return model.NewAppError("STORE_UNAVAILABLE", "進捗ストアにアクセスできませんでした。", "", model.ErrStoreUnavailable)
		}

		now := s.now()

		if errors.Is(err, model.ErrNotFound) {
			event = &model.AttemptEvent{
				AttemptID: uuid.New(),
				UserID:    userID,
				ProblemID: problemID,
				Status:    status,
			}
			event.AttemptedAt = &now
			if status == model.StatusSolved {
				event.SolvedAt = &now
				newSolve = true
			}
			if err := s.attemptRepo.Create(ctx, tx, event); err != nil {
				if errors.Is(err, model.ErrConflict) {
					// 同一ユーザー・同一問題の同時記録。後勝ちにはせずConflictを返す。
					return model.NewAppError("CONFLICT", "この問題への記録が競合しました。再度お試しください。", "", model.ErrConflict)
				}
				logger.Error("Failed to create attempt event", "error", err)
				return model.NewAppError("STORE_UNAVAILABLE", "進捗の保存に失敗しました。", "", model.ErrStoreUnavailable)
			}
			return nil
		}

		if !existing.Status.CanTransitionTo(status) {
			return model.NewAppError("CONFLICT", "解答済みの問題のステータスは戻せません。", "status", model.ErrConflict)
		}

		if existing.Status != model.StatusSolved && status == model.StatusSolved {
			existing.SolvedAt = &now
			newSolve = true
		}
		existing.Status = status
		if err := s.attemptRepo.Update(ctx, tx, existing); err != nil {
			logger.Error("Failed to update attempt event", "error", err)
			return model.NewAppError("STORE_UNAVAILABLE", "進捗の保存に失敗しました。", "", model.ErrStoreUnavailable)
		}
		event = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	// ストリークへの反映はイベント保存のコミット後に行う。
	// 新規solveなら解答数+1、それ以外の活動は0件として日付だけ刻む。
	solvedDelta := 0
	if newSolve {
		solvedDelta = 1
	}
	if _, streakErr := s.streakSvc.RecordActivity(ctx, userID, solvedDelta); streakErr != nil {
		// イベント自体は保存済み。ストリーク更新の失敗は呼び出しを失敗させない。
		logger.Warn("Failed to apply streak transition after attempt", "error", streakErr)
	}

	if pubErr := s.notifier.Publish(ctx, repository.ProgressChange{
		Table:  model.AttemptEvent{}.TableName(),
		UserID: userID,
		At:     s.now(),
	}); pubErr != nil {
		logger.Warn("Failed to publish attempt change notification", "error", pubErr)
	}

	logger.Info("Attempt recorded", "status", event.Status, "new_solve", newSolve)
	return event, nil
}

func (s *attemptService) ListAttempts(ctx context.Context, userID uuid.UUID, filter model.AttemptFilter) ([]*model.AttemptEvent, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	events, err := s.attemptRepo.FindByUser(ctx, s.db, userID, filter)
	if err != nil {
		logger.Error("Failed to list attempt events", "error", err)
		return nil, model.NewAppError("STORE_UNAVAILABLE", "取り組み履歴の取得に失敗しました。", "", model.ErrStoreUnavailable)
	}
	return events, nil
}
