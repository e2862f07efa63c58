//go:generate mockery --name AnalyticsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"codetrack/internal/middleware"
	"codetrack/internal/model"
	"codetrack/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsService はトピック別・日別の集計値を提供します。
// 集計は表示用の導出値なので、ストア障害時はエラーではなく空の結果に縮退します。
type AnalyticsService interface {
	GetTopicBreakdown(ctx context.Context, userID uuid.UUID) ([]model.TopicCount, error)
	GetCalendar(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*model.CalendarResponse, error)
}

type analyticsService struct {
	db          *gorm.DB
	attemptRepo repository.AttemptRepository
	catalogRepo repository.CatalogRepository
	streakRepo  repository.StreakRepository
}

func NewAnalyticsService(db *gorm.DB, attemptRepo repository.AttemptRepository, catalogRepo repository.CatalogRepository, streakRepo repository.StreakRepository) AnalyticsService {
	return &analyticsService{
		db:          db,
		attemptRepo: attemptRepo,
		catalogRepo: catalogRepo,
		streakRepo:  streakRepo,
	}
}

// AggregateByTopic はトピックごとの解答数を計算する純粋関数です。
// カタログの全トピックを0件で初期化し、solvedイベントを problemTopicIndex
// (problem_id → topic_id) で解決して加算します。解決できないイベントは
// 黙ってスキップします (カタログから削除された問題など)。
// 返り値の順序は未定義です。表示順は呼び出し側で整えます。
func AggregateByTopic(topics []*model.Topic, events []*model.AttemptEvent, problemTopicIndex map[uuid.UUID]uuid.UUID) []model.TopicCount {
	counts := make(map[uuid.UUID]int, len(topics))
	names := make(map[uuid.UUID]string, len(topics))
	for _, t := range topics {
		counts[t.TopicID] = 0
		names[t.TopicID] = t.Name
	}

	for _, ev := range events {
		if ev.Status != model.StatusSolved {
			continue
		}
		topicID, ok := problemTopicIndex[ev.ProblemID]
		if !ok {
			continue
		}
		if _, known := counts[topicID]; !known {
			continue
		}
		counts[topicID]++
	}

	result := make([]model.TopicCount, 0, len(topics))
	for _, t := range topics {
		result = append(result, model.TopicCount{
			TopicID:   t.TopicID,
			TopicName: names[t.TopicID],
			Count:     counts[t.TopicID],
		})
	}
	return result
}

// AggregateByDay は期間内のsolvedイベントを日単位 (UTC) で集計する純粋関数です。
// キーは "2006-01-02" 形式。解答が無い日はキー自体を含めません。
func AggregateByDay(events []*model.AttemptEvent, rangeStart, rangeEnd time.Time) map[string]int {
	start := TruncateToDay(rangeStart)
	end := TruncateToDay(rangeEnd)

	result := make(map[string]int)
	for _, ev := range events {
		if ev.Status != model.StatusSolved || ev.SolvedAt == nil {
			continue
		}
		day := TruncateToDay(*ev.SolvedAt)
		if day.Before(start) || day.After(end) {
			continue
		}
		result[day.Format("2006-01-02")]++
	}
	return result
}

// validateTopicRows はストア側集計 (高速パス) の結果の形を検証します。
// 件数が負、またはカタログに存在しないトピックIDが含まれる場合は
// model.ErrShapeMismatch を返し、呼び出し側は手動集計にフォールバックします。
func validateTopicRows(rows []repository.TopicSolvedRow, topics []*model.Topic) error {
	known := make(map[uuid.UUID]struct{}, len(topics))
	for _, t := range topics {
		known[t.TopicID] = struct{}{}
	}
	for _, row := range rows {
		if row.Count < 0 {
			return fmt.Errorf("negative count for topic %s: %w", row.TopicID, model.ErrShapeMismatch)
		}
		if _, ok := known[row.TopicID]; !ok {
			return fmt.Errorf("unknown topic %s in aggregate: %w", row.TopicID, model.ErrShapeMismatch)
		}
	}
	return nil
}

func (s *analyticsService) GetTopicBreakdown(ctx context.Context, userID uuid.UUID) ([]model.TopicCount, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	topics, err := s.catalogRepo.ListTopics(ctx, s.db)
	if err != nil {
		// カタログが読めなければ集計のしようがない。空表示に縮退する。
		logger.Warn("Failed to list topics, degrading to empty breakdown", "error", err)
		return []model.TopicCount{}, nil
	}

	// 高速パス: ストア側のGROUP BY集計
	rows, err := s.attemptRepo.CountSolvedByTopic(ctx, s.db, userID)
	if err == nil {
		if shapeErr := validateTopicRows(rows, topics); shapeErr == nil {
			byTopic := make(map[uuid.UUID]int, len(rows))
			for _, row := range rows {
				byTopic[row.TopicID] = int(row.Count)
			}
			result := make([]model.TopicCount, 0, len(topics))
			for _, t := range topics {
				result = append(result, model.TopicCount{
					TopicID:   t.TopicID,
					TopicName: t.Name,
					Count:     byTopic[t.TopicID],
				})
			}
			return result, nil
		} else if errors.Is(shapeErr, model.ErrShapeMismatch) {
			// フォールバックは利用者に見せない。ログにだけ残す。
			logger.Warn("Store-side topic aggregate had unexpected shape, falling back to manual aggregation", "error", shapeErr)
		}
	} else {
		logger.Warn("Store-side topic aggregate failed, falling back to manual aggregation", "error", err)
	}

	// フォールバック: 生イベントを読んでアプリ側で集計
	solved := model.StatusSolved
	events, err := s.attemptRepo.FindByUser(ctx, s.db, userID, model.AttemptFilter{Status: &solved})
	if err != nil {
		logger.Warn("Failed to list attempt events, degrading to empty breakdown", "error", err)
		return []model.TopicCount{}, nil
	}

	index, err := s.problemTopicIndex(ctx, events)
	if err != nil {
		logger.Warn("Failed to build problem-topic index, degrading to empty breakdown", "error", err)
		return []model.TopicCount{}, nil
	}

	return AggregateByTopic(topics, events, index), nil
}

// problemTopicIndex はイベント中の problem_id → topic_id の対応表を作ります。
// Preload済みのProblemがあればそれを使い、無ければカタログを引きます。
func (s *analyticsService) problemTopicIndex(ctx context.Context, events []*model.AttemptEvent) (map[uuid.UUID]uuid.UUID, error) {
	index := make(map[uuid.UUID]uuid.UUID, len(events))
	for _, ev := range events {
		if _, ok := index[ev.ProblemID]; ok {
			continue
		}
		if ev.Problem != nil {
			index[ev.ProblemID] = ev.Problem.TopicID
			continue
		}
		problem, err := s.catalogRepo.FindProblemByID(ctx, s.db, ev.ProblemID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				continue // カタログから消えた問題。集計からは黙って除外する。
			}
			return nil, err
		}
		index[ev.ProblemID] = problem.TopicID
	}
	return index, nil
}

func (s *analyticsService) GetCalendar(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*model.CalendarResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "year", year, "month", int(month))

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// リポジトリは solved_at <= To で比較するため、月末日の終端までを上限にする。
	// 0時で切ると月末日の日中の解答が落ちてしまう。
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	resp := &model.CalendarResponse{
		Year:  year,
		Month: int(month),
		Days:  []model.DayCount{},
	}

	solved := model.StatusSolved
	events, err := s.attemptRepo.FindByUser(ctx, s.db, userID, model.AttemptFilter{
		Status: &solved,
		From:   &monthStart,
		To:     &monthEnd,
	})
	if err != nil {
		// 日別件数はヒートマップ表示用の導出値。読めなければ空のまま返す。
		logger.Warn("Failed to list solved events for calendar, degrading to empty days", "error", err)
		events = nil
	}

	byDay := AggregateByDay(events, monthStart, monthEnd)
	for date, count := range byDay {
		resp.Days = append(resp.Days, model.DayCount{Date: date, Count: count})
	}
	sort.Slice(resp.Days, func(i, j int) bool { return resp.Days[i].Date < resp.Days[j].Date })

	summary, err := s.streakRepo.Find(ctx, s.db, userID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Warn("Failed to read streak summary for calendar", "error", err)
		}
		// サマリが無い・読めない場合は0のまま
		return resp, nil
	}
	resp.CurrentStreak = summary.CurrentStreak
	resp.LongestStreak = summary.LongestStreak
	return resp, nil
}
