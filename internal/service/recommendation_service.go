//go:generate mockery --name RecommendationService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"sort"

	"codetrack/internal/config"
	"codetrack/internal/middleware"
	"codetrack/internal/model"
	"codetrack/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecommendationService は弱点トピックに基づく「次に解くべき問題」を提案します。
type RecommendationService interface {
	// Recommend は最大 maxResults 件の推薦問題を返します。
	// maxResults <= 0 の場合は設定のデフォルト件数を使います。
	// 空スライスは「推薦できる問題が無い」という正常な結果です。
	Recommend(ctx context.Context, userID uuid.UUID, maxResults int) ([]model.RecommendedProblem, error)
}

type recommendationService struct {
	db          *gorm.DB
	attemptRepo repository.AttemptRepository
	catalogRepo repository.CatalogRepository
	analytics   AnalyticsService
	cfg         *config.Config
}

func NewRecommendationService(db *gorm.DB, attemptRepo repository.AttemptRepository, catalogRepo repository.CatalogRepository, analytics AnalyticsService, cfg *config.Config) RecommendationService {
	return &recommendationService{
		db:          db,
		attemptRepo: attemptRepo,
		catalogRepo: catalogRepo,
		analytics:   analytics,
		cfg:         cfg,
	}
}

// SelectWeakTopics は解答数の少ない順にトピックを選ぶ純粋関数です。
// 同数の場合はカタログの表示順 (order_index, topic_id) で安定に選びます。
// counts はカタログ全トピック分 (0件含む) が前提です。
func SelectWeakTopics(counts []model.TopicCount, topics []*model.Topic, limit int) []model.TopicCount {
	order := make(map[uuid.UUID]int, len(topics))
	for i, t := range topics {
		order[t.TopicID] = i
	}

	sorted := make([]model.TopicCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count < sorted[j].Count
		}
		oi, oki := order[sorted[i].TopicID]
		oj, okj := order[sorted[j].TopicID]
		if oki && okj && oi != oj {
			return oi < oj
		}
		return sorted[i].TopicID.String() < sorted[j].TopicID.String()
	})

	if limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}

func (s *recommendationService) Recommend(ctx context.Context, userID uuid.UUID, maxResults int) ([]model.RecommendedProblem, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if maxResults <= 0 {
		maxResults = s.cfg.App.RecommendationLimit
	}

	topics, err := s.catalogRepo.ListTopics(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list topics for recommendation", "error", err)
		return nil, model.NewAppError("STORE_UNAVAILABLE", "推薦の取得に失敗しました。", "", model.ErrStoreUnavailable)
	}
	if len(topics) == 0 {
		return []model.RecommendedProblem{}, nil
	}

	counts, err := s.analytics.GetTopicBreakdown(ctx, userID)
	if err != nil {
		logger.Error("Failed to get topic breakdown for recommendation", "error", err)
		return nil, err
	}

	// 推薦から除外する問題 (一度でも触った問題は出さない)
	attempted, err := s.attemptRepo.FindByUser(ctx, s.db, userID, model.AttemptFilter{})
	if err != nil {
		logger.Error("Failed to list attempt events for recommendation", "error", err)
		return nil, model.NewAppError("STORE_UNAVAILABLE", "推薦の取得に失敗しました。", "", model.ErrStoreUnavailable)
	}
	exclude := make(map[uuid.UUID]struct{}, len(attempted))
	totalSolved := 0
	for _, ev := range attempted {
		exclude[ev.ProblemID] = struct{}{}
		if ev.Status == model.StatusSolved {
			totalSolved++
		}
	}

	var weak []model.TopicCount
	if len(attempted) == 0 {
		// コールドスタート: 活動が無ければカタログ先頭のトピックから始めてもらう
		limit := s.cfg.App.WeakTopicCount
		if limit > len(topics) {
			limit = len(topics)
		}
		for _, t := range topics[:limit] {
			weak = append(weak, model.TopicCount{TopicID: t.TopicID, TopicName: t.Name})
		}
	} else {
		weak = SelectWeakTopics(counts, topics, s.cfg.App.WeakTopicCount)
	}

	result := make([]model.RecommendedProblem, 0, maxResults)
	for _, wt := range weak {
		topicID := wt.TopicID
		problems, err := s.catalogRepo.ListProblems(ctx, s.db, model.ProblemFilter{TopicID: &topicID})
		if err != nil {
			// 1トピックの失敗で推薦全体を落とさない。そのトピックだけスキップ。
			logger.Warn("Failed to list problems for weak topic, skipping", "topic_id", topicID, "error", err)
			continue
		}

		candidates := make([]*model.Problem, 0, len(problems))
		for _, p := range problems {
			if _, done := exclude[p.ProblemID]; done {
				continue
			}
			candidates = append(candidates, p)
		}
		// 易しい問題から提案する
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Difficulty.Rank() < candidates[j].Difficulty.Rank()
		})

		perTopic := s.cfg.App.ProblemsPerTopic
		if perTopic > len(candidates) {
			perTopic = len(candidates)
		}
		for _, p := range candidates[:perTopic] {
			result = append(result, model.RecommendedProblem{
				ProblemID:  p.ProblemID,
				TopicID:    p.TopicID,
				TopicName:  wt.TopicName,
				Title:      p.Title,
				Difficulty: p.Difficulty,
			})
		}
	}

	if len(result) == 0 {
		// 弱点トピックから何も出せなかった場合は、カタログ全体から
		// 未着手の新着問題を提案する
		topicNames := make(map[uuid.UUID]string, len(topics))
		for _, t := range topics {
			topicNames[t.TopicID] = t.Name
		}
		fallback, err := s.fallbackRecent(ctx, exclude, topicNames, maxResults)
		if err != nil {
			if errors.Is(err, model.ErrStoreUnavailable) {
				return nil, err
			}
			logger.Warn("Recommendation fallback failed", "error", err)
			return []model.RecommendedProblem{}, nil
		}
		result = fallback
	}

	if len(result) > maxResults {
		result = result[:maxResults]
	}

	logger.Info("Recommendations computed", "count", len(result), "total_solved", totalSolved)
	return result, nil
}

// fallbackRecent はカタログ全体から未着手の問題を新着順に返します。
// トピック名は取得済みのカタログ (topicNames) から解決します。
func (s *recommendationService) fallbackRecent(ctx context.Context, exclude map[uuid.UUID]struct{}, topicNames map[uuid.UUID]string, limit int) ([]model.RecommendedProblem, error) {
	problems, err := s.catalogRepo.ListProblems(ctx, s.db, model.ProblemFilter{})
	if err != nil {
		return nil, err
	}

	result := make([]model.RecommendedProblem, 0, limit)
	for _, p := range problems {
		if _, done := exclude[p.ProblemID]; done {
			continue
		}
		result = append(result, model.RecommendedProblem{
			ProblemID:  p.ProblemID,
			TopicID:    p.TopicID,
			TopicName:  topicNames[p.TopicID],
			Title:      p.Title,
			Difficulty: p.Difficulty,
		})
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}
