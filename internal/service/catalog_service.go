//go:generate mockery --name CatalogService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"codetrack/internal/middleware"
	"codetrack/internal/model"
	"codetrack/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService はトピック・問題カタログの参照を提供します。
// カタログは静的データで、このAPIからの書き込みはありません (投入はシーダー経由)。
type CatalogService interface {
	ListTopics(ctx context.Context) ([]*model.Topic, error)
	ListProblems(ctx context.Context, filter model.ProblemFilter) ([]*model.Problem, error)
	GetProblem(ctx context.Context, problemID uuid.UUID) (*model.Problem, error)
}

type catalogService struct {
	db          *gorm.DB
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(db *gorm.DB, catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{
		db:          db,
		catalogRepo: catalogRepo,
	}
}

func (s *catalogService) ListTopics(ctx context.Context) ([]*model.Topic, error) {
	logger := middleware.GetLogger(ctx)

	topics, err := s.catalogRepo.ListTopics(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list topics", "error", err)
		return nil, model.NewAppError("STORE_UNAVAILABLE", "トピック一覧の取得に失敗しました。", "", model.ErrStoreUnavailable)
	}
	return topics, nil
}

func (s *catalogService) ListProblems(ctx context.Context, filter model.ProblemFilter) ([]*model.Problem, error) {
	logger := middleware.GetLogger(ctx)

	if filter.Difficulty != nil && !filter.Difficulty.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "難易度の指定が正しくありません。", "difficulty", model.ErrInvalidInput)
	}

	problems, err := s.catalogRepo.ListProblems(ctx, s.db, filter)
	if err != nil {
		logger.Error("Failed to list problems", "error", err)
		return nil, model.NewAppError("STORE_UNAVAILABLE", "問題一覧の取得に失敗しました。", "", model.ErrStoreUnavailable)
	}
	return problems, nil
}

func (s *catalogService) GetProblem(ctx context.Context, problemID uuid.UUID) (*model.Problem, error) {
	logger := middleware.GetLogger(ctx)

	problem, err := s.catalogRepo.FindProblemByID(ctx, s.db, problemID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定された問題が見つかりません。", "problem_id", model.ErrNotFound)
		}
		logger.Error("Failed to find problem", "error", err)
		return nil, model.NewAppError("STORE_UNAVAILABLE", "問題の取得に失敗しました。", "", model.ErrStoreUnavailable)
	}
	return problem, nil
}
