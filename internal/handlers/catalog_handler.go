package handlers

import (
	"log/slog"
	"net/http"

	"codetrack/internal/model"
	"codetrack/internal/service"
	"codetrack/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	service service.CatalogService
	logger  *slog.Logger
}

func NewCatalogHandler(s service.CatalogService, logger *slog.Logger) *CatalogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogHandler{
		service: s,
		logger:  logger,
	}
}

// GetTopics はトピック一覧を返すハンドラ
func (h *CatalogHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTopics"))

	topics, err := h.service.ListTopics(r.Context())
	if err != nil {
		logger.Error("Error listing topics in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if topics == nil {
		topics = []*model.Topic{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, topics)
}

// GetProblems は問題一覧を返すハンドラ。
// クエリパラメータ: topic_id, difficulty
func (h *CatalogHandler) GetProblems(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProblems"))

	var filter model.ProblemFilter
	q := r.URL.Query()

	if s := q.Get("topic_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			appErr := model.NewAppError("VALIDATION_ERROR", "topic_idの形式が正しくありません。", "topic_id", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		filter.TopicID = &id
	}
	if s := q.Get("difficulty"); s != "" {
		d := model.Difficulty(s)
		filter.Difficulty = &d
	}

	problems, err := h.service.ListProblems(r.Context(), filter)
	if err != nil {
		logger.Error("Error listing problems in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if problems == nil {
		problems = []*model.Problem{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, problems)
}

// GetProblem は単一の問題を返すハンドラ
func (h *CatalogHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProblem"))

	idStr := chi.URLParam(r, "problemID")
	problemID, err := uuid.Parse(idStr)
	if err != nil {
		appErr := model.NewAppError("VALIDATION_ERROR", "problem_idの形式が正しくありません。", "problem_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	problem, err := h.service.GetProblem(r.Context(), problemID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, problem)
}
