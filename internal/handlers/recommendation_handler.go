package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"codetrack/internal/middleware"
	"codetrack/internal/model"
	"codetrack/internal/service"
	"codetrack/internal/webutil"
)

type RecommendationHandler struct {
	service service.RecommendationService
	logger  *slog.Logger
}

func NewRecommendationHandler(s service.RecommendationService, logger *slog.Logger) *RecommendationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecommendationHandler{
		service: s,
		logger:  logger,
	}
}

// GetRecommendations は「次に解くべき問題」の一覧を返すハンドラ。
// クエリパラメータ: limit (省略時は設定のデフォルト件数)
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetRecommendations"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 50 {
			appErr := model.NewAppError("VALIDATION_ERROR", "limitの指定が正しくありません。", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		limit = n
	}

	problems, err := h.service.Recommend(r.Context(), userID, limit)
	if err != nil {
		logger.Error("Error computing recommendations in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if problems == nil {
		problems = []model.RecommendedProblem{}
	}
	logger.Info("Recommendations returned", slog.Int("count", len(problems)))
	webutil.RespondWithJSON(w, http.StatusOK, problems)
}
