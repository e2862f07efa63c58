package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"codetrack/internal/middleware"
	"codetrack/internal/model"
	"codetrack/internal/service"
	"codetrack/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// ProgressHandler はストリーク・集計系のエンドポイントを担当します
type ProgressHandler struct {
	streakSvc    service.StreakService
	analyticsSvc service.AnalyticsService
	logger       *slog.Logger
}

func NewProgressHandler(streakSvc service.StreakService, analyticsSvc service.AnalyticsService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		streakSvc:    streakSvc,
		analyticsSvc: analyticsSvc,
		logger:       logger,
	}
}

// PostActivity は「今日活動した」ことを記録するハンドラ。
// 問題を解かないログインだけの活動もストリークの対象になります。
func (h *ProgressHandler) PostActivity(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostActivity"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	summary, err := h.streakSvc.RecordActivity(r.Context(), userID, 0)
	if err != nil {
		logger.Error("Error recording activity in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, summary)
}

// GetStreak は現在のストリークサマリを返すハンドラ
func (h *ProgressHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStreak"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	summary, err := h.streakSvc.GetSummary(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting streak summary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, summary)
}

// PutGoal は1日の目標解答数を更新するハンドラ
func (h *ProgressHandler) PutGoal(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutGoal"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.UpdateGoalRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	summary, err := h.streakSvc.UpdateDailyGoal(r.Context(), userID, req.DailyGoal)
	if err != nil {
		logger.Error("Error updating daily goal in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Daily goal updated successfully", slog.Int("daily_goal", req.DailyGoal))
	webutil.RespondWithJSON(w, http.StatusOK, summary)
}

// GetTopicBreakdown はトピック別の解答数を返すハンドラ。
// 表示用に解答数の多い順、同数ならトピック名順で並べ替えて返します。
func (h *ProgressHandler) GetTopicBreakdown(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTopicBreakdown"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	counts, err := h.analyticsSvc.GetTopicBreakdown(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting topic breakdown in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	sortTopicCounts(counts)
	webutil.RespondWithJSON(w, http.StatusOK, counts)
}

// GetCalendar は月別のヒートマップ用データを返すハンドラ。
// クエリパラメータ: year, month (省略時は今月)
func (h *ProgressHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCalendar"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	q := r.URL.Query()
	if s := q.Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 2000 || y > 2100 {
			appErr := model.NewAppError("VALIDATION_ERROR", "yearの指定が正しくありません。", "year", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		year = y
	}
	if s := q.Get("month"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 || m > 12 {
			appErr := model.NewAppError("VALIDATION_ERROR", "monthの指定が正しくありません。", "month", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		month = time.Month(m)
	}

	resp, err := h.analyticsSvc.GetCalendar(r.Context(), userID, year, month)
	if err != nil {
		logger.Error("Error getting calendar in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func sortTopicCounts(counts []model.TopicCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].TopicName < counts[j].TopicName
	})
}
