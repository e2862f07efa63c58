package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"codetrack/internal/middleware"
	"codetrack/internal/model"
	"codetrack/internal/service"
	"codetrack/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type AttemptHandler struct {
	service service.AttemptService
	logger  *slog.Logger
}

func NewAttemptHandler(s service.AttemptService, logger *slog.Logger) *AttemptHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttemptHandler{
		service: s,
		logger:  logger,
	}
}

// PostAttempt は問題への取り組み (attempted / solved) を記録するハンドラ
func (h *AttemptHandler) PostAttempt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAttempt"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.RecordAttemptRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	event, err := h.service.RecordAttempt(r.Context(), userID, req.ProblemID, model.AttemptStatus(req.Status))
	if err != nil {
		logger.Error("Error recording attempt in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Attempt recorded successfully", slog.String("problem_id", req.ProblemID.String()), slog.String("status", string(event.Status)))
	webutil.RespondWithJSON(w, http.StatusCreated, event)
}

// GetAttempts は取り組み履歴の一覧を返すハンドラ。
// クエリパラメータ: status, from, to (RFC3339 または "2006-01-02")
func (h *AttemptHandler) GetAttempts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAttempts"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	filter, err := parseAttemptFilter(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	events, err := h.service.ListAttempts(r.Context(), userID, filter)
	if err != nil {
		logger.Error("Error listing attempts in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if events == nil {
		events = []*model.AttemptEvent{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, events)
}

func parseAttemptFilter(r *http.Request) (model.AttemptFilter, error) {
	var filter model.AttemptFilter
	q := r.URL.Query()

	if s := q.Get("status"); s != "" {
		status := model.AttemptStatus(s)
		if !status.Valid() {
			return filter, model.NewAppError("VALIDATION_ERROR", "ステータスの指定が正しくありません。", "status", model.ErrInvalidInput)
		}
		filter.Status = &status
	}
	if s := q.Get("from"); s != "" {
		t, err := parseTimeParam(s)
		if err != nil {
			return filter, model.NewAppError("VALIDATION_ERROR", "fromの日付形式が正しくありません。", "from", model.ErrInvalidInput)
		}
		filter.From = &t
	}
	if s := q.Get("to"); s != "" {
		t, err := parseTimeParam(s)
		if err != nil {
			return filter, model.NewAppError("VALIDATION_ERROR", "toの日付形式が正しくありません。", "to", model.ErrInvalidInput)
		}
		filter.To = &t
	}
	return filter, nil
}

func parseTimeParam(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
