package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"codetrack/internal/middleware"
	"codetrack/internal/model"
	"codetrack/internal/repository"
	"codetrack/internal/webutil"
)

// EventsHandler は進捗変更のプッシュ通知 (Server-Sent Events) を担当します。
// 通知が無効な構成ではストリームは開いたまま何も流れず、クライアントは
// ポーリングに退化します。
type EventsHandler struct {
	notifier repository.ProgressNotifier
	logger   *slog.Logger
}

func NewEventsHandler(notifier repository.ProgressNotifier, logger *slog.Logger) *EventsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventsHandler{
		notifier: notifier,
		logger:   logger,
	}
}

// GetEvents は認証済みユーザーの進捗変更をSSEで配信するハンドラ。
// 接続の寿命はサーバのタイムアウト設定に従うため、クライアントは
// 切断されたら再接続する前提です。
func (h *EventsHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetEvents"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("Response writer does not support streaming")
		appErr := model.NewAppError("STREAMING_UNSUPPORTED", "この接続ではストリーミング配信を利用できません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	changes, cancel, err := h.notifier.Subscribe(r.Context(), userID)
	if err != nil {
		logger.Error("Error subscribing to progress changes", slog.Any("error", err))
		appErr := model.NewAppError("STORE_UNAVAILABLE", "通知チャネルに接続できません。時間をおいて再度お試しください。", "", model.ErrStoreUnavailable)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	logger.Info("Progress event stream opened", slog.String("user_id", userID.String()))

	for {
		select {
		case <-r.Context().Done():
			logger.Debug("Progress event stream closed by client", slog.String("user_id", userID.String()))
			return
		case change, open := <-changes:
			if !open {
				logger.Debug("Progress event stream closed by notifier", slog.String("user_id", userID.String()))
				return
			}
			payload, err := json.Marshal(change)
			if err != nil {
				logger.Warn("Dropping unserializable progress change", slog.Any("error", err))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: progress\ndata: %s\n\n", payload); err != nil {
				logger.Debug("Progress event stream write failed", slog.Any("error", err))
				return
			}
			flusher.Flush()
		}
	}
}
