package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codetrack/internal/repository"
	"codetrack/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventsHandler_GetEvents(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 変更通知をSSEとして配信し、チャネルが閉じたら終了", func(t *testing.T) {
		notifier := new(mocks.ProgressNotifier)
		ch := make(chan repository.ProgressChange, 1)
		ch <- repository.ProgressChange{
			Table:  "user_streak_summaries",
			UserID: userID,
			At:     time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
		}
		close(ch)
		cancelled := false
		notifier.On("Subscribe", mock.Anything, userID).
			Return((<-chan repository.ProgressChange)(ch), func() { cancelled = true }, nil).Once()
		handler := NewEventsHandler(notifier, nil)

		req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/v1/progress/events", nil), userID)
		rec := httptest.NewRecorder()

		handler.GetEvents(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
		body := rec.Body.String()
		assert.Contains(t, body, "event: progress\n")
		assert.Contains(t, body, `"table":"user_streak_summaries"`)
		assert.Contains(t, body, userID.String())
		assert.True(t, cancelled, "購読はハンドラ終了時に解除されること")
		notifier.AssertExpectations(t)
	})

	t.Run("異常系: 購読の失敗は503", func(t *testing.T) {
		notifier := new(mocks.ProgressNotifier)
		notifier.On("Subscribe", mock.Anything, userID).
			Return(nil, nil, assert.AnError).Once()
		handler := NewEventsHandler(notifier, nil)

		req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/v1/progress/events", nil), userID)
		rec := httptest.NewRecorder()

		handler.GetEvents(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("異常系: 認証情報なしは401", func(t *testing.T) {
		notifier := new(mocks.ProgressNotifier)
		handler := NewEventsHandler(notifier, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/progress/events", nil)
		rec := httptest.NewRecorder()

		handler.GetEvents(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		notifier.AssertNotCalled(t, "Subscribe")
	})
}
