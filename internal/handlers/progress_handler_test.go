package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codetrack/internal/model"
	"codetrack/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProgressHandler_PostActivity(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 活動を記録してサマリを返す", func(t *testing.T) {
		streakSvc := new(mocks.StreakService)
		analyticsSvc := new(mocks.AnalyticsService)
		streakSvc.On("RecordActivity", mock.Anything, userID, 0).
			Return(&model.UserStreakSummary{UserID: userID, CurrentStreak: 4, LongestStreak: 9}, nil).Once()
		handler := NewProgressHandler(streakSvc, analyticsSvc, nil)

		req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/v1/progress/activity", nil), userID)
		rec := httptest.NewRecorder()

		handler.PostActivity(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.UserStreakSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 4, got.CurrentStreak)
		streakSvc.AssertExpectations(t)
	})

	t.Run("異常系: ストア障害は503", func(t *testing.T) {
		streakSvc := new(mocks.StreakService)
		streakSvc.On("RecordActivity", mock.Anything, userID, 0).
			Return(nil, model.NewAppError("STORE_UNAVAILABLE", "進捗の保存に失敗しました。", "", model.ErrStoreUnavailable)).Once()
		handler := NewProgressHandler(streakSvc, new(mocks.AnalyticsService), nil)

		req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/v1/progress/activity", nil), userID)
		rec := httptest.NewRecorder()

		handler.PostActivity(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("異常系: 認証コンテキストなしは401", func(t *testing.T) {
		handler := NewProgressHandler(new(mocks.StreakService), new(mocks.AnalyticsService), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/progress/activity", nil)
		rec := httptest.NewRecorder()

		handler.PostActivity(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestProgressHandler_GetStreak(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: サマリを返す", func(t *testing.T) {
		streakSvc := new(mocks.StreakService)
		last := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
		streakSvc.On("GetSummary", mock.Anything, userID).
			Return(&model.UserStreakSummary{
				UserID: userID, TotalSolved: 42, CurrentStreak: 7, LongestStreak: 21,
				DailyGoal: 2, LastActivityDate: &last,
			}, nil).Once()
		handler := NewProgressHandler(streakSvc, new(mocks.AnalyticsService), nil)

		req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/v1/progress/streak", nil), userID)
		rec := httptest.NewRecorder()

		handler.GetStreak(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.UserStreakSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 42, got.TotalSolved)
		assert.Equal(t, 7, got.CurrentStreak)
		assert.Equal(t, 21, got.LongestStreak)
	})
}

func TestProgressHandler_PutGoal(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mocks.StreakService)
		wantStatus int
	}{
		{
			name: "正常系: 目標を更新して200",
			body: `{"daily_goal":3}`,
			setupMock: func(m *mocks.StreakService) {
				m.On("UpdateDailyGoal", mock.Anything, userID, 3).
					Return(&model.UserStreakSummary{UserID: userID, DailyGoal: 3}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "異常系: 0はバリデーションで400",
			body:       `{"daily_goal":0}`,
			setupMock:  func(m *mocks.StreakService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "異常系: 不正なJSONは400",
			body:       `{`,
			setupMock:  func(m *mocks.StreakService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streakSvc := new(mocks.StreakService)
			tt.setupMock(streakSvc)
			handler := NewProgressHandler(streakSvc, new(mocks.AnalyticsService), nil)

			req := authedRequest(httptest.NewRequest(http.MethodPut, "/api/v1/progress/goal", bytes.NewBufferString(tt.body)), userID)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.PutGoal(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			streakSvc.AssertExpectations(t)
		})
	}
}

func TestProgressHandler_GetTopicBreakdown(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 解答数の多い順に並べて返す", func(t *testing.T) {
		analyticsSvc := new(mocks.AnalyticsService)
		analyticsSvc.On("GetTopicBreakdown", mock.Anything, userID).Return([]model.TopicCount{
			{TopicID: uuid.New(), TopicName: "Trees", Count: 1},
			{TopicID: uuid.New(), TopicName: "Arrays", Count: 5},
			{TopicID: uuid.New(), TopicName: "DP", Count: 1},
		}, nil).Once()
		handler := NewProgressHandler(new(mocks.StreakService), analyticsSvc, nil)

		req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/v1/progress/topics", nil), userID)
		rec := httptest.NewRecorder()

		handler.GetTopicBreakdown(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []model.TopicCount
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 3)
		assert.Equal(t, "Arrays", got[0].TopicName)
		// 同数はトピック名順
		assert.Equal(t, "DP", got[1].TopicName)
		assert.Equal(t, "Trees", got[2].TopicName)
	})
}

func TestProgressHandler_GetCalendar(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 指定月のヒートマップを返す", func(t *testing.T) {
		analyticsSvc := new(mocks.AnalyticsService)
		analyticsSvc.On("GetCalendar", mock.Anything, userID, 2026, time.August).
			Return(&model.CalendarResponse{
				Year: 2026, Month: 8,
				Days:          []model.DayCount{{Date: "2026-08-05", Count: 2}},
				CurrentStreak: 3, LongestStreak: 9,
			}, nil).Once()
		handler := NewProgressHandler(new(mocks.StreakService), analyticsSvc, nil)

		req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/v1/progress/calendar?year=2026&month=8", nil), userID)
		rec := httptest.NewRecorder()

		handler.GetCalendar(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.CalendarResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 2026, got.Year)
		assert.Equal(t, 8, got.Month)
		require.Len(t, got.Days, 1)
		assert.Equal(t, 3, got.CurrentStreak)
	})

	t.Run("異常系: 不正なmonthは400", func(t *testing.T) {
		analyticsSvc := new(mocks.AnalyticsService)
		handler := NewProgressHandler(new(mocks.StreakService), analyticsSvc, nil)

		req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/v1/progress/calendar?year=2026&month=13", nil), userID)
		rec := httptest.NewRecorder()

		handler.GetCalendar(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		analyticsSvc.AssertNotCalled(t, "GetCalendar")
	})
}
