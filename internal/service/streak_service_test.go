package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"codetrack/internal/config"
	"codetrack/internal/model"
	"codetrack/internal/repository"
	"codetrack/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
func setupTestDBStreak(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserStreakSummary{}))
	return db
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	d := day(s)
	return &d
}

// --- Test ComputeNextStreak ---
func TestComputeNextStreak(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		prev        *model.UserStreakSummary
		today       time.Time
		wantCurrent int
		wantLongest int
		wantLast    time.Time
	}{
		{
			name:        "新規ユーザー: ストリーク1から開始",
			prev:        nil,
			today:       day("2026-08-10"),
			wantCurrent: 1,
			wantLongest: 1,
			wantLast:    day("2026-08-10"),
		},
		{
			name: "同日の再呼び出しは冪等",
			prev: &model.UserStreakSummary{
				UserID: userID, CurrentStreak: 5, LongestStreak: 9,
				LastActivityDate: dayPtr("2026-08-10"),
			},
			today:       day("2026-08-10"),
			wantCurrent: 5,
			wantLongest: 9,
			wantLast:    day("2026-08-10"),
		},
		{
			name: "翌日の活動でストリーク継続 (5→6)",
			prev: &model.UserStreakSummary{
				UserID: userID, CurrentStreak: 5, LongestStreak: 9,
				LastActivityDate: dayPtr("2026-08-10"),
			},
			today:       day("2026-08-11"),
			wantCurrent: 6,
			wantLongest: 9,
			wantLast:    day("2026-08-11"),
		},
		{
			name: "2日以上の空白でリセット、最長記録は保持",
			prev: &model.UserStreakSummary{
				UserID: userID, CurrentStreak: 7, LongestStreak: 9,
				LastActivityDate: dayPtr("2026-08-10"),
			},
			today:       day("2026-08-13"),
			wantCurrent: 1,
			wantLongest: 9,
			wantLast:    day("2026-08-13"),
		},
		{
			name: "継続で最長記録を更新",
			prev: &model.UserStreakSummary{
				UserID: userID, CurrentStreak: 9, LongestStreak: 9,
				LastActivityDate: dayPtr("2026-08-10"),
			},
			today:       day("2026-08-11"),
			wantCurrent: 10,
			wantLongest: 10,
			wantLast:    day("2026-08-11"),
		},
		{
			name: "最終活動日が未設定ならストリーク1から",
			prev: &model.UserStreakSummary{
				UserID: userID, CurrentStreak: 0, LongestStreak: 3,
				LastActivityDate: nil,
			},
			today:       day("2026-08-11"),
			wantCurrent: 1,
			wantLongest: 3,
			wantLast:    day("2026-08-11"),
		},
		{
			name: "時刻はUTCの日付に正規化される",
			prev: &model.UserStreakSummary{
				UserID: userID, CurrentStreak: 2, LongestStreak: 2,
				LastActivityDate: dayPtr("2026-08-10"),
			},
			today:       time.Date(2026, 8, 11, 23, 59, 0, 0, time.UTC),
			wantCurrent: 3,
			wantLongest: 3,
			wantLast:    day("2026-08-11"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeNextStreak(userID, tt.prev, tt.today, 1)

			assert.Equal(t, tt.wantCurrent, got.CurrentStreak)
			assert.Equal(t, tt.wantLongest, got.LongestStreak)
			require.NotNil(t, got.LastActivityDate)
			assert.True(t, tt.wantLast.Equal(*got.LastActivityDate),
				"want last=%v got=%v", tt.wantLast, *got.LastActivityDate)

			// 引数のprevが変更されていないこと
			if tt.prev != nil {
				assert.NotSame(t, tt.prev, got)
			}
		})
	}
}

func TestComputeNextStreak_DoesNotMutatePrev(t *testing.T) {
	userID := uuid.New()
	prev := &model.UserStreakSummary{
		UserID: userID, CurrentStreak: 5, LongestStreak: 9,
		LastActivityDate: dayPtr("2026-08-10"),
	}

	_ = ComputeNextStreak(userID, prev, day("2026-08-11"), 1)

	assert.Equal(t, 5, prev.CurrentStreak)
	assert.Equal(t, 9, prev.LongestStreak)
	assert.True(t, day("2026-08-10").Equal(*prev.LastActivityDate))
}

// --- Test RecordActivity ---
func Test_streakService_RecordActivity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	testConfig := &config.Config{
		App: config.AppConfig{DefaultDailyGoal: 1},
	}
	today := day("2026-08-11")

	tests := []struct {
		name        string
		solvedDelta int
		setupMock   func(m *mocks.StreakRepository, n *mocks.ProgressNotifier)
		wantErr     error
		wantCurrent int
		wantTotal   int
	}{
		{
			name:        "正常系: 新規ユーザーの初活動",
			solvedDelta: 1,
			setupMock: func(m *mocks.StreakRepository, n *mocks.ProgressNotifier) {
				m.On("Find", ctx, mock.Anything, userID).Return(nil, model.ErrNotFound).Once()
				m.On("Upsert", ctx, mock.Anything, mock.AnythingOfType("*model.UserStreakSummary")).Return(nil).Once()
				n.On("Publish", ctx, mock.AnythingOfType("repository.ProgressChange")).Return(nil).Once()
			},
			wantCurrent: 1,
			wantTotal:   1,
		},
		{
			name:        "正常系: 連続日の活動でストリーク加算",
			solvedDelta: 1,
			setupMock: func(m *mocks.StreakRepository, n *mocks.ProgressNotifier) {
				prev := &model.UserStreakSummary{
					UserID: userID, TotalSolved: 10, CurrentStreak: 3, LongestStreak: 5,
					DailyGoal: 1, LastActivityDate: dayPtr("2026-08-10"),
				}
				m.On("Find", ctx, mock.Anything, userID).Return(prev, nil).Once()
				m.On("Upsert", ctx, mock.Anything, mock.MatchedBy(func(s *model.UserStreakSummary) bool {
					return s.CurrentStreak == 4 && s.TotalSolved == 11 && s.LongestStreak == 5
				})).Return(nil).Once()
				n.On("Publish", ctx, mock.AnythingOfType("repository.ProgressChange")).Return(nil).Once()
			},
			wantCurrent: 4,
			wantTotal:   11,
		},
		{
			name:        "正常系: 同日・解答増分なしなら書き込みも通知も省略",
			solvedDelta: 0,
			setupMock: func(m *mocks.StreakRepository, n *mocks.ProgressNotifier) {
				prev := &model.UserStreakSummary{
					UserID: userID, TotalSolved: 10, CurrentStreak: 3, LongestStreak: 5,
					DailyGoal: 1, LastActivityDate: dayPtr("2026-08-11"),
				}
				m.On("Find", ctx, mock.Anything, userID).Return(prev, nil).Once()
				// 何も変わっていないのでUpsertもPublishも呼ばれない
			},
			wantCurrent: 3,
			wantTotal:   10,
		},
		{
			name:        "異常系: 読み取り失敗はErrStoreUnavailable",
			solvedDelta: 1,
			setupMock: func(m *mocks.StreakRepository, n *mocks.ProgressNotifier) {
				m.On("Find", ctx, mock.Anything, userID).Return(nil, errors.New("db down")).Once()
			},
			wantErr: model.ErrStoreUnavailable,
		},
		{
			name:        "異常系: 書き込み失敗はErrStoreUnavailable (ローカル適用しない)",
			solvedDelta: 1,
			setupMock: func(m *mocks.StreakRepository, n *mocks.ProgressNotifier) {
				m.On("Find", ctx, mock.Anything, userID).Return(nil, model.ErrNotFound).Once()
				m.On("Upsert", ctx, mock.Anything, mock.AnythingOfType("*model.UserStreakSummary")).
					Return(errors.New("db down")).Once()
			},
			wantErr: model.ErrStoreUnavailable,
		},
		{
			name:        "正常系: 通知の失敗は操作を失敗させない",
			solvedDelta: 1,
			setupMock: func(m *mocks.StreakRepository, n *mocks.ProgressNotifier) {
				m.On("Find", ctx, mock.Anything, userID).Return(nil, model.ErrNotFound).Once()
				m.On("Upsert", ctx, mock.Anything, mock.AnythingOfType("*model.UserStreakSummary")).Return(nil).Once()
				n.On("Publish", ctx, mock.AnythingOfType("repository.ProgressChange")).
					Return(errors.New("redis down")).Once()
			},
			wantCurrent: 1,
			wantTotal:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBStreak(t)
			mockRepo := new(mocks.StreakRepository)
			mockNotifier := new(mocks.ProgressNotifier)
			tt.setupMock(mockRepo, mockNotifier)

			svc := &streakService{
				db:         db,
				streakRepo: mockRepo,
				notifier:   mockNotifier,
				cfg:        testConfig,
				now:        func() time.Time { return today },
			}

			got, err := svc.RecordActivity(ctx, userID, tt.solvedDelta)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.wantCurrent, got.CurrentStreak)
				assert.Equal(t, tt.wantTotal, got.TotalSolved)
			}
			mockRepo.AssertExpectations(t)
			mockNotifier.AssertExpectations(t)
		})
	}
}

// --- Test GetSummary / UpdateDailyGoal ---
func Test_streakService_GetSummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	db := setupTestDBStreak(t)
	testConfig := &config.Config{App: config.AppConfig{DefaultDailyGoal: 2}}

	t.Run("正常系: サマリ行が無ければデフォルト値を返す", func(t *testing.T) {
		mockRepo := new(mocks.StreakRepository)
		mockRepo.On("Find", ctx, mock.Anything, userID).Return(nil, model.ErrNotFound).Once()

		svc := NewStreakService(db, mockRepo, repository.NewNoopNotifier(), testConfig)
		got, err := svc.GetSummary(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, 0, got.CurrentStreak)
		assert.Equal(t, 2, got.DailyGoal)
		assert.Nil(t, got.LastActivityDate)
		mockRepo.AssertExpectations(t)
	})

	t.Run("異常系: ストア障害はErrStoreUnavailable", func(t *testing.T) {
		mockRepo := new(mocks.StreakRepository)
		mockRepo.On("Find", ctx, mock.Anything, userID).Return(nil, errors.New("db down")).Once()

		svc := NewStreakService(db, mockRepo, repository.NewNoopNotifier(), testConfig)
		_, err := svc.GetSummary(ctx, userID)

		assert.ErrorIs(t, err, model.ErrStoreUnavailable)
		mockRepo.AssertExpectations(t)
	})
}

func Test_streakService_UpdateDailyGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	testConfig := &config.Config{App: config.AppConfig{DefaultDailyGoal: 1}}

	t.Run("正常系: 目標を更新する", func(t *testing.T) {
		db := setupTestDBStreak(t)
		mockRepo := new(mocks.StreakRepository)
		existing := &model.UserStreakSummary{UserID: userID, DailyGoal: 1, CurrentStreak: 3}
		mockRepo.On("Find", ctx, mock.Anything, userID).Return(existing, nil).Once()
		mockRepo.On("Upsert", ctx, mock.Anything, mock.MatchedBy(func(s *model.UserStreakSummary) bool {
			return s.DailyGoal == 5 && s.CurrentStreak == 3
		})).Return(nil).Once()

		svc := NewStreakService(db, mockRepo, repository.NewNoopNotifier(), testConfig)
		got, err := svc.UpdateDailyGoal(ctx, userID, 5)

		require.NoError(t, err)
		assert.Equal(t, 5, got.DailyGoal)
		mockRepo.AssertExpectations(t)
	})

	t.Run("異常系: 0以下の目標は拒否", func(t *testing.T) {
		db := setupTestDBStreak(t)
		mockRepo := new(mocks.StreakRepository)

		svc := NewStreakService(db, mockRepo, repository.NewNoopNotifier(), testConfig)
		_, err := svc.UpdateDailyGoal(ctx, userID, 0)

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "Upsert")
	})
}
