package repository

import (
	"context"
	"testing"
	"time"

	"codetrack/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテスト専用のインメモリSQLite DBを用意します
func setupTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "テスト用DBのオープンに失敗")
	require.NoError(t, db.AutoMigrate(models...), "テスト用DBのマイグレーションに失敗")
	return db
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d.UTC()
}

func Test_gormStreakRepository_FindAndUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewGormStreakRepository()

	t.Run("正常系: 新規挿入してから取得できる", func(t *testing.T) {
		db := setupTestDB(t, &model.UserStreakSummary{})
		userID := uuid.New()
		day := mustDay(t, "2026-08-10")

		err := repo.Upsert(ctx, db, &model.UserStreakSummary{
			UserID:           userID,
			TotalSolved:      3,
			CurrentStreak:    2,
			LongestStreak:    5,
			DailyGoal:        1,
			LastActivityDate: &day,
		})
		require.NoError(t, err)

		got, err := repo.Find(ctx, db, userID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.TotalSolved)
		assert.Equal(t, 2, got.CurrentStreak)
		assert.Equal(t, 5, got.LongestStreak)
		require.NotNil(t, got.LastActivityDate)
		assert.True(t, got.LastActivityDate.Equal(day))
	})

	t.Run("正常系: 同一ユーザーの再Upsertは更新になる", func(t *testing.T) {
		db := setupTestDB(t, &model.UserStreakSummary{})
		userID := uuid.New()
		day1 := mustDay(t, "2026-08-10")
		day2 := mustDay(t, "2026-08-11")

		require.NoError(t, repo.Upsert(ctx, db, &model.UserStreakSummary{
			UserID: userID, TotalSolved: 1, CurrentStreak: 1, LongestStreak: 1, DailyGoal: 1, LastActivityDate: &day1,
		}))
		require.NoError(t, repo.Upsert(ctx, db, &model.UserStreakSummary{
			UserID: userID, TotalSolved: 2, CurrentStreak: 2, LongestStreak: 2, DailyGoal: 3, LastActivityDate: &day2,
		}))

		var count int64
		require.NoError(t, db.Model(&model.UserStreakSummary{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "行は1ユーザー1行のまま")

		got, err := repo.Find(ctx, db, userID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.CurrentStreak)
		assert.Equal(t, 3, got.DailyGoal)
		assert.True(t, got.LastActivityDate.Equal(day2))
	})

	t.Run("異常系: 行が無ければErrNotFound", func(t *testing.T) {
		db := setupTestDB(t, &model.UserStreakSummary{})

		got, err := repo.Find(ctx, db, uuid.New())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_gormStreakRepository_FindAtRisk(t *testing.T) {
	ctx := context.Background()
	repo := NewGormStreakRepository()
	db := setupTestDB(t, &model.UserStreakSummary{})

	yesterday := mustDay(t, "2026-08-10")
	today := mustDay(t, "2026-08-11")

	atRisk := uuid.New()
	require.NoError(t, repo.Upsert(ctx, db, &model.UserStreakSummary{
		UserID: atRisk, CurrentStreak: 4, LongestStreak: 4, DailyGoal: 1, LastActivityDate: &yesterday,
	}))
	// 今日すでに活動済みのユーザーは対象外
	require.NoError(t, repo.Upsert(ctx, db, &model.UserStreakSummary{
		UserID: uuid.New(), CurrentStreak: 2, LongestStreak: 2, DailyGoal: 1, LastActivityDate: &today,
	}))
	// ストリークが途切れているユーザーも対象外
	require.NoError(t, repo.Upsert(ctx, db, &model.UserStreakSummary{
		UserID: uuid.New(), CurrentStreak: 0, LongestStreak: 7, DailyGoal: 1, LastActivityDate: &yesterday,
	}))

	got, err := repo.FindAtRisk(ctx, db, yesterday)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, atRisk, got[0].UserID)
	assert.Equal(t, 4, got[0].CurrentStreak)
}
