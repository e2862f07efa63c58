package repository

import (
	"context"
	"testing"

	"codetrack/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCatalog(t *testing.T, db *gorm.DB) (arrays, trees *model.Topic, easy, medium, treeEasy *model.Problem) {
	t.Helper()
	arrays = &model.Topic{TopicID: uuid.New(), Name: "Arrays & Hashing", OrderIndex: 0}
	trees = &model.Topic{TopicID: uuid.New(), Name: "Trees", OrderIndex: 1}
	require.NoError(t, db.Create([]*model.Topic{arrays, trees}).Error)

	easy = &model.Problem{ProblemID: uuid.New(), TopicID: arrays.TopicID, Title: "Two Sum", Difficulty: model.DifficultyEasy}
	medium = &model.Problem{ProblemID: uuid.New(), TopicID: arrays.TopicID, Title: "Group Anagrams", Difficulty: model.DifficultyMedium}
	treeEasy = &model.Problem{ProblemID: uuid.New(), TopicID: trees.TopicID, Title: "Invert Binary Tree", Difficulty: model.DifficultyEasy}
	require.NoError(t, db.Create([]*model.Problem{easy, medium, treeEasy}).Error)
	return
}

func Test_gormCatalogRepository_ListTopics(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCatalogRepository()
	db := setupTestDB(t, &model.Topic{}, &model.Problem{})
	seedCatalog(t, db)

	topics, err := repo.ListTopics(ctx, db)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	// order_index の昇順 = カタログ順
	assert.Equal(t, "Arrays & Hashing", topics[0].Name)
	assert.Equal(t, "Trees", topics[1].Name)
}

func Test_gormCatalogRepository_ListProblems(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCatalogRepository()
	db := setupTestDB(t, &model.Topic{}, &model.Problem{})
	arrays, _, _, _, _ := seedCatalog(t, db)

	t.Run("正常系: フィルタなしは全件", func(t *testing.T) {
		got, err := repo.ListProblems(ctx, db, model.ProblemFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("正常系: トピックで絞り込める", func(t *testing.T) {
		got, err := repo.ListProblems(ctx, db, model.ProblemFilter{TopicID: &arrays.TopicID})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, p := range got {
			assert.Equal(t, arrays.TopicID, p.TopicID)
		}
	})

	t.Run("正常系: 難易度で絞り込める", func(t *testing.T) {
		d := model.DifficultyEasy
		got, err := repo.ListProblems(ctx, db, model.ProblemFilter{Difficulty: &d})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("正常系: トピック×難易度の複合フィルタ", func(t *testing.T) {
		d := model.DifficultyMedium
		got, err := repo.ListProblems(ctx, db, model.ProblemFilter{TopicID: &arrays.TopicID, Difficulty: &d})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Group Anagrams", got[0].Title)
	})
}

func Test_gormCatalogRepository_FindProblemByID(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCatalogRepository()
	db := setupTestDB(t, &model.Topic{}, &model.Problem{})
	_, _, easy, _, _ := seedCatalog(t, db)

	t.Run("正常系: IDで取得できる", func(t *testing.T) {
		got, err := repo.FindProblemByID(ctx, db, easy.ProblemID)
		require.NoError(t, err)
		assert.Equal(t, "Two Sum", got.Title)
	})

	t.Run("異常系: 存在しないIDはErrNotFound", func(t *testing.T) {
		got, err := repo.FindProblemByID(ctx, db, uuid.New())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
