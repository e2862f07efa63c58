// サンプルのトピック・問題カタログを投入するシーダー。
// 既存の同名トピック・同タイトル問題はスキップするので再実行できます。
package main

import (
	"errors"
	"log/slog"
	"os"

	"codetrack/internal/config"
	"codetrack/internal/model"
	"codetrack/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type seedProblem struct {
	Title      string
	Difficulty model.Difficulty
	Tags       string
}

type seedTopic struct {
	Name     string
	Problems []seedProblem
}

var catalog = []seedTopic{
	{
		Name: "Arrays & Hashing",
		Problems: []seedProblem{
			{"Two Sum", model.DifficultyEasy, "array,hash-map"},
			{"Contains Duplicate", model.DifficultyEasy, "array,hash-set"},
			{"Group Anagrams", model.DifficultyMedium, "array,hash-map,string"},
			{"Longest Consecutive Sequence", model.DifficultyMedium, "array,hash-set"},
		},
	},
	{
		Name: "Two Pointers",
		Problems: []seedProblem{
			{"Valid Palindrome", model.DifficultyEasy, "string,two-pointers"},
			{"Container With Most Water", model.DifficultyMedium, "array,two-pointers,greedy"},
			{"Trapping Rain Water", model.DifficultyHard, "array,two-pointers,stack"},
		},
	},
	{
		Name: "Binary Search",
		Problems: []seedProblem{
			{"Binary Search", model.DifficultyEasy, "array,binary-search"},
			{"Search in Rotated Sorted Array", model.DifficultyMedium, "array,binary-search"},
			{"Median of Two Sorted Arrays", model.DifficultyHard, "array,binary-search,divide-and-conquer"},
		},
	},
	{
		Name: "Linked List",
		Problems: []seedProblem{
			{"Reverse Linked List", model.DifficultyEasy, "linked-list"},
			{"Merge Two Sorted Lists", model.DifficultyEasy, "linked-list,recursion"},
			{"LRU Cache", model.DifficultyMedium, "linked-list,hash-map,design"},
			{"Merge K Sorted Lists", model.DifficultyHard, "linked-list,heap"},
		},
	},
	{
		Name: "Trees",
		Problems: []seedProblem{
			{"Invert Binary Tree", model.DifficultyEasy, "tree,dfs"},
			{"Binary Tree Level Order Traversal", model.DifficultyMedium, "tree,bfs"},
			{"Validate Binary Search Tree", model.DifficultyMedium, "tree,dfs,bst"},
			{"Binary Tree Maximum Path Sum", model.DifficultyHard, "tree,dfs,dp"},
		},
	},
	{
		Name: "Dynamic Programming",
		Problems: []seedProblem{
			{"Climbing Stairs", model.DifficultyEasy, "dp"},
			{"Coin Change", model.DifficultyMedium, "dp,bfs"},
			{"Longest Increasing Subsequence", model.DifficultyMedium, "dp,binary-search"},
			{"Edit Distance", model.DifficultyHard, "dp,string"},
		},
	},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	created := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		for i, st := range catalog {
			topic, err := ensureTopic(tx, st.Name, i)
			if err != nil {
				return err
			}
			for _, sp := range st.Problems {
				ok, err := ensureProblem(tx, topic.TopicID, sp)
				if err != nil {
					return err
				}
				if ok {
					created++
				}
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Seeding completed", slog.Int("topics", len(catalog)), slog.Int("problems_created", created))
}

func ensureTopic(tx *gorm.DB, name string, orderIndex int) (*model.Topic, error) {
	var topic model.Topic
	result := tx.Where("name = ?", name).First(&topic)
	if result.Error == nil {
		return &topic, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	topic = model.Topic{
		TopicID:    uuid.New(),
		Name:       name,
		OrderIndex: orderIndex,
	}
	if err := tx.Create(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func ensureProblem(tx *gorm.DB, topicID uuid.UUID, sp seedProblem) (bool, error) {
	var count int64
	if err := tx.Model(&model.Problem{}).
		Where("topic_id = ? AND title = ?", topicID, sp.Title).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	problem := model.Problem{
		ProblemID:  uuid.New(),
		TopicID:    topicID,
		Title:      sp.Title,
		Difficulty: sp.Difficulty,
		Tags:       sp.Tags,
	}
	if err := tx.Create(&problem).Error; err != nil {
		return false, err
	}
	return true, nil
}
