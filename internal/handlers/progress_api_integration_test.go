//go:build integration

package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"codetrack/internal/config"
	"codetrack/internal/handlers"
	"codetrack/internal/middleware"
	"codetrack/internal/model"
	"codetrack/internal/repository"
	"codetrack/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDB *gorm.DB
var testLogger *slog.Logger

func TestMain(m *testing.M) {
	testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(testLogger)

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=codetrack_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	dsn := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=codetrack_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	if err = pool.Retry(func() error {
		var errRetry error
		testDB, errRetry = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if errRetry != nil {
			return errRetry
		}
		sqlDB, errRetry := testDB.DB()
		if errRetry != nil {
			return errRetry
		}
		return sqlDB.Ping()
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource: %s", pErr)
		}
		log.Fatalf("Could not connect to PostgreSQL container: %s", err)
	}

	if err := repository.Migrate(testDB); err != nil {
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(code)
}

func setupTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	require.NotNil(t, testDB, "TestDB should have been initialized in TestMain")

	cfg := &config.Config{
		App: config.AppConfig{
			RecommendationLimit: 3,
			WeakTopicCount:      2,
			ProblemsPerTopic:    2,
			DefaultDailyGoal:    1,
			ReminderHour:        20,
		},
	}

	notifier := repository.NewNoopNotifier()
	streakRepo := repository.NewGormStreakRepository()
	attemptRepo := repository.NewGormAttemptRepository()
	catalogRepo := repository.NewGormCatalogRepository()

	streakSvc := service.NewStreakService(testDB, streakRepo, notifier, cfg)
	analyticsSvc := service.NewAnalyticsService(testDB, attemptRepo, catalogRepo, streakRepo)
	attemptSvc := service.NewAttemptService(testDB, attemptRepo, catalogRepo, streakSvc, notifier)
	recommendSvc := service.NewRecommendationService(testDB, attemptRepo, catalogRepo, analyticsSvc, cfg)

	attemptHandler := handlers.NewAttemptHandler(attemptSvc, testLogger)
	progressHandler := handlers.NewProgressHandler(streakSvc, analyticsSvc, testLogger)
	recommendHandler := handlers.NewRecommendationHandler(recommendSvc, testLogger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(5 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.DevUserContextMiddleware)
			r.Post("/attempts", attemptHandler.PostAttempt)
			r.Get("/attempts", attemptHandler.GetAttempts)
			r.Get("/progress/streak", progressHandler.GetStreak)
			r.Get("/progress/topics", progressHandler.GetTopicBreakdown)
			r.Get("/recommendations", recommendHandler.GetRecommendations)
		})
	})
	return r
}

func seedProblem(t *testing.T, topicName, title string, difficulty model.Difficulty) *model.Problem {
	t.Helper()
	topic := &model.Topic{TopicID: uuid.New(), Name: topicName}
	require.NoError(t, testDB.Create(topic).Error)
	problem := &model.Problem{ProblemID: uuid.New(), TopicID: topic.TopicID, Title: title, Difficulty: difficulty}
	require.NoError(t, testDB.Create(problem).Error)
	return problem
}

func doJSON(t *testing.T, server *httptest.Server, method, path string, userID uuid.UUID, body interface{}) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID.String())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out.Bytes()
}

// 解答の記録からストリーク・トピック集計までの一連の流れを実DBで検証する
func TestProgressAPI_SolveFlow(t *testing.T) {
	router := setupTestRouter(t)
	server := httptest.NewServer(router)
	defer server.Close()

	userID := uuid.New()
	problem := seedProblem(t, fmt.Sprintf("Arrays-%s", uuid.NewString()[:8]), "Two Sum", model.DifficultyEasy)

	// 1. 解答を記録する
	code, body := doJSON(t, server, http.MethodPost, "/api/v1/attempts", userID, map[string]string{
		"problem_id": problem.ProblemID.String(),
		"status":     "solved",
	})
	require.Equal(t, http.StatusCreated, code, "body: %s", body)

	var event model.AttemptEvent
	require.NoError(t, json.Unmarshal(body, &event))
	assert.Equal(t, model.StatusSolved, event.Status)
	require.NotNil(t, event.SolvedAt)

	// 2. ストリークが開始されている
	code, body = doJSON(t, server, http.MethodGet, "/api/v1/progress/streak", userID, nil)
	require.Equal(t, http.StatusOK, code)

	var summary model.UserStreakSummary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, 1, summary.CurrentStreak)
	assert.Equal(t, 1, summary.TotalSolved)

	// 3. トピック別集計に反映されている
	code, body = doJSON(t, server, http.MethodGet, "/api/v1/progress/topics", userID, nil)
	require.Equal(t, http.StatusOK, code)

	var counts []model.TopicCount
	require.NoError(t, json.Unmarshal(body, &counts))
	found := false
	for _, c := range counts {
		if c.TopicID == problem.TopicID {
			found = true
			assert.Equal(t, 1, c.Count)
		}
	}
	assert.True(t, found, "solved topic should appear in breakdown")

	// 4. 同じ問題の二重記録はステータス後退でなければ冪等
	code, _ = doJSON(t, server, http.MethodPost, "/api/v1/attempts", userID, map[string]string{
		"problem_id": problem.ProblemID.String(),
		"status":     "solved",
	})
	require.Equal(t, http.StatusCreated, code)

	code, body = doJSON(t, server, http.MethodGet, "/api/v1/progress/streak", userID, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, 1, summary.CurrentStreak, "同日の再解答でストリークは増えない")

	// 5. 解答の後退 (solved → attempted) は409
	code, _ = doJSON(t, server, http.MethodPost, "/api/v1/attempts", userID, map[string]string{
		"problem_id": problem.ProblemID.String(),
		"status":     "attempted",
	})
	assert.Equal(t, http.StatusConflict, code)
}

func TestProgressAPI_Recommendations(t *testing.T) {
	router := setupTestRouter(t)
	server := httptest.NewServer(router)
	defer server.Close()

	userID := uuid.New()
	solved := seedProblem(t, fmt.Sprintf("Trees-%s", uuid.NewString()[:8]), "Invert Binary Tree", model.DifficultyEasy)
	// 同トピックに未着手の問題を足しておく
	unsolved := &model.Problem{ProblemID: uuid.New(), TopicID: solved.TopicID, Title: "Maximum Depth", Difficulty: model.DifficultyEasy}
	require.NoError(t, testDB.Create(unsolved).Error)

	code, _ := doJSON(t, server, http.MethodPost, "/api/v1/attempts", userID, map[string]string{
		"problem_id": solved.ProblemID.String(),
		"status":     "solved",
	})
	require.Equal(t, http.StatusCreated, code)

	code, body := doJSON(t, server, http.MethodGet, "/api/v1/recommendations", userID, nil)
	require.Equal(t, http.StatusOK, code)

	var recs []model.RecommendedProblem
	require.NoError(t, json.Unmarshal(body, &recs))
	require.NotEmpty(t, recs)
	for _, rec := range recs {
		assert.NotEqual(t, solved.ProblemID, rec.ProblemID, "解答済みの問題は推薦されない")
	}
}
