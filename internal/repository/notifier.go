//go:generate mockery --name ProgressNotifier --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"codetrack/internal/config"
	"codetrack/internal/middleware"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ProgressChange は取り組みイベント・サマリ行の変更通知です。
// 購読側は通知を受けたら該当の集計を再実行します (差分計算は行わない)。
type ProgressChange struct {
	Table  string    `json:"table"` // "attempt_events" または "user_streak_summaries"
	UserID uuid.UUID `json:"user_id"`
	At     time.Time `json:"at"`
}

// ProgressNotifier は進捗ストアの変更をプッシュ通知するためのインターフェースです。
// この機能はオプションであり、無効でもポーリングに退化するだけで正しさは変わりません。
type ProgressNotifier interface {
	Publish(ctx context.Context, change ProgressChange) error
	// Subscribe は指定ユーザーの変更通知チャネルを返します。
	// 返り値の関数で購読を解除します。
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan ProgressChange, func(), error)
}

type redisNotifier struct {
	rdb *goredis.Client
}

// NewRedisNotifier はRedis pub/subベースの通知チャネルを初期化します。
func NewRedisNotifier(cfg *config.RedisConfig) (ProgressNotifier, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisNotifier{rdb: rdb}, nil
}

func channelName(userID uuid.UUID) string {
	return "codetrack:changes:" + userID.String()
}

func (n *redisNotifier) Publish(ctx context.Context, change ProgressChange) error {
	raw, err := json.Marshal(change)
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, channelName(change.UserID), raw).Err()
}

func (n *redisNotifier) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan ProgressChange, func(), error) {
	sub := n.rdb.Subscribe(ctx, channelName(userID))

	// 購読が実際に開始されたことを確認する
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, nil, fmt.Errorf("redis subscribe: %w", err)
	}

	out := make(chan ProgressChange)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var change ProgressChange
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				middleware.GetLogger(ctx).Warn("Dropping malformed progress change notification", "error", err)
				continue
			}
			select {
			case out <- change:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() {
		sub.Close()
	}
	return out, cancel, nil
}

// noopNotifier は通知機能が無効な場合の実装です。Publishは何もしません。
type noopNotifier struct{}

func NewNoopNotifier() ProgressNotifier {
	return &noopNotifier{}
}

func (n *noopNotifier) Publish(ctx context.Context, change ProgressChange) error {
	return nil
}

func (n *noopNotifier) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan ProgressChange, func(), error) {
	slog.Debug("Progress notifications disabled, subscription is a no-op", "user_id", userID.String())
	ch := make(chan ProgressChange)
	cancel := func() { close(ch) }
	return ch, cancel, nil
}
