package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"fitness-bot/internal/dialog"
	"fitness-bot/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "fitness-bot:session:"

// RedisStore keeps each chat as a hash (kind, uid, cat) that expires after the
// idle timeout. Every Load and Save pushes the expiry forward.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore connects using a URL such as redis://:pass@host:6379/0.
func NewRedisStore(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("session/redis: parse url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("session/redis: ping: %w", err)
	}

	return &RedisStore{rdb: rdb, ttl: ttl}, nil
}

func key(chatID int64) string { return keyPrefix + strconv.FormatInt(chatID, 10) }

func (r *RedisStore) Load(ctx context.Context, chatID int64) (dialog.State, error) {
	k := key(chatID)

	pipe := r.rdb.TxPipeline()
	get := pipe.HGetAll(ctx, k)
	pipe.Expire(ctx, k, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return dialog.Default(), fmt.Errorf("session/redis: load %d: %w", chatID, err)
	}

	m := get.Val()
	if len(m) == 0 {
		return dialog.Default(), nil
	}

	s := dialog.State{
		Kind:     dialog.Kind(m["kind"]),
		Category: models.TrainingCategory(m["cat"]),
	}
	if uid := m["uid"]; uid != "" {
		id, err := uuid.Parse(uid)
		if err != nil {
			return dialog.Default(), fmt.Errorf("session/redis: load %d: %w", chatID, err)
		}
		s.UserID = id
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, chatID int64, s dialog.State) error {
	k := key(chatID)
	uid := ""
	if s.UserID != uuid.Nil {
		uid = s.UserID.String()
	}

	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, k)
	pipe.HSet(ctx, k, map[string]string{
		"kind": string(s.Kind),
		"uid":  uid,
		"cat":  string(s.Category),
	})
	pipe.Expire(ctx, k, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session/redis: save %d: %w", chatID, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, chatID int64) error {
	if err := r.rdb.Del(ctx, key(chatID)).Err(); err != nil {
		return fmt.Errorf("session/redis: delete %d: %w", chatID, err)
	}
	return nil
}

func (r *RedisStore) Close() error { return r.rdb.Close() }
