package storage

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const selectionKeyPrefix = "resort:selection:"

func NewRedisClient(redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		return redis.NewClient(opts), nil
	}
	return redis.NewClient(&redis.Options{
		Addr: redisURL,
		DB:   0,
	}), nil
}

// RedisSelectionStore keeps each session's selection in a sorted set scored by
// the time the room was added, so selection order survives round trips.
type RedisSelectionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSelectionStore(client *redis.Client, ttl time.Duration) *RedisSelectionStore {
	log.Println("🔧 Room selections stored in Redis")
	return &RedisSelectionStore{Client: client, TTL: ttl}
}

func (r *RedisSelectionStore) key(session string) string {
	return selectionKeyPrefix + session
}

func (r *RedisSelectionStore) touch(ctx context.Context, session string) error {
	if r.TTL <= 0 {
		return nil
	}
	return r.Client.Expire(ctx, r.key(session), r.TTL).Err()
}

func (r *RedisSelectionStore) Toggle(ctx context.Context, session string, roomID uint) (bool, error) {
	member := strconv.FormatUint(uint64(roomID), 10)
	removed, err := r.Client.ZRem(ctx, r.key(session), member).Result()
	if err != nil {
		return false, err
	}
	if removed > 0 {
		return false, r.touch(ctx, session)
	}
	if err := r.add(ctx, session, roomID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisSelectionStore) add(ctx context.Context, session string, roomID uint) error {
	member := strconv.FormatUint(uint64(roomID), 10)
	z := &redis.Z{Score: float64(time.Now().UnixNano()), Member: member}
	if err := r.Client.ZAddNX(ctx, r.key(session), z).Err(); err != nil {
		return err
	}
	return r.touch(ctx, session)
}

func (r *RedisSelectionStore) Remove(ctx context.Context, session string, roomIDs ...uint) error {
	if len(roomIDs) == 0 {
		return nil
	}
	members := make([]interface{}, 0, len(roomIDs))
	for _, id := range roomIDs {
		members = append(members, strconv.FormatUint(uint64(id), 10))
	}
	return r.Client.ZRem(ctx, r.key(session), members...).Err()
}

func (r *RedisSelectionStore) Members(ctx context.Context, session string) ([]uint, error) {
	zs, err := r.Client.ZRangeWithScores(ctx, r.key(session), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(zs))
	scores := make(map[uint]float64, len(zs))
	for _, z := range zs {
		s, ok := z.Member.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			log.Printf("⚠️ skipping bad selection member %q: %v", s, err)
			continue
		}
		ids = append(ids, uint(n))
		scores[uint(n)] = z.Score
	}
	return sortByAdded(ids, scores), nil
}

func (r *RedisSelectionStore) Clear(ctx context.Context, session string) error {
	return r.Client.Del(ctx, r.key(session)).Err()
}
