package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abhisek/quizbot/internal/quiz"
)

// DefaultResultLimit caps the Redis result list.
const DefaultResultLimit = 1000

// DefaultAttemptTTL is how long an attempt marker lives when sessions
// never expire.
const DefaultAttemptTTL = 30 * 24 * time.Hour

// appendResult pushes a result unless its attempt marker exists. The
// marker is only written after the push succeeds.
var appendResult = redis.NewScript(`
if redis.call("EXISTS", KEYS[2]) == 1 then
  return 0
end
redis.call("LPUSH", KEYS[1], ARGV[1])
redis.call("LTRIM", KEYS[1], 0, tonumber(ARGV[2]) - 1)
redis.call("SET", KEYS[2], "1", "PX", ARGV[3])
return 1
`)

// RedisOptions configures a Redis-backed store.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int

	// TTL expires idle sessions. Zero keeps them forever.
	TTL time.Duration

	// Prefix namespaces all keys. Defaults to "quizbot:".
	Prefix string

	// ResultLimit caps the number of results kept. Defaults to DefaultResultLimit.
	ResultLimit int

	// AttemptTTL expires the markers that dedupe results. Defaults to TTL,
	// or DefaultAttemptTTL when TTL is zero.
	AttemptTTL time.Duration
}

// Redis is a SessionRepo and ResultRepo backed by Redis. Sessions are JSON
// values under "<prefix>session:<key>"; results are a capped list, newest first.
type Redis struct {
	client *redis.Client
	opts   RedisOptions
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(opts RedisOptions) (*Redis, error) {
	if opts.Prefix == "" {
		opts.Prefix = "quizbot:"
	}
	if opts.ResultLimit <= 0 {
		opts.ResultLimit = DefaultResultLimit
	}
	if opts.AttemptTTL <= 0 {
		opts.AttemptTTL = opts.TTL
	}
	if opts.AttemptTTL <= 0 {
		opts.AttemptTTL = DefaultAttemptTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Redis{client: client, opts: opts}, nil
}

// Close closes the Redis client.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) sessionKey(key string) string {
	return r.opts.Prefix + "session:" + key
}

func (r *Redis) resultsKey() string {
	return r.opts.Prefix + "results"
}

func (r *Redis) attemptKey(attemptID string) string {
	return r.opts.Prefix + "attempt:" + attemptID
}

func (r *Redis) Load(ctx context.Context, key string) (*quiz.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return decodeSession(data)
}

func (r *Redis) Save(ctx context.Context, sess *quiz.Session) error {
	data, err := encodeSession(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, r.sessionKey(sess.Key), data, r.opts.TTL).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.sessionKey(key)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *Redis) AppendResult(ctx context.Context, res Result) error {
	if res.FinishedAt.IsZero() {
		res.FinishedAt = time.Now()
	}

	data, err := encodeResult(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	keys := []string{r.resultsKey(), r.attemptKey(res.AttemptID)}
	err = appendResult.Run(ctx, r.client, keys,
		data, r.opts.ResultLimit, r.opts.AttemptTTL.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("push result: %w", err)
	}
	return nil
}

func (r *Redis) RecentResults(ctx context.Context, limit int) ([]Result, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	items, err := r.client.LRange(ctx, r.resultsKey(), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	results := make([]Result, 0, len(items))
	for _, item := range items {
		res, err := decodeResult([]byte(item))
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
