package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/schema"
	"github.com/redis/go-redis/v9"

	"github.com/g4brie11e/chatbot-backend/internal/conversation"
)

// transcript is the stored shape of an archived conversation: the raw turns
// plus a rendered text form for quick inspection.
type transcript struct {
	Messages []*schema.Message `json:"messages"`
	Text     string            `json:"text"`
}

// RedisArchive keeps transcripts of completed-lead conversations in Redis
// with a TTL, so a completed inquiry can be reviewed after the in-memory
// session is gone. Best effort: the engine fires and forgets.
type RedisArchive struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisArchive connects to the Redis at url and verifies the connection.
func NewRedisArchive(ctx context.Context, url string, ttl time.Duration) (*RedisArchive, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisArchive{client: client, ttl: ttl}, nil
}

// Archive stores the conversation transcript for sessionID.
func (a *RedisArchive) Archive(ctx context.Context, sessionID string, messages []*schema.Message) error {
	key := "transcript:" + sessionID
	data, err := sonic.Marshal(transcript{
		Messages: messages,
		Text:     conversation.Transcript(messages),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	return a.client.Set(ctx, key, data, a.ttl).Err()
}

// Load retrieves an archived transcript; redis.Nil maps to an empty one.
func (a *RedisArchive) Load(ctx context.Context, sessionID string) ([]*schema.Message, error) {
	key := "transcript:" + sessionID
	data, err := a.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return []*schema.Message{}, nil
		}
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}

	var t transcript
	if err := sonic.Unmarshal([]byte(data), &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transcript: %w", err)
	}
	return t.Messages, nil
}

// HealthCheck pings Redis.
func (a *RedisArchive) HealthCheck(ctx context.Context) error {
	return a.client.Ping(ctx).Err()
}
