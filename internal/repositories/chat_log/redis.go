package chatlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/godbound-api/internal/errors"
	"github.com/KirkDiggler/godbound-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/godbound-api/internal/redis"
)

const (
	// Key pattern: chat_log:{subject_id}
	logKeyPrefix = "chat_log:"
	defaultTTL   = 24 * time.Hour

	errMessageNil     = "message cannot be nil"
	errSubjectIDEmpty = "subject ID cannot be empty"
	errMessageIDEmpty = "message ID cannot be empty"
	errNegativeLimit  = "limit cannot be negative"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL is refreshed on every append; zero means 24 hours
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for chat logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append pushes the message and refreshes the log TTL in one transaction
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	msg := input.Message
	if msg == nil {
		return nil, errors.InvalidArgument(errMessageNil)
	}
	if msg.SubjectID == "" {
		return nil, errors.InvalidArgument(errSubjectIDEmpty)
	}
	if msg.ID == "" {
		return nil, errors.InvalidArgument(errMessageIDEmpty)
	}

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = r.clock.Now()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal message")
	}

	key := logKeyPrefix + msg.SubjectID
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append message to Redis")
	}

	return &AppendOutput{Message: msg}, nil
}

// List reads the subject's log, optionally only the tail
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.SubjectID == "" {
		return nil, errors.InvalidArgument(errSubjectIDEmpty)
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument(errNegativeLimit)
	}

	start := int64(0)
	if input.Limit > 0 {
		start = -int64(input.Limit)
	}

	raw, err := r.client.LRange(ctx, logKeyPrefix+input.SubjectID, start, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read messages from Redis")
	}

	messages := make([]*Message, 0, len(raw))
	for _, entry := range raw {
		var msg Message
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal message")
		}
		messages = append(messages, &msg)
	}

	return &ListOutput{Messages: messages}, nil
}

// Delete clears the subject's log
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SubjectID == "" {
		return nil, errors.InvalidArgument(errSubjectIDEmpty)
	}

	key := logKeyPrefix + input.SubjectID
	pipe := r.client.TxPipeline()
	count := pipe.LLen(ctx, key)
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete messages from Redis")
	}

	return &DeleteOutput{MessagesDeleted: int(count.Val())}, nil
}
