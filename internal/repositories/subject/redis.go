package subject

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
	"github.com/KirkDiggler/godbound-api/internal/errors"
	"github.com/KirkDiggler/godbound-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/godbound-api/internal/redis"
)

const (
	subjectKeyPrefix = "subject:"
	ownerIndexPrefix = "subject:owner:"

	errSubjectNil     = "subject cannot be nil"
	errSubjectIDEmpty = "subject ID cannot be empty"
	errOwnerIDEmpty   = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis subject repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed subject repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Subject == nil {
		return nil, errors.InvalidArgument(errSubjectNil)
	}
	if input.Subject.ID == "" {
		return nil, errors.InvalidArgument(errSubjectIDEmpty)
	}

	key := subjectKeyPrefix + input.Subject.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("subject with ID %s already exists", input.Subject.ID)
	}

	now := r.clock.Now().Unix()
	input.Subject.CreatedAt = now
	input.Subject.UpdatedAt = now

	data, err := json.Marshal(input.Subject)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal subject")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if input.Subject.OwnerID != "" {
		pipe.SAdd(ctx, ownerIndexPrefix+input.Subject.OwnerID, input.Subject.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create subject")
	}

	return &CreateOutput{Subject: input.Subject}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSubjectIDEmpty)
	}

	subject, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Subject: subject}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Subject == nil {
		return nil, errors.InvalidArgument(errSubjectNil)
	}
	if input.Subject.ID == "" {
		return nil, errors.InvalidArgument(errSubjectIDEmpty)
	}

	existing, err := r.load(ctx, input.Subject.ID)
	if err != nil {
		return nil, err
	}

	input.Subject.CreatedAt = existing.CreatedAt
	input.Subject.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Subject)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal subject")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, subjectKeyPrefix+input.Subject.ID, data, 0)

	if existing.OwnerID != input.Subject.OwnerID {
		if existing.OwnerID != "" {
			pipe.SRem(ctx, ownerIndexPrefix+existing.OwnerID, input.Subject.ID)
		}
		if input.Subject.OwnerID != "" {
			pipe.SAdd(ctx, ownerIndexPrefix+input.Subject.OwnerID, input.Subject.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update subject")
	}

	return &UpdateOutput{Subject: input.Subject}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSubjectIDEmpty)
	}

	existing, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, subjectKeyPrefix+input.ID)
	if existing.OwnerID != "" {
		pipe.SRem(ctx, ownerIndexPrefix+existing.OwnerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete subject")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get subjects from index %s", indexKey)
	}

	subjects := make([]*godbound.Subject, 0, len(ids))
	for _, id := range ids {
		subject, err := r.load(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "subject not found, cleaning up index",
					"subject_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get subject %s", id)
		}
		subjects = append(subjects, subject)
	}

	slog.DebugContext(ctx, "listed subjects by owner",
		"owner_id", input.OwnerID,
		"count", len(subjects))

	return &ListByOwnerOutput{Subjects: subjects}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*godbound.Subject, error) {
	result, err := r.client.Get(ctx, subjectKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("subject with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get subject")
	}

	var subject godbound.Subject
	if err := json.Unmarshal([]byte(result), &subject); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal subject")
	}

	return &subject, nil
}
