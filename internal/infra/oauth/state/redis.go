package state

import (
	"context"
	"encoding/json"
	"time"

	"bid4service/internal/domain/entity"
	domainerrors "bid4service/internal/domain/errors"
	"bid4service/internal/errors"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "oauth:state:"

// RedisStore keeps correlation state in Redis so any instance can consume a
// token issued by another. Single-use semantics come from GETDEL; expiry from
// the key TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds the store on an existing client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Issue mints a token and stores the correlation state under it with the
// configured TTL.
func (s *RedisStore) Issue(ctx context.Context, provider entity.ProviderType, returnURL string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(entity.CorrelationState{
		Provider:  provider,
		ReturnURL: returnURL,
		IssuedAt:  time.Now(),
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal correlation state")
	}

	if err := s.client.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "store correlation state")
	}

	return token, nil
}

// Consume atomically removes and returns the state. GETDEL guarantees that of
// two concurrent callbacks carrying the same token exactly one succeeds.
func (s *RedisStore) Consume(ctx context.Context, token string) (*entity.CorrelationState, error) {
	payload, err := s.client.GetDel(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerrors.ErrInvalidState
		}

		return nil, errors.Wrap(err, "consume correlation state")
	}

	state := &entity.CorrelationState{}
	if err := json.Unmarshal([]byte(payload), state); err != nil {
		return nil, errors.Wrap(err, "unmarshal correlation state")
	}

	return state, nil
}
