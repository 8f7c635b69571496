package queue

import (
	"context"
	"fmt"

	"github.com/redis/rueidis"
)

// RedisTokenManager keeps admission tokens as elements of a Redis list.
// LPOP takes a token and RPUSH returns it.
type RedisTokenManager struct {
	client rueidis.Client
	key    string
}

func NewRedisTokenManager(client rueidis.Client, key string) *RedisTokenManager {
	return &RedisTokenManager{
		client: client,
		key:    key,
	}
}

func (r *RedisTokenManager) AcquireToken(ctx context.Context) error {
	err := r.client.Do(ctx, r.client.B().Lpop().Key(r.key).Build()).Error()
	if rueidis.IsRedisNil(err) {
		return ErrNoTokenAvailable
	}
	if err != nil {
		return fmt.Errorf("acquire token from %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisTokenManager) ReleaseToken(ctx context.Context) error {
	err := r.client.Do(ctx, r.client.B().Rpush().Key(r.key).Element("1").Build()).Error()
	if err != nil {
		return fmt.Errorf("release token to %s: %w", r.key, err)
	}
	return nil
}

// InitializeTokens replaces the list with count tokens in one pipeline.
func (r *RedisTokenManager) InitializeTokens(ctx context.Context, count int) error {
	cmds := make(rueidis.Commands, 0, 2)
	cmds = append(cmds, r.client.B().Del().Key(r.key).Build())

	if count > 0 {
		elements := make([]string, count)
		for i := range elements {
			elements[i] = "1"
		}
		cmds = append(cmds, r.client.B().Rpush().Key(r.key).Element(elements...).Build())
	}

	for _, resp := range r.client.DoMulti(ctx, cmds...) {
		if err := resp.Error(); err != nil {
			return fmt.Errorf("initialize tokens on %s: %w", r.key, err)
		}
	}
	return nil
}
