package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "cafe:session:"

// Redis is a Store backed by a Redis instance, for running more than one
// server replica. Expiry is delegated to Redis via key TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(addr string, ttl time.Duration) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (r *Redis) Get(ctx context.Context, id string) (*State, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return NewState(), nil
	}
	if err != nil {
		return nil, err
	}
	st := NewState()
	if err := json.Unmarshal(data, st); err != nil {
		return NewState(), nil
	}
	if st.Cart == nil {
		st.Cart = map[string]int{}
	}
	return st, nil
}

func (r *Redis) Put(ctx context.Context, id string, st *State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisKeyPrefix+id, data, r.ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, redisKeyPrefix+id).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
