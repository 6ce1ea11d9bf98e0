package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisWriteTimeout = 2 * time.Second

// Redis publishes application-state changes to a shared Redis so a separate
// UI process can react: the login modal flag is a plain key and error
// messages go out on a pub/sub channel.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", addr, err)
	}
	log.Printf("INFO: connected to Redis at %s", addr)
	return rdb, nil
}

func NewRedis(rdb *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "oj"
	}
	return &Redis{rdb: rdb, prefix: prefix}
}

func (r *Redis) ModalKey() string     { return r.prefix + ":modal" }
func (r *Redis) ErrorsChannel() string { return r.prefix + ":errors" }

func (r *Redis) Notify(message string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisWriteTimeout)
	defer cancel()
	if err := r.rdb.Publish(ctx, r.ErrorsChannel(), message).Err(); err != nil {
		log.Printf("ERROR: failed to publish error message to %s: %v", r.ErrorsChannel(), err)
	}
}

// RequestLogin sets the modal key; repeated calls write the same value.
func (r *Redis) RequestLogin() {
	ctx, cancel := context.WithTimeout(context.Background(), redisWriteTimeout)
	defer cancel()
	if err := r.rdb.Set(ctx, r.ModalKey(), ModalLogin, 0).Err(); err != nil {
		log.Printf("ERROR: failed to set %s: %v", r.ModalKey(), err)
	}
}

// Modal reads back the modal mode; "" when no modal is requested.
func (r *Redis) Modal(ctx context.Context) (string, error) {
	mode, err := r.rdb.Get(ctx, r.ModalKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return mode, err
}

// CloseModal clears the modal key.
func (r *Redis) CloseModal(ctx context.Context) error {
	return r.rdb.Del(ctx, r.ModalKey()).Err()
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
