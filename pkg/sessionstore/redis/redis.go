// Package redis implements sessionstore.Store on Redis.
//
// Each session is a JSON value under session:<id> that expires after the
// configured TTL. user_sessions:<user id> is a set indexing the sessions of a
// user; members whose session expired are pruned lazily.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"estate/internal/config"
	"estate/pkg/domain"
	"estate/pkg/sessionstore"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Options configures the Redis session store.
type Options struct {
	Addr            string
	Password        string
	DB              int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	// TTL is the lifetime of a session.
	TTL time.Duration
	// MaxTxRetries bounds optimistic transaction retries in Update.
	MaxTxRetries int
}

// NewOptions reads the redis and session sections of cfg.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:            cfg.Redis.Addr,
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		TTL:             cfg.Session.TTL,
		MaxTxRetries:    cfg.Redis.MaxTxRetries,
	}
}

// Store is a Redis backed sessionstore.Store.
type Store struct {
	rdb          *redis.Client
	ttl          time.Duration
	maxTxRetries int
}

var _ sessionstore.Store = (*Store)(nil)

// New connects to Redis and verifies the connection with a PING.
func New(ctx context.Context, options Options) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            options.Addr,
		Password:        options.Password,
		DB:              options.DB,
		MinRetryBackoff: options.MinRetryBackoff,
		MaxRetryBackoff: options.MaxRetryBackoff,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	maxTxRetries := options.MaxTxRetries
	if maxTxRetries <= 0 {
		maxTxRetries = 1
	}

	return &Store{
		rdb:          rdb,
		ttl:          options.TTL,
		maxTxRetries: maxTxRetries,
	}, nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	if err := s.rdb.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}

func sessionKey(id domain.SessionID) string {
	return "session:" + id.String()
}

func userSessionsKey(id domain.UserID) string {
	return "user_sessions:" + id.String()
}

func (s *Store) Create(ctx context.Context, session domain.Session) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(session.ID), sessionstore.Encode(session), s.ttl)
		pipe.SAdd(ctx, userSessionsKey(session.UserID), session.ID.String())
		pipe.Expire(ctx, userSessionsKey(session.UserID), s.ttl)

		return nil
	})
	if err != nil {
		return fmt.Errorf("could not store session in redis: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	data, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not get session from redis: %w", err)
	}

	session, err := sessionstore.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("could not decode session %s: %w", id, err)
	}

	return &session, nil
}

// Update runs fn inside WATCH/MULTI/EXEC on the session key and retries when
// another writer touched the key in between.
func (s *Store) Update(ctx context.Context,
	id domain.SessionID,
	fn sessionstore.UpdateFunc) (*domain.Session, error) {
	key := sessionKey(id)

	var updated domain.Session
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return sessionstore.ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("could not get session from redis: %w", err)
		}

		session, err := sessionstore.Decode(data)
		if err != nil {
			return fmt.Errorf("could not decode session %s: %w", id, err)
		}
		if err := fn(&session); err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, sessionstore.Encode(session), redis.KeepTTL)

			return nil
		})
		if err != nil {
			return err //nolint: wrapcheck
		}
		updated = session

		return nil
	}

	for range s.maxTxRetries {
		err := s.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return &updated, nil
	}

	return nil, sessionstore.ErrTooManyConflicts
}

func (s *Store) Delete(ctx context.Context, id domain.SessionID) (bool, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}

	cmds, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(id))
		if session != nil {
			pipe.SRem(ctx, userSessionsKey(session.UserID), id.String())
		}

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("could not delete session from redis: %w", err)
	}

	deleted, _ := cmds[0].(*redis.IntCmd)

	return deleted != nil && deleted.Val() > 0, nil
}

func (s *Store) UserSessions(ctx context.Context, userID domain.UserID) ([]domain.SessionID, error) {
	members, err := s.rdb.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("could not list user sessions from redis: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}

	pipe := s.rdb.Pipeline()
	exists := make([]*redis.IntCmd, len(members))
	ids := make([]domain.SessionID, len(members))
	for i, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		ids[i] = domain.SessionID(id)
		exists[i] = pipe.Exists(ctx, sessionKey(ids[i]))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("could not check user sessions in redis: %w", err)
	}

	live := make([]domain.SessionID, 0, len(members))
	var stale []any
	for i, m := range members {
		if exists[i] == nil || exists[i].Val() == 0 {
			stale = append(stale, m)

			continue
		}
		live = append(live, ids[i])
	}
	if len(stale) > 0 {
		if err := s.rdb.SRem(ctx, userSessionsKey(userID), stale...).Err(); err != nil {
			return nil, fmt.Errorf("could not prune user sessions in redis: %w", err)
		}
	}

	return live, nil
}
