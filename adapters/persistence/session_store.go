package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/folioforge/folioforge/internal/editor"
	"github.com/folioforge/folioforge/pkg/apperror"
)

// Abandoned sessions expire on their own; every save renews the clock.
const sessionTTL = 24 * time.Hour

type redisSessionStore struct {
	rdb *redis.Client
}

// NewRedisSessionStore keeps one serialized edit session per owner, so a
// half-finished portfolio survives restarts and load-balanced instances.
func NewRedisSessionStore(rdb *redis.Client) editor.Store {
	return &redisSessionStore{rdb: rdb}
}

func sessionKey(ownerID uuid.UUID) string {
	return "editor:session:" + ownerID.String()
}

func (s *redisSessionStore) Load(ctx context.Context, ownerID uuid.UUID) (*editor.Session, error) {
	data, err := s.rdb.Get(ctx, sessionKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperror.NewNotFound("editor session", ownerID.String())
		}
		return nil, apperror.NewInternal("failed to load editor session", err)
	}

	sess := &editor.Session{}
	if err := json.Unmarshal(data, sess); err != nil {
		return nil, apperror.NewInternal("failed to decode editor session", err)
	}
	return sess, nil
}

func (s *redisSessionStore) Save(ctx context.Context, sess *editor.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return apperror.NewInternal("failed to encode editor session", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(sess.OwnerID), data, sessionTTL).Err(); err != nil {
		return apperror.NewInternal("failed to save editor session", err)
	}
	return nil
}

func (s *redisSessionStore) Delete(ctx context.Context, ownerID uuid.UUID) error {
	if err := s.rdb.Del(ctx, sessionKey(ownerID)).Err(); err != nil {
		return apperror.NewInternal("failed to delete editor session", err)
	}
	return nil
}
