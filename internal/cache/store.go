package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bagdasarian/club-shop/internal/repository/postgres"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	notFoundMarker = "notfound"
	notFoundTTL    = time.Minute
	// maxListTTL ограничивает жизнь списка, если запись из чужого чтения
	// легла в Redis уже после сброса по AfterCommit
	maxListTTL = time.Minute
)

type lookup int

const (
	miss lookup = iota
	hit
	hitNotFound
)

// store - общая часть кэширующих репозиториев. Любая ошибка Redis
// логируется, и чтение продолжается из БД.
type store struct {
	redis *redis.Client
	ttl   time.Duration
	log   logrus.FieldLogger
}

// bypass: внутри транзакции кэш не читается и не заполняется
func (s *store) bypass(ctx context.Context) bool {
	return postgres.InTx(ctx)
}

func (s *store) load(ctx context.Context, key string, dst any) lookup {
	data, err := s.redis.Get(ctx, key).Bytes()

	switch {
	case err == nil:
		if string(data) == notFoundMarker {
			return hitNotFound
		}
		if err := json.Unmarshal(data, dst); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("failed to unmarshal cached value, reading from database")
			return miss
		}
		return hit

	case errors.Is(err, redis.Nil):
		return miss

	default:
		s.log.WithError(err).WithField("key", key).Warn("redis error, reading from database")
		return miss
	}
}

func (s *store) save(ctx context.Context, key string, value any) {
	s.saveWithTTL(ctx, key, value, s.ttl)
}

// saveList кэширует список на listTTL
func (s *store) saveList(ctx context.Context, key string, value any) {
	s.saveWithTTL(ctx, key, value, s.listTTL())
}

func (s *store) listTTL() time.Duration {
	return min(s.ttl, maxListTTL)
}

func (s *store) saveWithTTL(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to marshal value for cache")
		return
	}

	if err := s.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to cache value")
	}
}

// saveIndexed запоминает key в индексе, чтобы списки можно было сбросить разом
func (s *store) saveIndexed(ctx context.Context, index, key string, value any) {
	s.saveList(ctx, key, value)

	if err := s.redis.SAdd(ctx, index, key).Err(); err != nil {
		s.log.WithError(err).WithField("key", index).Warn("failed to update cache index")
	}
}

func (s *store) markNotFound(ctx context.Context, key string) {
	if err := s.redis.Set(ctx, key, notFoundMarker, notFoundTTL).Err(); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to cache notfound")
	}
}

// invalidate удаляет ключи и все ключи из индексов после фиксации транзакции
func (s *store) invalidate(ctx context.Context, indexes []string, keys ...string) {
	ctx = context.WithoutCancel(ctx)

	postgres.AfterCommit(ctx, func() {
		for _, index := range indexes {
			members, err := s.redis.SMembers(ctx, index).Result()
			if err != nil {
				s.log.WithError(err).WithField("key", index).Warn("failed to read cache index")
				continue
			}
			keys = append(keys, members...)
			keys = append(keys, index)
		}

		if len(keys) == 0 {
			return
		}
		if err := s.redis.Del(ctx, keys...).Err(); err != nil {
			s.log.WithError(err).WithField("keys", keys).Warn("failed to invalidate cache")
		}
	})
}
