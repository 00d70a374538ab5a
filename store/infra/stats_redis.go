package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"thrift-store/store/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStatsStore grava os movimentos de estoque em hashes do Redis:
//
//	<prefix>:total               campos delivered/stocked/collected/wait_ms
//	<prefix>:section:<nome>      mesmos campos, por seção
//	<prefix>:minute:<yyyymmddhhmm> série por minuto (opcional, com TTL)
type RedisStatsStore struct {
	rdb *redis.Client

	prefix string
	// ttl aplica apenas nas chaves de série temporal.
	// total e section são cumulativos e não expiram.
	ttl time.Duration

	bucket string // "minute" (padrão) ou "none"
}

type RedisStatsOption func(*RedisStatsStore)

func WithStatsPrefix(prefix string) RedisStatsOption {
	return func(s *RedisStatsStore) {
		s.prefix = strings.Trim(prefix, ":")
	}
}

func WithStatsTTL(d time.Duration) RedisStatsOption {
	return func(s *RedisStatsStore) { s.ttl = d }
}

func WithStatsBucket(bucket string) RedisStatsOption {
	return func(s *RedisStatsStore) { s.bucket = strings.ToLower(strings.TrimSpace(bucket)) }
}

func NewRedisStatsStore(rdb *redis.Client, opts ...RedisStatsOption) *RedisStatsStore {
	s := &RedisStatsStore{
		rdb:    rdb,
		prefix: "thriftstore:stats",
		ttl:    24 * time.Hour,
		bucket: "minute",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStatsStore) Record(ctx context.Context, ev domain.StatsEvent) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	if ev.Quantity < 0 {
		return domain.ErrInvalidQuantity
	}
	field := string(ev.Kind)
	if field == "" {
		return nil
	}

	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	q := int64(ev.Quantity)

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, s.prefix+":total", field, q)

	if section := strings.TrimSpace(ev.Section); section != "" {
		pipe.HIncrBy(ctx, s.prefix+":section:"+section, field, q)
		if ev.Kind == domain.StatsCollected && ev.Wait > 0 {
			pipe.HIncrBy(ctx, s.prefix+":section:"+section, "wait_ms", ev.Wait.Milliseconds())
		}
	}
	if ev.Kind == domain.StatsCollected && ev.Wait > 0 {
		pipe.HIncrBy(ctx, s.prefix+":total", "wait_ms", ev.Wait.Milliseconds())
	}

	if s.bucket == "minute" {
		bucketKey := fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))
		pipe.HIncrBy(ctx, bucketKey, field, q)
		if s.ttl > 0 {
			pipe.Expire(ctx, bucketKey, s.ttl)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
