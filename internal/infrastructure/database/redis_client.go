package database

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"crm_pipeline/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// ConnectRedis opens and pings the Redis used for idempotency keys.
// An empty REDIS_URL returns a nil client: deduplication stays off.
func ConnectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}
	client := redis.NewClient(ParseRedisOptions(cfg.RedisURL))

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).Error("[pipeline][redis] ping failed")
		_ = client.Close()
		return nil, err
	}
	log.WithField("addr", client.Options().Addr).Info("[pipeline][redis] connected")
	return client, nil
}

// ParseRedisOptions accepts a redis:// URL or the "host:port,password=...,ssl=true"
// connection string form.
func ParseRedisOptions(conn string) *redis.Options {
	if opts, err := redis.ParseURL(conn); err == nil {
		return opts
	}
	parts := strings.Split(conn, ",")
	opts := &redis.Options{Addr: strings.TrimSpace(parts[0])}
	for _, p := range parts[1:] {
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(kv[0])) {
		case "password":
			opts.Password = kv[1]
		case "ssl":
			if strings.EqualFold(strings.TrimSpace(kv[1]), "true") {
				opts.TLSConfig = &tls.Config{}
			}
		}
	}
	return opts
}
