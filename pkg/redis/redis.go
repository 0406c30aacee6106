package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/elinacho/lumiskin-backend/config"
	"github.com/elinacho/lumiskin-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes the Redis connection. Redis only backs best-effort state
// (recent search history), so callers may treat a failed Init as non-fatal.
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		client.Close()
		client = nil
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance. Nil when Init failed or was
// never called.
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// RevokeSessionToken marks a session token as logged out until it would have
// expired anyway. Without Redis, logout degrades to client-side only.
func RevokeSessionToken(ctx context.Context, token string, expiry time.Duration) error {
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("revoked_session:%s", token)
	if err := client.Set(ctx, key, "revoked", expiry).Err(); err != nil {
		logger.Error("Failed to revoke session token", err, nil)
		return err
	}
	return nil
}

// IsSessionTokenRevoked checks whether a token was logged out. Errors are
// reported but callers treat them as "not revoked" so a Redis outage never
// locks users out.
func IsSessionTokenRevoked(ctx context.Context, token string) (bool, error) {
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("revoked_session:%s", token)
	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Error("Failed to check session token revocation", err, nil)
		return false, err
	}
	return val == "revoked", nil
}
