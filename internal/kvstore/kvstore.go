// Package kvstore wraps the hosted key-value store behind a small interface
// so handlers can be tested without a live Redis.
package kvstore

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/gofiber/storage/redis/v3"

	"promptlink/internal/config"
)

// Storage is the single-key get/set contract the share subsystem needs.
// A miss returns (nil, nil), matching the gofiber storage convention.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
	Close() error
}

// New returns a configured store client, or nil when either credential is
// absent. Consumers must treat nil as "feature unavailable" (HTTP 503), not
// as an error: an unconfigured deployment still serves everything else.
//
// Values pass through as raw bytes; callers serialize and parse JSON exactly
// once at the endpoint, never inside the adapter.
func New(cfg *config.Config) Storage {
	if !cfg.StoreConfigured() {
		slog.Warn("share storage not configured; set KV_REST_API_URL and KV_REST_API_TOKEN to enable sharing")
		return nil
	}

	connURL, err := connectionURL(cfg.KVRestURL, cfg.KVRestToken)
	if err != nil {
		slog.Error("invalid share storage URL; sharing disabled", "error", err)
		return nil
	}

	return redis.New(redis.Config{
		URL:   connURL,
		Reset: false,
	})
}

// connectionURL builds a Redis connection URL from the REST endpoint URL and
// auth token. Hosted stores hand out https:// endpoints; those map onto
// rediss:// (and http:// onto redis://) with the token as the password.
func connectionURL(restURL, token string) (string, error) {
	u, err := url.Parse(restURL)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "rediss"
	case "http":
		u.Scheme = "redis"
	}

	if token != "" {
		u.User = url.UserPassword("default", token)
	}

	if u.Port() == "" {
		u.Host = u.Hostname() + ":6379"
	}

	return u.String(), nil
}
