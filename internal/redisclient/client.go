package redisclient

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 2 * time.Second

// Client wraps a redis connection and owns the key namespace every
// repository writes under.
type Client struct {
	redisdb   *redis.Client
	namespace string
}

type Config struct {
	Addr     string
	Password string
	DB       int
	// Namespace prefixes every key built with Key, e.g. "eventos".
	Namespace string
	// Timeout applies to dial, read and write; 2s when zero.
	Timeout time.Duration
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	redisdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	return &Client{
		redisdb:   redisdb,
		namespace: strings.Trim(cfg.Namespace, ":"),
	}
}

// Key joins parts under the client namespace: Key("v1") -> "eventos:v1".
func (c *Client) Key(parts ...string) string {
	if c.namespace == "" {
		return strings.Join(parts, ":")
	}
	return c.namespace + ":" + strings.Join(parts, ":")
}

func (c *Client) Ping(ctx context.Context) error {
	return c.redisdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.redisdb.Close()
}

func (c *Client) Raw() *redis.Client {
	return c.redisdb
}
