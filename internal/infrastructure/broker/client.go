package broker

import (
	"github.com/redis/go-redis/v9"
)

// Client holds the Redis connection behind the cleanup journal stream.
type Client struct {
	redis  *redis.Client
	stream string
}

func NewClient(cfg Config) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	return &Client{
		redis:  redis.NewClient(opt),
		stream: cfg.StreamName,
	}, nil
}

func (c *Client) Close() error {
	return c.redis.Close()
}
