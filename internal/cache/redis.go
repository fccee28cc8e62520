package cache

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/berk/parentportal/internal/config"
	"github.com/berk/parentportal/internal/pkg/logger"
)

// ErrCacheMiss is returned by Get when the key is not present.
var ErrCacheMiss = errors.New("cache: key not found")

// ConnState tracks the cache connection lifecycle. It is owned by the Client
// and transitioned by connection events only; readers never write it.
type ConnState int32

const (
	// StateDisconnected means no usable connection (never connected, or dropped).
	StateDisconnected ConnState = iota
	// StateConnected means a TCP connection was established but not yet verified.
	StateConnected
	// StateReady means the connection completed its handshake and accepted a command.
	StateReady
)

// String returns a human-readable state name.
func (s ConnState) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateReady:
		return "ready"
	default:
		return "disconnected"
	}
}

// Client wraps a Redis client with an explicit connection-state machine so
// callers can skip the cache entirely when it is unreachable.
type Client struct {
	rdb   *redis.Client
	state atomic.Int32
}

// NewClient creates a cache client and attempts an initial connection. A
// failed connection is not an error: the client starts in the disconnected
// state and every read routes around the cache until Redis comes back.
func NewClient(cfg *config.Config) *Client {
	c := &Client{}

	c.rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		OnConnect: func(ctx context.Context, cn *redis.Conn) error {
			c.setState(StateReady)
			return nil
		},
	})
	c.rdb.AddHook(&stateHook{client: c})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("Redis connection failed, running in fallback mode")
		c.setState(StateDisconnected)
	} else {
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("Redis client connected")
	}

	return c
}

// State returns the current connection state.
func (c *Client) State() ConnState {
	return ConnState(c.state.Load())
}

// Available reports whether the cache can be used for reads and writes.
func (c *Client) Available() bool {
	return c != nil && c.State() == StateReady
}

// Get reads a raw value by key. Returns ErrCacheMiss when absent.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetEx stores a raw value under key with the given expiration.
func (c *Client) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.SetEx(ctx, key, value, ttl).Err()
}

// Close releases the underlying Redis connection.
func (c *Client) Close() error {
	c.setState(StateDisconnected)
	return c.rdb.Close()
}

func (c *Client) setState(s ConnState) {
	c.state.Store(int32(s))
}

// stateHook transitions the connection state on dial and command outcomes,
// mirroring the connect/error/end events of an event-driven client.
type stateHook struct {
	client *Client
}

func (h *stateHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			h.client.setState(StateDisconnected)
			return nil, err
		}
		h.client.setState(StateConnected)
		return conn, nil
	}
}

func (h *stateHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if isConnectionError(err) {
			h.client.setState(StateDisconnected)
		}
		return err
	}
}

func (h *stateHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if isConnectionError(err) {
			h.client.setState(StateDisconnected)
		}
		return err
	}
}

// isConnectionError distinguishes transport failures from command-level
// results like redis.Nil, which must not flip the availability state.
func isConnectionError(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, net.ErrClosed)
}
