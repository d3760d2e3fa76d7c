package audit

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ahrav/gradebook/internal/configuration"
)

// ErrNoStreamClient is returned when the stream sink is configured without a client.
var ErrNoStreamClient = errors.New("audit: stream sink requires a redis client")

// New builds the sink selected by cfg. client is only used by the stream sink,
// which is paired with a LogSink so published events are also logged locally.
func New(cfg configuration.AuditConfig, logger *slog.Logger, client StreamClient) (Sink, error) {
	if !cfg.Enabled {
		return NopSink{}, nil
	}

	switch cfg.Sink {
	case configuration.SinkNone:
		return NopSink{}, nil
	case configuration.SinkLog:
		return NewLogSink(logger), nil
	case configuration.SinkStream:
		if client == nil {
			return nil, ErrNoStreamClient
		}
		stream := NewStreamSink(client, StreamOptions{
			Stream:          cfg.Stream,
			MaxLen:          cfg.MaxLen,
			Timeout:         cfg.PublishTimeout,
			EventsPerSecond: cfg.EventsPerSecond,
			Burst:           cfg.Burst,
		}, logger)
		return MultiSink{NewLogSink(logger), stream}, nil
	default:
		return nil, fmt.Errorf("audit: unknown sink %q", cfg.Sink)
	}
}

// NewRedisClient creates the Redis client for the stream sink.
func NewRedisClient(cfg configuration.AuditConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  cfg.PublishTimeout,
		ReadTimeout:  cfg.PublishTimeout,
		WriteTimeout: cfg.PublishTimeout,
	})
}
