package configuration

import (
	"time"

	"github.com/ahrav/gradebook/internal/domain"
)

// Audit constants.
const (
	DefaultStream          = "gradebook:audit"
	DefaultStreamMaxLen    = 10000
	DefaultPublishTimeout  = 2 * time.Second
	DefaultEventsPerSecond = 50
	DefaultBurst           = 100
	DefaultRedisAddr       = "localhost:6379"
)

// Logging constants.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// DefaultConfig returns the [0, 10] bounds policy with auditing to the logger.
func DefaultConfig() *Config {
	return &Config{
		Bounds: BoundsConfig{
			Min: domain.MinScore,
			Max: domain.MaxScore,
		},
		Enrollment: EnrollmentConfig{
			DefaultCapacity: 0,
		},
		Audit: AuditConfig{
			Enabled:         true,
			Sink:            SinkLog,
			RedisAddr:       DefaultRedisAddr,
			Stream:          DefaultStream,
			MaxLen:          DefaultStreamMaxLen,
			PublishTimeout:  DefaultPublishTimeout,
			EventsPerSecond: DefaultEventsPerSecond,
			Burst:           DefaultBurst,
		},
		Observability: ObservabilityConfig{
			LogLevel:  DefaultLogLevel,
			LogFormat: DefaultLogFormat,
		},
	}
}
