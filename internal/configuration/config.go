// Package configuration holds the settings for the gradebook tooling: score
// bounds, enrollment defaults, audit sink wiring and logging.
package configuration

import (
	"fmt"
	"time"

	"github.com/ahrav/gradebook/internal/domain"
)

// Audit sink kinds.
const (
	SinkNone   = "none"
	SinkLog    = "log"
	SinkStream = "stream"
)

// Config holds the complete configuration.
type Config struct {
	// Score bounds policy
	Bounds BoundsConfig `json:"bounds"`

	// Enrollment defaults
	Enrollment EnrollmentConfig `json:"enrollment"`

	// Audit notifications
	Audit AuditConfig `json:"audit"`

	// Logging
	Observability ObservabilityConfig `json:"observability"`
}

// BoundsConfig describes the inclusive range accepted by the score validator.
type BoundsConfig struct {
	Min float64 `json:"min" env:"GRADEBOOK_SCORE_MIN"`
	Max float64 `json:"max" env:"GRADEBOOK_SCORE_MAX" validate:"gtefield=Min"`
}

// EnrollmentConfig holds defaults for course capacity tracking.
type EnrollmentConfig struct {
	DefaultCapacity int `json:"default_capacity" env:"GRADEBOOK_DEFAULT_CAPACITY" validate:"min=0"`
}

// AuditConfig controls where grade list notifications are sent.
// The stream sink publishes to a Redis stream with a local publish budget;
// events beyond the budget are dropped, never queued.
type AuditConfig struct {
	Enabled         bool          `json:"enabled"           env:"GRADEBOOK_AUDIT_ENABLED"`
	Sink            string        `json:"sink"              env:"GRADEBOOK_AUDIT_SINK"     validate:"oneof=none log stream"`
	RedisAddr       string        `json:"redis_addr"        env:"GRADEBOOK_REDIS_ADDR"     validate:"required_if=Sink stream"`
	RedisPassword   string        `json:"-"                 env:"GRADEBOOK_REDIS_PASSWORD"` // Sensitive
	RedisDB         int           `json:"redis_db"          env:"GRADEBOOK_REDIS_DB"       validate:"min=0"`
	Stream          string        `json:"stream"            env:"GRADEBOOK_AUDIT_STREAM"   validate:"required_if=Sink stream"`
	MaxLen          int64         `json:"max_len"           env:"GRADEBOOK_AUDIT_MAX_LEN"  validate:"min=0"` // Approximate stream cap, 0 = unbounded
	PublishTimeout  time.Duration `json:"publish_timeout"   env:"GRADEBOOK_AUDIT_TIMEOUT"  validate:"min=0"`
	EventsPerSecond float64       `json:"events_per_second" env:"GRADEBOOK_AUDIT_RATE"     validate:"min=0"`
	Burst           int           `json:"burst"             env:"GRADEBOOK_AUDIT_BURST"    validate:"min=0"`
}

// ObservabilityConfig controls structured logging.
type ObservabilityConfig struct {
	LogLevel  string `json:"log_level"  env:"GRADEBOOK_LOG_LEVEL"  validate:"oneof=debug info warn error"`
	LogFormat string `json:"log_format" env:"GRADEBOOK_LOG_FORMAT" validate:"oneof=json text"`
}

// Validate checks struct constraints and that the bounds form a usable policy.
func (c *Config) Validate() error {
	if err := domain.Validator().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := c.ScoreValidator(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ScoreValidator builds the bounds policy described by c.Bounds.
func (c *Config) ScoreValidator() (*domain.RangeValidator, error) {
	return domain.NewRangeValidator(c.Bounds.Min, c.Bounds.Max)
}
