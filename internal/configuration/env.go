package configuration

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environment variable names bound through the env tags on Config.
const (
	EnvBoundsMin       = "GRADEBOOK_SCORE_MIN"
	EnvBoundsMax       = "GRADEBOOK_SCORE_MAX"
	EnvCapacity        = "GRADEBOOK_DEFAULT_CAPACITY"
	EnvAuditEnabled    = "GRADEBOOK_AUDIT_ENABLED"
	EnvAuditSink       = "GRADEBOOK_AUDIT_SINK"
	EnvRedisAddr       = "GRADEBOOK_REDIS_ADDR"
	EnvRedisPassword   = "GRADEBOOK_REDIS_PASSWORD"
	EnvRedisDB         = "GRADEBOOK_REDIS_DB"
	EnvAuditStream     = "GRADEBOOK_AUDIT_STREAM"
	EnvAuditMaxLen     = "GRADEBOOK_AUDIT_MAX_LEN"
	EnvPublishTimeout  = "GRADEBOOK_AUDIT_TIMEOUT"
	EnvEventsPerSecond = "GRADEBOOK_AUDIT_RATE"
	EnvBurst           = "GRADEBOOK_AUDIT_BURST"
	EnvLogLevel        = "GRADEBOOK_LOG_LEVEL"
	EnvLogFormat       = "GRADEBOOK_LOG_FORMAT"
)

// FromEnv overlays GRADEBOOK_* environment variables onto a copy of base.
// Unset variables keep the base value; a variable that does not parse is an
// error. base is not modified. A nil base starts from DefaultConfig.
func FromEnv(base *Config) (*Config, error) {
	if base == nil {
		base = DefaultConfig()
	}
	cfg := *base

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Audit.Sink = strings.ToLower(cfg.Audit.Sink)
	cfg.Observability.LogLevel = strings.ToLower(cfg.Observability.LogLevel)
	cfg.Observability.LogFormat = strings.ToLower(cfg.Observability.LogFormat)

	return &cfg, nil
}
