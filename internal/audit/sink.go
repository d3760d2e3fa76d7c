package audit

import (
	"context"
	"log/slog"
)

// Sink receives audit events. Record must not panic and must not block
// indefinitely; failures are the sink's own concern.
type Sink interface {
	Record(e Event)
}

// StatsReporter is implemented by sinks that count publish outcomes.
type StatsReporter interface {
	Stats() StreamStats
}

// NopSink discards every event.
type NopSink struct{}

// Record implements Sink.
func (NopSink) Record(Event) {}

// MultiSink fans an event out to every sink in order.
type MultiSink []Sink

// Record implements Sink.
func (m MultiSink) Record(e Event) {
	for _, s := range m {
		if s != nil {
			s.Record(e)
		}
	}
}

// Stats sums the counters of every member that reports them.
func (m MultiSink) Stats() StreamStats {
	var total StreamStats
	for _, s := range m {
		r, ok := s.(StatsReporter)
		if !ok {
			continue
		}
		st := r.Stats()
		total.Published += st.Published
		total.Dropped += st.Dropped
		total.Failed += st.Failed
	}
	return total
}

// LogSink writes events as structured log records. Mutations are logged at
// Info, reads at Debug.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink backed by logger, or slog.Default() when nil.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Record implements Sink.
func (s *LogSink) Record(e Event) {
	level := slog.LevelDebug
	if e.Op.IsMutation() {
		level = slog.LevelInfo
	}

	attrs := []slog.Attr{
		slog.String("event_id", e.ID.String()),
		slog.String("op", e.Op.String()),
		slog.Int("count", e.Count),
	}
	if e.Index != NoIndex {
		attrs = append(attrs,
			slog.Int("position", e.Position()),
			slog.Float64("value", e.Value),
		)
	}

	s.logger.LogAttrs(context.Background(), level, "grade list "+e.Op.String(), attrs...)
}
