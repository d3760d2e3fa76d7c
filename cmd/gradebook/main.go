// Package main provides a command-line front end for the grade list and the
// course capacity check.
//
// Usage:
//
//	gradebook [flags] score...
//
// Scores are appended in order; "null" stands for an absent score and is
// rejected like any other invalid value.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ahrav/gradebook/internal/audit"
	"github.com/ahrav/gradebook/internal/configuration"
	"github.com/ahrav/gradebook/internal/domain"
	"github.com/ahrav/gradebook/internal/enrollment"
	"github.com/ahrav/gradebook/internal/grades"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gradebook", flag.ContinueOnError)
	fs.SetOutput(stderr)
	update := fs.String("update", "", "replace a score, as index=value")
	remove := fs.Int("delete", 0, "delete the score at this index")
	capacity := fs.Int("capacity", 0, "course capacity for the availability check (default from config)")
	enrolled := fs.Int("enrolled", 0, "students currently enrolled")
	if err := fs.Parse(args); err != nil {
		return err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := configuration.FromEnv(configuration.DefaultConfig())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger(cfg.Observability, stderr)

	validator, err := cfg.ScoreValidator()
	if err != nil {
		return err
	}

	var client audit.StreamClient
	if cfg.Audit.Enabled && cfg.Audit.Sink == configuration.SinkStream {
		rc := audit.NewRedisClient(cfg.Audit)
		defer rc.Close()
		client = rc
	}
	sink, err := audit.New(cfg.Audit, logger, client)
	if err != nil {
		return err
	}
	if r, ok := sink.(audit.StatsReporter); ok {
		defer logStreamStats(logger, cfg.Audit.Stream, r)
	}

	list := grades.NewList(validator, sink)
	for _, arg := range fs.Args() {
		score, err := parseScore(arg)
		if err != nil {
			return err
		}
		if err := list.Append(score); err != nil {
			return fmt.Errorf("append %q: %w", arg, err)
		}
	}

	if *update != "" {
		index, score, err := parseUpdate(*update)
		if err != nil {
			return err
		}
		if err := list.Update(index, score); err != nil {
			return fmt.Errorf("update %q: %w", *update, err)
		}
	}

	if set["delete"] {
		if err := list.Delete(*remove); err != nil {
			return fmt.Errorf("delete %d: %w", *remove, err)
		}
	}

	for i, score := range list.All() {
		fmt.Fprintf(stdout, "%d\t%g\n", i+1, score)
	}

	mean, err := list.Mean()
	switch {
	case errors.Is(err, domain.ErrEmptyState):
		fmt.Fprintln(stdout, "mean\t-")
	case err != nil:
		return err
	default:
		fmt.Fprintf(stdout, "mean\t%.2f\n", mean)
	}

	c := cfg.Enrollment.DefaultCapacity
	if set["capacity"] {
		c = *capacity
	}
	course, err := enrollment.NewCourse(c)
	if err != nil {
		return err
	}
	course.SetEnrolled(*enrolled)
	fmt.Fprintf(stdout, "seats\t%d/%d available=%t\n", course.Enrolled(), course.Capacity(), course.HasAvailableCapacity())

	return nil
}

func parseScore(s string) (float64, error) {
	if strings.EqualFold(s, "null") {
		return domain.NoScore(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse score %q: %w", s, err)
	}
	return v, nil
}

func parseUpdate(s string) (int, float64, error) {
	idx, val, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("update %q: want index=value", s)
	}
	index, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return 0, 0, fmt.Errorf("update %q: %w", s, err)
	}
	score, err := parseScore(strings.TrimSpace(val))
	if err != nil {
		return 0, 0, err
	}
	return index, score, nil
}

func logStreamStats(logger *slog.Logger, stream string, r audit.StatsReporter) {
	st := r.Stats()
	logger.Info("audit stream summary",
		"stream", stream,
		"published", st.Published,
		"dropped", st.Dropped,
		"failed", st.Failed)
}

func setupLogger(cfg configuration.ObservabilityConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
