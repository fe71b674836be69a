// Package observability wraps log/slog with optional Sentry error
// reporting, grounded on wandb-wandb's core/internal/observability
// package. rosbag-inspect uses it to log recoverable parse anomalies
// (unknown header fields, skippable record variants) without forcing a
// logging framework on importers of pkg/rosbag, which only ever touches
// log/slog directly (see pkg/rosbag/logging.go).
package observability

import (
	"io"
	"log/slog"
	"maps"
	"sync"

	"github.com/getsentry/sentry-go"
)

// Tags is a flat string-to-string map attached to captured Sentry events.
type Tags map[string]string

// NewTags builds a Tags from alternating key/value args, mirroring
// slog.Logger's variadic attribute convention.
func NewTags(args ...any) Tags {
	tags := Tags{}
	for len(args) >= 2 {
		key, ok := args[0].(string)
		if !ok {
			args = args[1:]
			continue
		}
		tags[key] = slog.AnyValue(args[1]).String()
		args = args[2:]
	}
	return tags
}

// CoreLogger pairs a *slog.Logger with an optional Sentry hub so that
// warnings about malformed-but-recoverable bag data can both land in the
// log stream and be aggregated for operators watching a fleet of bag
// readers.
type CoreLogger struct {
	mu sync.Mutex

	*slog.Logger
	sentryHub *sentry.Hub

	baseTags Tags
}

// NewCoreLogger returns a CoreLogger writing to logger. sentryHub may be
// nil to disable Sentry capture entirely.
func NewCoreLogger(logger *slog.Logger, sentryHub *sentry.Hub) *CoreLogger {
	if sentryHub != nil {
		sentryHub = sentryHub.Clone()
	}
	return &CoreLogger{
		Logger:    logger,
		sentryHub: sentryHub,
		baseTags:  make(Tags),
	}
}

// NewNoOpLogger returns a logger that discards all messages, for tests.
func NewNoOpLogger() *CoreLogger {
	return NewCoreLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)), nil)
}

// SetGlobalTags updates the tags attached to every future Sentry capture.
func (cl *CoreLogger) SetGlobalTags(tags Tags) {
	maps.Copy(cl.baseTags, tags)
}

// With returns a derived logger that includes the given slog attributes
// in every message and shares this logger's Sentry hub and base tags.
func (cl *CoreLogger) With(args ...any) *CoreLogger {
	var sentryHub *sentry.Hub
	if cl.sentryHub != nil {
		sentryHub = cl.sentryHub.Clone()
	}
	return &CoreLogger{
		Logger:    cl.Logger.With(args...),
		sentryHub: sentryHub,
		baseTags:  cl.baseTags,
	}
}

// CaptureWarn logs a warning and, if Sentry is enabled, sends it as a
// message event tagged with the logger's base tags plus args.
func (cl *CoreLogger) CaptureWarn(msg string, args ...any) {
	cl.Warn(msg, args...)
	cl.captureMessage(msg, args...)
}

// CaptureError logs an error and, if Sentry is enabled, sends it as an
// exception event.
func (cl *CoreLogger) CaptureError(err error, args ...any) {
	cl.Error(err.Error(), args...)
	cl.captureException(err, args...)
}

func (cl *CoreLogger) captureMessage(msg string, args ...any) {
	if cl.sentryHub == nil {
		return
	}
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.sentryHub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(cl.withArgs(args...))
		cl.sentryHub.CaptureMessage(msg)
	})
}

func (cl *CoreLogger) captureException(err error, args ...any) {
	if cl.sentryHub == nil {
		return
	}
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.sentryHub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(cl.withArgs(args...))
		cl.sentryHub.CaptureException(err)
	})
}

func (cl *CoreLogger) withArgs(args ...any) Tags {
	tags := NewTags(args...)
	maps.Copy(tags, cl.baseTags)
	return tags
}
