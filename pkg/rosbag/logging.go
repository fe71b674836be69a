package rosbag

import "log/slog"

// warnLogger receives forward-compatibility warnings about unknown header
// fields. Unknown fields are logged and ignored, never errors (spec.md
// §4.4, §7, §9): the file format is allowed to grow new fields.
var warnLogger = slog.Default()

// SetWarnLogger overrides where unknown-field warnings go. Passing nil
// restores slog.Default(). Callers that want these warnings folded into
// their own structured logging (e.g. internal/observability.CoreLogger,
// which also forwards to Sentry) should call this once at startup.
func SetWarnLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	warnLogger = l
}

func logUnknownField(recordKind, name string, val []byte) {
	warnLogger.Warn("rosbag: unknown header field",
		"record", recordKind, "field", name, "len", len(val))
}
