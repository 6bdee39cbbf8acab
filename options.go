package skeletrace

import "log/slog"

// thinOptions holds optional configuration for a single Thin call.
type thinOptions struct {
	logger *slog.Logger
}

func defaultThinOptions() thinOptions {
	return thinOptions{logger: logger()}
}

// ThinOption configures a Thin call.
type ThinOption func(*thinOptions)

// WithThinLogger overrides the package logger for a single Thin call.
// A nil logger is ignored.
func WithThinLogger(l *slog.Logger) ThinOption {
	return func(o *thinOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// traceOptions holds optional configuration for a single Trace call.
type traceOptions struct {
	logger *slog.Logger
}

func defaultTraceOptions() traceOptions {
	return traceOptions{logger: logger()}
}

// TraceOption configures a Trace call.
type TraceOption func(*traceOptions)

// WithTraceLogger overrides the package logger for a single Trace call.
// A nil logger is ignored.
func WithTraceLogger(l *slog.Logger) TraceOption {
	return func(o *traceOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
