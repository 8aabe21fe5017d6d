// Package logger builds structured slog loggers and keeps attribute names
// consistent across the module.
//
// New creates a *slog.Logger configured by Option functions: output format
// (text or json), level, static attributes and ContextExtractor callbacks
// that copy request-scoped values (such as a request id) into every record.
//
// LevelTrace is one step below debug. The session middleware reports every
// outbound decision at this level; enable it with WithLevel(LevelTrace) or
// ParseLevel("trace").
//
// Noop returns a logger that discards everything and is the default for
// library packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "cookiesession"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "session rejected", logger.Reason("expired"))
package logger
