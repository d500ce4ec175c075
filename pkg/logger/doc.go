// Package logger builds the *slog.Logger used across securekit and provides
// attribute helpers that keep key names consistent.
//
// New assembles a slog.Handler (text or JSON) from functional options.
// Context extractors add attributes pulled from the context on every record
// (for example a request id), and WithMessageFilter can scrub message and
// error text before it is written.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "securekit"),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
// Security-relevant events (sanitizer ceiling reached, store decode failure,
// malicious input detected) go through SecurityEvent so they share the
// event_type=security attribute and can be filtered downstream:
//
//	logger.SecurityEvent(ctx, log, slog.LevelWarn, "malicious_input",
//	    logger.Pattern("script"),
//	    logger.InputLength(len(s)),
//	)
//
// Helpers such as Error and Errors return an empty slog.Attr for nil errors,
// which slog handlers drop, so call sites need no nil checks. Untrusted input
// and stored values are never logged, only their length or key.
package logger
