// Package logger builds log/slog loggers for the sign-up service.
//
// New applies functional options over JSON output at INFO level:
//
//	log := logger.New(
//		logger.WithEnvironment("production", "signupd"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Context extractors run on every record, so request-scoped values such as
// the request ID are attached without building a logger per request. The
// attribute helpers keep key names consistent across packages.
package logger
