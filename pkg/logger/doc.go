// Package logger provides a slog.Logger factory with functional options and
// shared attribute helpers for consistent structured logging.
//
//	log := logger.New(
//	    logger.WithDevelopment("toastkit"),
//	)
//	log.Info("center ready", logger.Component("toast"))
//
// The default configuration is production-safe: JSON output at info level.
package logger
