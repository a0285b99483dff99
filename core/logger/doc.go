// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and a console encoding for interactive use.
//
// # Run Correlation
//
// Every command invocation is tagged with a run ID (a random UUID). WithRunID
// attaches it to the logger so that all entries produced while building one
// report can be correlated, even when several reports are generated by a
// script in quick succession.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, logger.NewRunID())
//	log.Info("Report written", zap.String("path", out))
package logger
