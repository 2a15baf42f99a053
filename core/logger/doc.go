// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the toolkit command line. The
// library packages never log; failures travel back to the caller as errors
// and the CLI decides what to report.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Converted value")
//
//	// Inside a cobra command:
//	l := logger.WithCommand(log, cmd)
//	l.Error("Command failed", zap.Error(err))
package logger
