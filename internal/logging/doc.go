// Package logging provides structured logging utilities for the daybrief application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - PII sanitization (email and prompt anonymization)
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "tasks.handle")
//	logger.Info("handled command",
//	    logging.Command("add"),
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("assistant request",
//	    logging.PromptHash(prompt))
//
// # Security Considerations
//
// This package is designed with security in mind:
//   - User emails are hashed to prevent PII leakage while allowing correlation
//   - Free-text prompts are hashed, never logged verbatim
package logging
