// Package logger builds the service's slog.Logger: JSON for production, text
// for development, with static service attributes and optional context
// extractors for request-scoped values.
package logger
