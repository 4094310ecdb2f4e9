// Package httpserver wraps http.Server with graceful shutdown on context
// cancellation or SIGINT/SIGTERM, environment-driven configuration and
// structured start/stop logging.
package httpserver
