// File: utils/constants.go
package utils

import "time"

// HealthCheckInterval is how often StartHealthMonitor probes dependencies.
const HealthCheckInterval = 30 * time.Second

// ShutdownTimeout bounds graceful HTTP shutdown.
const ShutdownTimeout = 5 * time.Second

// LoggerKey is the gin context key holding the request-scoped zap logger.
const LoggerKey = "logger"

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"
