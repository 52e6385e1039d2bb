package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger is any dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Store     bool      `json:"store"`
	Cache     *bool     `json:"cache,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every required dependency answered.
func (h HealthStatus) Healthy() bool {
	return h.Store
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth probes store and the optional cache once and stores the snapshot.
func CheckHealth(ctx context.Context, store Pinger, cache Pinger) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{
		Store:     store.Ping(ctx) == nil,
		CheckedAt: time.Now(),
	}
	if cache != nil {
		ok := cache.Ping(ctx) == nil
		status.Cache = &ok
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, store Pinger, cache Pinger) {
	CheckHealth(ctx, store, cache)
	go func() {
		ticker := time.NewTicker(HealthCheckInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, store, cache)
			}
		}
	}()
}
