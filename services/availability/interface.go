package availability

import (
	"context"

	inventoryRepo "roomcheck/database/repository/inventory"
	"roomcheck/models"

	"go.uber.org/zap"
)

// Validator answers whether a stay request can be satisfied.
type Validator interface {
	Validate(ctx context.Context, req models.StayRequest) (Verdict, error)
}

// Engine is the availability validator. It holds no state between requests.
//
// A valid verdict is a pre-flight check, not a reservation: a concurrent booking
// can still take the unit before the caller writes. The store settles that race
// when the booking is inserted.
type Engine struct {
	Repo   inventoryRepo.Repository
	Logger *zap.Logger
	// MaxFanout bounds concurrent category lookups in an unscoped search. Zero means no bound.
	MaxFanout int
}

func NewEngine(repo inventoryRepo.Repository, logger *zap.Logger, maxFanout int) *Engine {
	return &Engine{Repo: repo, Logger: logger, MaxFanout: maxFanout}
}

func (e *Engine) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
