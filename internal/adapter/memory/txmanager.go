package memory

import (
	"context"
	"time"
)

// TxManager satisfies the engine's transaction interface for the in-memory
// stores. The stores apply each write atomically on their own, and the
// engine's per-item critical section already serializes the multi-record
// approve path, so the callback simply runs in place.
type TxManager struct{}

// NewTxManager creates a no-op transaction manager.
func NewTxManager() *TxManager {
	return &TxManager{}
}

// RunInTx executes fn directly.
func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func now() time.Time {
	return time.Now().UTC()
}
