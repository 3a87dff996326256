package usecase

import "context"

// BalanceCache abstracts the per-client balance cache. It is a read
// optimization only; a miss or a cache error always falls back to a full
// recomputation.
type BalanceCache interface {
	Get(ctx context.Context, clientID string) (float64, bool, error)
	Set(ctx context.Context, clientID string, total float64) error
	Invalidate(ctx context.Context, clientID string) error
}
