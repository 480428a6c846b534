package repository

import "context"

// Tx is the commit/rollback surface every transactional repository exposes.
// Pair Begin with a deferred SafeRollback.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
