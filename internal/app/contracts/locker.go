package contracts

import (
	"context"
	"time"
)

// LockerService hands out short lived, owner scoped locks. A lock is owned by
// the token returned from TryLock and only that token may refresh or
// release it.
type LockerService interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (acquired bool, token string, err error)
	Unlock(ctx context.Context, key, token string) error
	Refresh(ctx context.Context, key, token string, ttl time.Duration) error
}
