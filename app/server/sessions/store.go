// Package sessions maps opaque cookie values to authenticated user ids.
package sessions

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession marks a session id that is unknown or has expired.
var ErrNoSession = errors.New("no such session")

type Store interface {
	Set(ctx context.Context, sid string, userID uint, ttl time.Duration) error
	Get(ctx context.Context, sid string) (uint, error)
	Delete(ctx context.Context, sid string) error
}
