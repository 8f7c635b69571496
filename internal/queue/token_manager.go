package queue

import (
	"context"
	"errors"
)

// TokenManager hands out admission tokens shared by every replica of the service.
type TokenManager interface {
	AcquireToken(ctx context.Context) error

	ReleaseToken(ctx context.Context) error

	InitializeTokens(ctx context.Context, count int) error
}

var ErrNoTokenAvailable = errors.New("no queue token available")
