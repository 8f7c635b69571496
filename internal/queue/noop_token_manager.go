package queue

import "context"

// NoopTokenManager admits every request. It is used when no Redis is configured
// and the worker pool alone bounds in-flight queries.
type NoopTokenManager struct{}

func (NoopTokenManager) AcquireToken(context.Context) error { return nil }

func (NoopTokenManager) ReleaseToken(context.Context) error { return nil }

func (NoopTokenManager) InitializeTokens(context.Context, int) error { return nil }
