package media

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	log "github.com/sirupsen/logrus"
)

type RetryParams struct {
	Attempts       uint
	AttemptTimeout time.Duration
	Delay          time.Duration
}

// RetryingStore retries ErrUnavailable failures of the wrapped store and bounds every attempt.
// ErrNotFound and other errors are returned right away.
type RetryingStore struct {
	next   Store
	params RetryParams
}

func NewRetryingStore(next Store, params RetryParams) *RetryingStore {
	if params.Attempts == 0 {
		params.Attempts = 1
	}
	if params.Delay == 0 {
		params.Delay = 100 * time.Millisecond
	}
	return &RetryingStore{
		next:   next,
		params: params,
	}
}

func (rs *RetryingStore) Save(ctx context.Context, content []byte, ownerID string) (string, error) {
	return retry.DoWithData(
		func() (string, error) {
			attemptCtx, cancel := rs.attemptContext(ctx)
			defer cancel()
			return rs.next.Save(attemptCtx, content, ownerID)
		},
		rs.options(ctx, "save")...,
	)
}

func (rs *RetryingStore) Read(ctx context.Context, handle string) ([]byte, error) {
	return retry.DoWithData(
		func() ([]byte, error) {
			attemptCtx, cancel := rs.attemptContext(ctx)
			defer cancel()
			return rs.next.Read(attemptCtx, handle)
		},
		rs.options(ctx, "read")...,
	)
}

func (rs *RetryingStore) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if rs.params.AttemptTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, rs.params.AttemptTimeout)
}

func (rs *RetryingStore) options(ctx context.Context, op string) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(rs.params.Attempts),
		retry.Delay(rs.params.Delay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrUnavailable)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf("media %s attempt %d failed: %s", op, n+1, err)
		}),
	}
}
