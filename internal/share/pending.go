package share

import (
	"context"

	"github.com/iudanet/divelog/internal/models"
)

// State is the lifecycle of an asynchronous decode.
type State int

const (
	StatePending State = iota
	StateResolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Pending is a decode running in the background. It starts in StatePending and
// moves exactly once to StateResolved or StateFailed. A decode cannot be
// cancelled; a caller that loses interest simply stops waiting.
type Pending struct {
	done  chan struct{}
	dive  *models.Dive
	err   error
	token string
}

// DecodeAsync starts decoding token and returns immediately.
func DecodeAsync(token string) *Pending {
	return DecodeAsyncWith(token, Decode)
}

// DecodeAsyncWith runs decode for token on its own goroutine.
func DecodeAsyncWith(token string, decode func(string) (*models.Dive, error)) *Pending {
	p := &Pending{
		token: token,
		done:  make(chan struct{}),
	}

	go func() {
		defer close(p.done)
		p.dive, p.err = decode(token)
	}()

	return p
}

// Token returns the token being decoded.
func (p *Pending) Token() string { return p.token }

// Done is closed once the decode has finished.
func (p *Pending) Done() <-chan struct{} { return p.done }

// State reports the current state without blocking.
func (p *Pending) State() State {
	select {
	case <-p.done:
		if p.err != nil {
			return StateFailed
		}
		return StateResolved
	default:
		return StatePending
	}
}

// Result returns the outcome without blocking, or ErrPending if there is none yet.
func (p *Pending) Result() (*models.Dive, error) {
	select {
	case <-p.done:
		return p.dive, p.err
	default:
		return nil, ErrPending
	}
}

// Wait blocks until the decode finishes or ctx is done. Abandoning the wait
// does not stop the decode.
func (p *Pending) Wait(ctx context.Context) (*models.Dive, error) {
	select {
	case <-p.done:
		return p.dive, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
