// Package view holds the state of the single shared-dive screen.
package view

import (
	"context"
	"sync"

	"github.com/iudanet/divelog/internal/models"
	"github.com/iudanet/divelog/internal/share"
)

// Update describes the screen after a state change
type Update struct {
	Dive  *models.Dive
	Err   error
	Token string
	State share.State
}

// Model is the single-dive view model. It is keyed on the token: opening the
// token already shown reuses the running decode, another token starts a new
// one, and results of decodes that were replaced are dropped.
type Model struct {
	current  *share.Pending
	onChange func(Update)
	decode   func(token string) *share.Pending
	mu       sync.Mutex
}

// New creates a Model. onChange is called once per decode that reaches a
// terminal state while still current; it may be nil.
func New(onChange func(Update)) *Model {
	return &Model{
		onChange: onChange,
		decode:   share.DecodeAsync,
	}
}

// Open shows token and returns its decode handle
func (m *Model) Open(token string) *share.Pending {
	m.mu.Lock()
	if m.current != nil && m.current.Token() == token {
		p := m.current
		m.mu.Unlock()
		return p
	}
	p := m.decode(token)
	m.current = p
	m.mu.Unlock()

	go m.watch(p)
	return p
}

func (m *Model) watch(p *share.Pending) {
	<-p.Done()

	m.mu.Lock()
	stale := m.current != p
	m.mu.Unlock()
	if stale || m.onChange == nil {
		return
	}
	m.onChange(snapshot(p))
}

// Current returns the state of the shown token. ok is false before any Open.
func (m *Model) Current() (Update, bool) {
	m.mu.Lock()
	p := m.current
	m.mu.Unlock()

	if p == nil {
		return Update{}, false
	}
	return snapshot(p), true
}

// Wait blocks until the shown decode finishes or ctx is done
func (m *Model) Wait(ctx context.Context) (Update, error) {
	m.mu.Lock()
	p := m.current
	m.mu.Unlock()

	if p == nil {
		return Update{}, share.ErrNotShareURL
	}
	if _, err := p.Wait(ctx); err != nil && ctx.Err() != nil {
		return Update{}, ctx.Err()
	}
	return snapshot(p), nil
}

func snapshot(p *share.Pending) Update {
	u := Update{Token: p.Token(), State: p.State()}
	if u.State != share.StatePending {
		u.Dive, u.Err = p.Result()
	}
	return u
}
