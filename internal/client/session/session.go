// Package session holds the cloud login of the running client and the
// optional copy the user asked to keep on this device.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/iudanet/divelog/internal/client/storage"
	"github.com/iudanet/divelog/internal/models"
	"github.com/iudanet/divelog/internal/validation"
)

// ErrNotLoggedIn возвращается, если в сессии нет логина
var ErrNotLoggedIn = errors.New("not logged in")

// Options управляет сохранением логина на устройстве
type Options struct {
	Persist   bool // сохранить логин и пароль
	Autologin bool // использовать сохраненный логин при следующем запуске
}

// Store is the process-wide login state. The in-memory login lives as long as
// the Store; it reaches storage only through an explicit Persist.
type Store struct {
	settings storage.SettingsStorage
	current  *models.Login
	mu       sync.RWMutex
}

// NewStore creates a Store persisting through settings
func NewStore(settings storage.SettingsStorage) *Store {
	return &Store{settings: settings}
}

// Login validates and activates login. With opts.Persist the login is also
// saved; Autologin without Persist is ignored.
func (s *Store) Login(ctx context.Context, login models.Login, opts Options) error {
	if err := validation.ValidateLogin(login.User, login.Password); err != nil {
		return fmt.Errorf("invalid login: %w", err)
	}

	s.mu.Lock()
	s.current = &login
	s.mu.Unlock()

	if !opts.Persist {
		return nil
	}

	settings := &models.Settings{
		User:      login.User,
		Password:  login.Password,
		Autologin: opts.Autologin,
	}
	if err := s.settings.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save login: %w", err)
	}
	return nil
}

// Current returns the active login
func (s *Store) Current() (models.Login, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.Login{}, ErrNotLoggedIn
	}
	return *s.current, nil
}

// Reset clears the active login and the saved one
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.settings.DeleteSettings(ctx); err != nil {
		return fmt.Errorf("failed to delete saved login: %w", err)
	}
	return nil
}

// Restore returns the saved settings and, when autologin is set, activates
// the saved login. storage.ErrSettingsNotFound is returned as-is.
func (s *Store) Restore(ctx context.Context) (*models.Settings, error) {
	saved, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if saved.Autologin {
		login := saved.Login()
		s.mu.Lock()
		s.current = &login
		s.mu.Unlock()
	}
	return saved, nil
}
