// Package cli implements the divelog client commands.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/divelog/internal/client/data"
	"github.com/iudanet/divelog/internal/client/iocli"
	"github.com/iudanet/divelog/internal/client/session"
	"github.com/iudanet/divelog/internal/client/storage"
	"github.com/iudanet/divelog/internal/client/view"
	"github.com/iudanet/divelog/internal/l10n"
	"github.com/iudanet/divelog/internal/models"
)

var (
	// ErrUsage возвращается при неверных аргументах команды
	ErrUsage = errors.New("invalid usage")
	// ErrNotFound возвращается, если поездка или погружение не найдены
	ErrNotFound = errors.New("not found")
)

type Cli struct {
	io          iocli.IO
	session     *session.Store
	dataService data.Service
	loc         *l10n.Localizer
	newView     func() *view.Model
	shareBase   string
}

// Options собирает зависимости Cli
type Options struct {
	IO           iocli.IO
	Session      *session.Store
	Data         data.Service
	Localizer    *l10n.Localizer
	ShareBaseURL string
}

func New(opts Options) *Cli {
	return &Cli{
		io:          opts.IO,
		session:     opts.Session,
		dataService: opts.Data,
		loc:         opts.Localizer,
		newView:     func() *view.Model { return view.New(nil) },
		shareBase:   opts.ShareBaseURL,
	}
}

// text returns a localized message
func (c *Cli) text(id string, args l10n.Args) string {
	return c.loc.Get(id, args)
}

// currentLogin returns the active login, falling back to a saved login with
// autologin enabled.
func (c *Cli) currentLogin(ctx context.Context) (models.Login, error) {
	login, err := c.session.Current()
	if err == nil {
		return login, nil
	}

	if _, err := c.session.Restore(ctx); err != nil && !errors.Is(err, storage.ErrSettingsNotFound) {
		return models.Login{}, fmt.Errorf("failed to read saved login: %w", err)
	}
	return c.session.Current()
}

// trips returns the cached trips, loading them when the cache is empty and a
// login is available.
func (c *Cli) trips(ctx context.Context) ([]models.Trip, error) {
	snapshot, err := c.dataService.Cached(ctx)
	if err == nil {
		return snapshot.Trips, nil
	}
	if !errors.Is(err, storage.ErrTripsNotFound) {
		return nil, fmt.Errorf("failed to read cached trips: %w", err)
	}

	login, err := c.currentLogin(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) {
			c.io.Println(c.text("not-logged-in", nil))
		}
		return nil, err
	}

	snapshot, err = c.dataService.Load(ctx, login)
	if err != nil {
		c.io.Println(c.text("loading-failed", nil))
		return nil, err
	}
	return snapshot.Trips, nil
}

func (c *Cli) PrintUsage() {
	c.io.Println(c.text("main-title", nil))
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  divelog [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --config PATH        YAML config file (env DIVELOG_CONFIG)")
	c.io.Println("  --cloud URL          Dive-log cloud URL")
	c.io.Println("  --db PATH            Path to local database (default: divelog.db)")
	c.io.Println("  --lang TAG           Display language (default: from LANG)")
	c.io.Println("  --share-base URL     Base URL of share links")
	c.io.Println("  --log-level LEVEL    debug, info, warn or error")
	c.io.Println("  --timeout DURATION   Cloud request timeout")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  login [--user U] [--save] [--autologin]   Log in to the dive-log cloud")
	c.io.Println("  logout                                    Forget the login and cached trips")
	c.io.Println("  status                                    Show login and cache status")
	c.io.Println("  refresh                                   Reload trips from the cloud")
	c.io.Println("  trips                                     List trips")
	c.io.Println("  dives [TRIP]                              List dives, all or of one trip")
	c.io.Println("  show DIVE                                 Show a dive with its profile")
	c.io.Println("  share DIVE                                Print a share link for a dive")
	c.io.Println("  open URL|TOKEN                            Show a shared dive")
	c.io.Println("  version                                   Show version information")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  divelog login --user diver@example.com --save --autologin")
	c.io.Println("  divelog dives 1")
	c.io.Println("  divelog share 42")
	c.io.Println("  divelog open 'https://example.com/#/single-dive/1-eJy...'")
}
