package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/divelog/internal/client/storage"
	"github.com/iudanet/divelog/internal/l10n"
)

func (c *Cli) runStatus(ctx context.Context) error {
	saved, err := c.session.Restore(ctx)
	if err != nil && !errors.Is(err, storage.ErrSettingsNotFound) {
		return fmt.Errorf("failed to read saved login: %w", err)
	}

	login, err := c.session.Current()
	if err != nil {
		c.io.Println(c.text("not-logged-in", nil))
	} else {
		c.io.Println(c.text("hello-user", l10n.Args{"user": login.User}))
		c.io.Println(c.text("status-user", l10n.Args{"user": login.User}))
	}

	c.io.Println(c.text("status-saved", l10n.Args{"saved": c.answer(saved != nil)}))
	c.io.Println(c.text("status-autologin", l10n.Args{"autologin": c.answer(saved != nil && saved.Autologin)}))

	snapshot, err := c.dataService.Cached(ctx)
	switch {
	case errors.Is(err, storage.ErrTripsNotFound):
		c.io.Println(c.text("status-no-cache", nil))
	case err != nil:
		return fmt.Errorf("failed to read cached trips: %w", err)
	default:
		c.io.Println(c.text("status-cache", l10n.Args{
			"trips":   len(snapshot.Trips),
			"fetched": snapshot.FetchedAt.Local().Format(time.DateTime),
		}))
	}
	return nil
}

func (c *Cli) answer(b bool) string {
	if b {
		return c.text("answer-yes", nil)
	}
	return c.text("answer-no", nil)
}
