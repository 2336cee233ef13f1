package cli

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/iudanet/divelog/internal/client/session"
	"github.com/iudanet/divelog/internal/l10n"
	"github.com/iudanet/divelog/internal/models"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("login", pflag.ContinueOnError)
	user := fs.String("user", "", "cloud account email")
	save := fs.Bool("save", false, "save login on this device")
	autologin := fs.Bool("autologin", false, "log in automatically next time (requires --save)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	c.io.Println(c.text("login-summary", nil))
	c.io.Println(c.text("login-explanation", nil))
	c.io.Println()

	login := models.Login{User: *user}
	if login.User == "" {
		var err error
		login.User, err = c.io.ReadInput(c.text("login-user", nil))
		if err != nil {
			return fmt.Errorf("failed to read user: %w", err)
		}
	}

	password, err := c.io.ReadPassword(c.text("login-password", nil))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	login.Password = password

	// Сначала проверяем логин в облаке, сохраняем только рабочий
	if err := c.session.Login(ctx, login, session.Options{}); err != nil {
		return err
	}

	snapshot, err := c.dataService.Load(ctx, login)
	if err != nil {
		c.io.Println(c.text("loading-failed", nil))
		return err
	}

	if *save {
		opts := session.Options{Persist: true, Autologin: *autologin}
		if err := c.session.Login(ctx, login, opts); err != nil {
			return err
		}
	}

	c.io.Println(c.text("login-success", l10n.Args{"user": login.User, "trips": len(snapshot.Trips)}))
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.session.Reset(ctx); err != nil {
		return err
	}
	if err := c.dataService.Clear(ctx); err != nil {
		return err
	}

	c.io.Println(c.text("logout-success", nil))
	return nil
}

func (c *Cli) runRefresh(ctx context.Context) error {
	login, err := c.currentLogin(ctx)
	if err != nil {
		c.io.Println(c.text("not-logged-in", nil))
		return err
	}

	snapshot, err := c.dataService.Load(ctx, login)
	if err != nil {
		c.io.Println(c.text("loading-failed", nil))
		return err
	}

	c.io.Println(c.text("trips-loaded", l10n.Args{"trips": len(snapshot.Trips)}))
	return nil
}
