package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/divelog/internal/l10n"
	"github.com/iudanet/divelog/internal/share"
)

func (c *Cli) runShare(ctx context.Context, args []string) error {
	_, dive, err := c.findDive(ctx, args)
	if err != nil {
		return err
	}

	// у загруженного погружения Raw хранит запись облака целиком
	token, err := share.Encode(dive)
	if err != nil {
		return fmt.Errorf("failed to encode dive: %w", err)
	}
	link, err := share.URL(c.shareBase, token)
	if err != nil {
		return err
	}

	c.io.Println(c.text("share-dive", nil))
	c.io.Println(c.text("url-copied", l10n.Args{"url": link}))
	return nil
}

func (c *Cli) runOpen(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected share URL or token", ErrUsage)
	}

	token, err := share.TokenFromURL(args[0])
	if err != nil {
		c.io.Println(c.text("shared-link-invalid", nil))
		return err
	}

	model := c.newView()
	model.Open(token)
	c.io.Println(c.text("shared-dive-loading", nil))

	update, err := model.Wait(ctx)
	if err != nil {
		return err
	}
	if update.Err != nil {
		if share.IsForeignLink(update.Err) {
			c.io.Println(c.text("shared-link-invalid", nil))
		} else {
			c.io.Println(c.text("shared-dive-damaged", nil))
		}
		return update.Err
	}

	c.renderDive("", update.Dive)
	return nil
}
