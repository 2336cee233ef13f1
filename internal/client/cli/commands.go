package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Run executes command with its arguments
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "refresh":
		return c.runRefresh(ctx)
	case "trips":
		return c.runTrips(ctx)
	case "dives":
		return c.runDives(ctx, args)
	case "show":
		return c.runShow(ctx, args)
	case "share":
		return c.runShare(ctx, args)
	case "open":
		return c.runOpen(ctx, args)
	default:
		c.PrintUsage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

// numberArg parses the single positive number argument of a command
func numberArg(args []string, name string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected %s", ErrUsage, name)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive number, got %q", ErrUsage, name, args[0])
	}
	return n, nil
}
