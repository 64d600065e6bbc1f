package cli

import (
	"context"
	"fmt"
)

// Run выполняет одну команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "board":
		return c.runBoard(ctx)
	case "submit":
		return c.runSubmit(ctx, args)
	case "vote":
		return c.runVote(ctx, args)
	case "history":
		return c.runHistory(ctx, args)
	case "shell":
		return c.runShell(ctx)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
