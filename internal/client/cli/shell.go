package cli

import (
	"context"
	"errors"
	"io"

	"github.com/sast/hwboard/internal/client/board"
)

const shellHelp = `Commands:
  list                         Show the leaderboard (cached, refreshed in background)
  refresh                      Reload the leaderboard and show it
  vote <user>                  Vote for a user
  submit <user> <file> [img]   Submit result file and optional avatar
  history <user>               Show submission history
  api <url>                    Change API address
  help                         Show this help
  quit                         Exit`

// runShell интерактивная сессия: одна таблица в кэше на всю сессию
func (c *Cli) runShell(ctx context.Context) error {
	if err := c.openGate(ctx); err != nil {
		return err
	}
	c.io.Println(shellHelp)

	for {
		line, err := c.io.ReadInput("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		args := splitArgs(line)
		if len(args) == 0 {
			continue
		}

		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}

		if err := c.shellCommand(ctx, args[0], args[1:]); err != nil {
			c.io.Printf("Error: %v\n", err)
		}
	}
}

func (c *Cli) shellCommand(ctx context.Context, command string, args []string) error {
	switch command {
	case "list":
		entries, ok := c.cache.Read(ctx)
		if !ok {
			c.io.Println("Loading...")
			return nil
		}
		c.renderBoard(entries)
	case "refresh":
		entries, err := c.cache.Revalidate(ctx)
		if err != nil {
			return err
		}
		c.renderBoard(entries)
	case "vote":
		if len(args) != 1 {
			return errors.New("usage: vote <user>")
		}
		if err := c.board.Vote(ctx, args[0]); err != nil {
			return err
		}
		c.showCached()
	case "submit":
		if len(args) < 2 || len(args) > 3 {
			return errors.New("usage: submit <user> <file> [avatar]")
		}
		form := board.SubmitForm{User: args[0], ContentPath: args[1]}
		if len(args) == 3 {
			form.AvatarPath = args[2]
		}
		return c.submit(ctx, form)
	case "history":
		if len(args) != 1 {
			return errors.New("usage: history <user>")
		}
		return c.showHistory(ctx, args[0])
	case "api":
		if len(args) != 1 {
			return errors.New("usage: api <url>")
		}
		c.reconfigure(ctx, args[0])
	case "help":
		c.io.Println(shellHelp)
	default:
		return errors.New("unknown command: " + command + " (type help)")
	}
	return nil
}
