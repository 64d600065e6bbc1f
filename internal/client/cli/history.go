package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return fmt.Errorf("missing user. Usage: hwboard history <user>")
	}

	// История не зависит от кэша таблицы, нужен только адрес
	if err := c.confirmEndpoint(); err != nil {
		return err
	}

	return c.showHistory(ctx, args[0])
}

func (c *Cli) showHistory(ctx context.Context, user string) error {
	view, err := c.history.Open(ctx, user)
	if err != nil {
		return err
	}

	c.io.Printf("=== %s ===\n", view.Title)
	if len(view.Rows) == 0 {
		c.io.Println("No submissions.")
		return nil
	}

	for _, row := range view.Rows {
		c.io.Println()
		c.io.Printf("Score:    %s\n", formatFloat(row.Score))
		c.io.Printf("Average:  %s\n", formatFloat(row.Average))
		c.io.Printf("Mountain: %s\n", formatFloat(row.Subs.Mountain()))
		c.io.Printf("Sky:      %s\n", formatFloat(row.Subs.Sky()))
		c.io.Printf("Water:    %s\n", formatFloat(row.Subs.Water()))
		c.io.Printf("Time:     %s (%s)\n", row.Local, row.Ago)
	}
	return nil
}
