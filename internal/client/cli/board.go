package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	clientapi "github.com/sast/hwboard/internal/client/api"
	"github.com/sast/hwboard/internal/client/board"
	"github.com/sast/hwboard/internal/client/history"
	"github.com/sast/hwboard/pkg/api"
)

func (c *Cli) runBoard(ctx context.Context) error {
	if err := c.openGate(ctx); err != nil {
		return err
	}

	entries, err := c.cache.Revalidate(ctx)
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}

	c.renderBoard(entries)
	return nil
}

func (c *Cli) runVote(ctx context.Context, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return fmt.Errorf("missing user. Usage: hwboard vote <user>")
	}
	user := args[0]

	if err := c.openGate(ctx); err != nil {
		return err
	}

	// Голос отдается по записи из текущей таблицы
	if _, err := c.cache.Revalidate(ctx); err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}

	if err := c.board.Vote(ctx, user); err != nil {
		return fmt.Errorf("vote failed: %w", err)
	}

	c.showCached()
	return nil
}

func (c *Cli) runSubmit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	fs.SetOutput(c.io)

	var form board.SubmitForm
	fs.StringVar(&form.User, "user", "", "Student ID (required)")
	fs.StringVar(&form.ContentPath, "content", "", "Path to result.txt (required)")
	fs.StringVar(&form.AvatarPath, "avatar", "", "Path to avatar image")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.openGate(ctx); err != nil {
		return err
	}

	return c.submit(ctx, form)
}

func (c *Cli) submit(ctx context.Context, form board.SubmitForm) error {
	if err := c.board.Submit(ctx, form); err != nil {
		if clientapi.IsValidationError(err) {
			c.io.Printf("Validation failed: %v\n", err)
		}
		return fmt.Errorf("submit failed: %w", err)
	}

	c.io.Println("Submitted.")
	c.showCached()
	return nil
}

// showCached печатает таблицу из кэша без перезагрузки
func (c *Cli) showCached() {
	entries, ok := c.cache.Peek()
	if !ok {
		return
	}
	c.renderBoard(entries)
}

func (c *Cli) renderBoard(entries []api.LeaderboardEntry) {
	if len(entries) == 0 {
		c.io.Println("Leaderboard is empty.")
		return
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tScore\tLast Submit\tAverage\tMountain\tSky\tWater\tVotes")
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			avatarGlyph(e),
			e.User,
			formatFloat(e.Score),
			history.FormatUnix(e.Time),
			formatFloat(e.Subs.Average()),
			formatFloat(e.Subs.Mountain()),
			formatFloat(e.Subs.Sky()),
			formatFloat(e.Subs.Water()),
			e.Votes,
		)
	}
	_ = w.Flush()
}

// avatarGlyph заменяет изображение: размер аватара или первая буква user
func avatarGlyph(e api.LeaderboardEntry) string {
	if e.Avatar != "" {
		data, err := api.DecodeAvatar(e.Avatar)
		if err != nil {
			return "[img ?]"
		}
		return "[img " + humanize.Bytes(uint64(len(data))) + "]"
	}

	r, _ := utf8.DecodeRuneInString(e.User)
	if r == utf8.RuneError {
		return "[?]"
	}
	return "[" + string(unicode.ToUpper(r)) + "]"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func splitArgs(line string) []string {
	return strings.Fields(line)
}
