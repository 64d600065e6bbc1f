package cli

import (
	"context"
	"fmt"

	"github.com/sast/hwboard/internal/client/board"
	"github.com/sast/hwboard/internal/client/endpoint"
	"github.com/sast/hwboard/internal/client/history"
	"github.com/sast/hwboard/internal/client/iocli"
	"github.com/sast/hwboard/pkg/api"
)

// LeaderboardCache кэш таблицы лидеров, используемый клиентом
type LeaderboardCache interface {
	SetConfirmed(ctx context.Context, confirmed bool)
	Read(ctx context.Context) ([]api.LeaderboardEntry, bool)
	Peek() ([]api.LeaderboardEntry, bool)
	Revalidate(ctx context.Context) ([]api.LeaderboardEntry, error)
}

// HistoryViewer открывает историю посылок пользователя
type HistoryViewer interface {
	Open(ctx context.Context, user string) (*history.View, error)
}

type Cli struct {
	io       iocli.IO
	endpoint *endpoint.Config
	cache    LeaderboardCache
	board    board.Service
	history  HistoryViewer
}

func New(io iocli.IO, cfg *endpoint.Config, cache LeaderboardCache, boardService board.Service, viewer HistoryViewer) *Cli {
	return &Cli{
		io:       io,
		endpoint: cfg,
		cache:    cache,
		board:    boardService,
		history:  viewer,
	}
}

// confirmEndpoint подтверждает адрес API.
// Если адрес не задан флагом или окружением и stdin это терминал, спрашивает пользователя;
// пустой ввод оставляет адрес по умолчанию.
func (c *Cli) confirmEndpoint() error {
	if !c.endpoint.Configured() && c.io.IsTerminal() {
		input, err := c.io.ReadInput(fmt.Sprintf("API address [%s]: ", c.endpoint.Get()))
		if err != nil {
			return fmt.Errorf("failed to read api address: %w", err)
		}
		c.endpoint.Set(input)
	}
	c.endpoint.Confirm()

	c.io.Printf("Current API: %s\n", c.endpoint.Get())
	return nil
}

// openGate подтверждает адрес и разрешает синхронизацию таблицы
func (c *Cli) openGate(ctx context.Context) error {
	if err := c.confirmEndpoint(); err != nil {
		return err
	}
	c.cache.SetConfirmed(ctx, true)
	return nil
}

// reconfigure меняет адрес API: кэш сбрасывается и загружается заново
func (c *Cli) reconfigure(ctx context.Context, url string) {
	c.cache.SetConfirmed(ctx, false)
	c.endpoint.Set(url)
	c.endpoint.Confirm()
	c.io.Printf("Current API: %s\n", c.endpoint.Get())
	c.cache.SetConfirmed(ctx, true)
}

func (c *Cli) PrintUsage() {
	c.io.Println("hwboard - homework leaderboard client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  hwboard [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --version            Show version information")
	c.io.Println("  --server URL         API address (env HWBOARD_API, default: http://localhost:8080)")
	c.io.Println("  --policy POLICY      Vote/submit error policy: ignore, notify, retry (default: notify)")
	c.io.Println("  --log-level LEVEL    debug, info, warn, error (default: warn)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  board                                     Show the leaderboard")
	c.io.Println("  submit --user ID --content FILE [--avatar FILE]")
	c.io.Println("                                            Submit result.txt and an optional avatar")
	c.io.Println("  vote <user>                               Vote for a user")
	c.io.Println("  history <user>                            Show submission history of a user")
	c.io.Println("  shell                                     Interactive session")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  hwboard --server https://board.example.com/api board")
	c.io.Println("  hwboard submit --user 2022010001 --content result.txt --avatar me.png")
	c.io.Println("  hwboard vote 2022010001")
}
