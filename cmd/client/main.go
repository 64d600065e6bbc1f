package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sast/hwboard/internal/client/api"
	"github.com/sast/hwboard/internal/client/board"
	"github.com/sast/hwboard/internal/client/cache"
	"github.com/sast/hwboard/internal/client/cli"
	"github.com/sast/hwboard/internal/client/endpoint"
	"github.com/sast/hwboard/internal/client/history"
	"github.com/sast/hwboard/internal/client/iocli"
	"github.com/sast/hwboard/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	defaultServerURL = "http://localhost:8080"
	envServerURL     = "HWBOARD_API"
)

func main() {
	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "API address (env "+envServerURL+", default "+defaultServerURL+")")
	policyName := flag.String("policy", "notify", "Vote/submit error policy: ignore, notify, retry")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger, err := logging.New(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	policy, err := board.ParsePolicy(*policyName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Адрес API: флаг важнее переменной окружения
	cfg := endpoint.New(defaultServerURL)
	cfg.Set(os.Getenv(envServerURL))
	cfg.Set(*serverURL)

	apiClient := api.NewClient(cfg)
	leaderboard := cache.New(apiClient, logger)

	opts := board.DefaultOptions()
	opts.Policy = policy
	boardService := board.NewService(apiClient, leaderboard, logger, opts)

	app := cli.New(
		iocli.NewStdio(),
		cfg,
		leaderboard,
		boardService,
		history.NewViewer(apiClient, logger),
	)

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		app.PrintUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	err = app.Run(ctx, args[0], args[1:])
	logger.Debug("Command finished", "command", args[0], "duration", time.Since(start))
	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("hwboard client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
