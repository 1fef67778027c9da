package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/marcin-skalski/pr-summary/internal/config"
	"github.com/marcin-skalski/pr-summary/internal/github"
	"github.com/marcin-skalski/pr-summary/internal/logging"
	"github.com/marcin-skalski/pr-summary/internal/summary"
	"github.com/marcin-skalski/pr-summary/internal/table"
)

// Set via -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("pr-summary"),
		kong.Description("Summarise open pull requests as a markdown table."),
		kong.Vars{"version": "pr-summary " + Version},
		kong.UsageOnError(),
	)

	cfg, err := config.Load(cli.Config, cli.flags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.SetupLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setup logger: %v\n", err)
		os.Exit(1)
	}
	// Correlates lines from one invocation in the shared log file.
	logger = logger.With("run", uuid.NewString())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err = run(ctx, cfg, logger, os.Stdout)
	stop()
	if err != nil {
		logger.Error("pr-summary failed", "err", err)
		_ = logging.CloseFile()
		os.Exit(1)
	}
	_ = logging.CloseFile()
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	token, err := github.ResolveToken(ctx, cfg.Token, logger)
	if err != nil {
		return err
	}

	gh, err := github.NewClient(token, cfg.APIURL, logger)
	if err != nil {
		return err
	}

	return render(ctx, gh, cfg, logger, out)
}

func render(ctx context.Context, src summary.Source, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	b := summary.New(src, summary.Options{
		Owner:       cfg.Owner,
		Repo:        cfg.Repo,
		PR:          cfg.PR,
		MaxAge:      cfg.MaxAge,
		AgeBasis:    summary.AgeBasis(cfg.AgeBasis),
		CheckSuites: cfg.CheckSuites,
	}, logger)

	rows, err := b.Rows(ctx)
	if err != nil {
		return err
	}

	t := table.New(summary.Headers...)
	for _, r := range rows {
		t.AddRow(r.Checks.Tone(), r.Cells()...)
	}

	switch cfg.Format {
	case "pretty":
		_, err = fmt.Fprintln(out, t.Pretty())
	default:
		_, err = fmt.Fprint(out, t.Markdown())
	}
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	logger.Debug("table written", "rows", t.Len())
	return nil
}
