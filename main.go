package main

import (
	"log/slog"
	"os"

	"silcount/bucket"
	"silcount/count"
	"silcount/parallel"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Workers   int    `help:"Number of images processed in parallel, 0 for one per CPU" default:"0" env:"SILCOUNT_WORKERS"`
	LogLevel  string `help:"Log level" enum:"debug,info,warn,error" default:"info" env:"SILCOUNT_LOG_LEVEL"`
	LogFormat string `help:"Log format" enum:"text,json" default:"text"`

	Count  count.CLICmd  `cmd:"" default:"withargs" help:"Count silhouettes in images"`
	Bucket bucket.CLICmd `cmd:"" help:"Sort images into folders by silhouette count"`
}

func setupLogging(level, format string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("silcount"),
		kong.Description("Count the foreground shapes of images against their border color."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "silcount.json", "~/.config/silcount.json"),
	)

	setupLogging(cli.LogLevel, cli.LogFormat)
	slog.Debug("running", "command", kctx.Command(), "workers", cli.Workers)

	pool := parallel.Start(cli.Workers)
	if err := kctx.Run(pool); err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
