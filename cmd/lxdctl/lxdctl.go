package main

import (
	"log/slog"
	"os"

	"github.com/cruciblehq/lxdctl/internal"
	"github.com/cruciblehq/lxdctl/internal/cli"
)

// The entry point for the lxdctl tool.
//
// Initializes logging and executes the root command. If any error occurs
// during execution, it exits with a non-zero code.
func main() {
	slog.SetDefault(logger())

	slog.Debug("build", "version", internal.VersionString())

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Creates a stderr logger seeded from build-time linker flags.
//
// The level is reconfigured after flag parsing via cli.Execute.
func logger() *slog.Logger {
	internal.LogLevel.Set(logLevel())
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: &internal.LogLevel,
	})
	return slog.New(handler)
}

// Returns the log level derived from build-time linker flags.
func logLevel() slog.Level {
	if internal.IsDebug() {
		return slog.LevelDebug
	}
	if internal.IsQuiet() {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
