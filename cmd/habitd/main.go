package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/nfielder/habitd/internal/cli"
	"github.com/nfielder/habitd/internal/cli/system"
	"github.com/nfielder/habitd/internal/constants"
	"github.com/nfielder/habitd/internal/digest"
	"github.com/nfielder/habitd/internal/engine"
	"github.com/nfielder/habitd/internal/logger"
	"github.com/nfielder/habitd/internal/notifier"
	"github.com/nfielder/habitd/internal/quotes"
	"github.com/nfielder/habitd/internal/reminder"
	"github.com/nfielder/habitd/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"string" default:"~/.config/habitd/habitd.db"`
	Debug   bool   `help:"Enable verbose logging to stderr."`

	Init     system.InitCmd   `cmd:"" help:"Initialize habitd storage."`
	Habit    cli.HabitCmd     `cmd:"" help:"Manage habits and habit tracking."`
	Remind   cli.RemindCmd    `cmd:"" help:"Manage habit reminders."`
	Feed     cli.FeedCmd      `cmd:"" help:"Report externally sourced habit data."`
	Settings cli.SettingsCmd  `cmd:"" help:"Manage application settings."`
	Digest   cli.DigestCmd    `cmd:"" help:"Manage the daily digest."`
	Notify   system.NotifyCmd `cmd:"" hidden:"" help:"Deliver due notifications (run from cron)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streaks, reminders and a daily digest"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	dbPath := expandHome(CLI.Config)
	configDir := filepath.Dir(dbPath)

	// optional overrides (quote feed URL etc.) live next to the database
	_ = godotenv.Load(filepath.Join(configDir, ".env"))

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	store := sqlite.NewStore(dbPath)
	tray := notifier.New()
	sched := reminder.NewScheduler(store, reminder.NewStoreSink(store), tray)
	eng := engine.New(store, sched)
	dig := digest.NewScheduler(store, quotes.New(), tray)

	appCtx := &cli.Context{
		Store:     store,
		Engine:    eng,
		Reminders: sched,
		Digest:    dig,
		Notifier:  tray,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
