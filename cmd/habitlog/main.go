package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/julianstephens/habitlog/internal/cli"
	"github.com/julianstephens/habitlog/internal/cli/backups"
	"github.com/julianstephens/habitlog/internal/cli/habits"
	"github.com/julianstephens/habitlog/internal/cli/system"
	"github.com/julianstephens/habitlog/internal/constants"
	"github.com/julianstephens/habitlog/internal/errors"
	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/storage"
	"github.com/julianstephens/habitlog/internal/storage/sqlite"
	"github.com/julianstephens/habitlog/internal/validation"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `name:"db" help:"Database file path." type:"path" default:"${default_db}"`
	Debug   bool   `help:"Enable debug logging to stderr."`
	NoSeed  bool   `help:"Do not seed an empty database with sample habits on startup."`

	Menu   cli.MenuCmd      `cmd:"" help:"Run the interactive numbered menu." default:"1"`
	Init   system.InitCmd   `cmd:"" help:"Initialize habitlog storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	List   habits.ListCmd   `cmd:"" help:"List all habit records."`
	Add    habits.AddCmd    `cmd:"" help:"Insert a habit record."`
	Delete habits.DeleteCmd `cmd:"" help:"Delete a habit record by id."`
	Update habits.UpdateCmd `cmd:"" help:"Update one field of a habit record."`
	Seed   habits.SeedCmd   `cmd:"" help:"Seed an empty database with sample habits."`
	Browse system.BrowseCmd `cmd:"" help:"Browse and delete habits in a full-screen view."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Log quantified daily habits in a local SQLite database"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":    constants.Version,
			"default_db": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.DB),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	logger.With("session", uuid.NewString())
	logger.Debug("Starting", "command", ctx.Command(), "db", CLI.DB)

	store := sqlite.NewStore(CLI.DB)
	defer store.Close()

	appCtx := &cli.Context{
		Store:  store,
		Clock:  validation.SystemClock{},
		Seeder: storage.DefaultSeeder(),
		In:     os.Stdin,
		Out:    os.Stdout,

		SkipSeed: CLI.NoSeed,
	}

	// init and doctor open the store themselves
	switch name := ctx.Selected().Name; name {
	case "init", "doctor":
	default:
		if err := store.Init(); err != nil {
			store.Close()
			errors.Fatal(err)
		}
		if !appCtx.SkipSeed && name != "seed" {
			if _, err := appCtx.Seed(); err != nil {
				store.Close()
				errors.Fatal(err)
			}
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
