package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/journey/internal/cli"
	"github.com/julianstephens/journey/internal/config"
	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/errors"
	"github.com/julianstephens/journey/internal/journal"
	"github.com/julianstephens/journey/internal/logger"
	"github.com/julianstephens/journey/internal/storage"
)

var CLI struct {
	Version   kong.VersionFlag
	Store     string `help:"Store: 'memory' for the built-in journal, a SQLite file path, or a PostgreSQL connection string without a password. Falls back to the site config, then memory." env:"JOURNEY_STORE"`
	ConfigDir string `help:"Directory for logs." type:"path" default:"${config_dir}" env:"JOURNEY_CONFIG_DIR"`
	Site      string `help:"Site config file (YAML)." type:"path" default:"${site_config}" env:"JOURNEY_SITE"`
	Debug     bool   `help:"Log debug output to stderr."`

	Tui      cli.TuiCmd      `cmd:"" help:"Browse the journal in the terminal." default:"1"`
	Serve    cli.ServeCmd    `cmd:"" help:"Serve the journal over HTTP."`
	Day      cli.DayCmd      `cmd:"" help:"Show the full record for a day."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show a month with the days that have entries."`
	Tasks    cli.TasksCmd    `cmd:"" help:"List daily tasks."`
	Articles cli.ArticlesCmd `cmd:"" help:"List learning articles."`
	Writings cli.WritingsCmd `cmd:"" help:"List writings."`
	Updates  cli.UpdatesCmd  `cmd:"" help:"List reading and practice updates."`
	Profile  cli.ProfileCmd  `cmd:"" help:"Show the profile and progress."`
	Init     cli.InitCmd     `cmd:"" help:"Initialize a SQL store and seed it with the journal."`
	Validate cli.ValidateCmd `cmd:"" help:"Check the journal data for conflicts."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of a SQLite store." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a SQLite store from a backup."`
	} `cmd:"" help:"Manage SQLite store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A daily learning journal: calendar, day details, tasks, articles and writings."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_dir":  constants.DefaultConfigDir,
			"site_config": constants.DefaultSiteConfig,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: CLI.ConfigDir,
		Stderr:    ctx.Command() == "serve",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	site, err := config.Load(CLI.Site)
	if err != nil {
		logger.Warn("using default site config", "path", CLI.Site, "err", err)
	}

	storeCfg := cli.ResolveStore(CLI.Store, site)
	store, err := storage.Open(storeCfg)
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	// init creates the store; every other command needs it loaded.
	if ctx.Command() != "init" {
		if err := store.Load(); err != nil {
			store.Close()
			errors.Fatal(err)
		}
	}

	appCtx := &cli.Context{
		Store:       store,
		StoreConfig: storeCfg,
		Journal:     journal.New(store),
		Site:        config.NewHolder(site),
		SitePath:    CLI.Site,
		Debug:       CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
