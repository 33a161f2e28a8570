package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/journey/internal/backup"
	"github.com/julianstephens/journey/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting an existing SQLite database before initialization."`
}

func (c *InitCmd) Run(ctx *Context) error {
	cfg := ctx.StoreConfig
	if storage.IsMemory(cfg) {
		return fmt.Errorf("init needs a SQLite path or PostgreSQL connection string, set --store or JOURNEY_STORE")
	}
	if storage.IsPostgres(cfg) {
		if err := storage.ValidateConnString(cfg); err != nil {
			return err
		}
	}

	path := ctx.Store.GetConfigPath()
	if c.Force && !storage.IsPostgres(cfg) {
		if _, err := os.Stat(path); err == nil {
			info, err := backup.NewManager(path).Create()
			if err != nil {
				return fmt.Errorf("failed to backup existing database: %w", err)
			}
			fmt.Fprintf(ctx.out(), "Backed up existing database to: %s\n", info.Path)
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Fprintf(ctx.out(), "Deleted existing database at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.out(), "Initialized journey storage at: %s\n", path)
	return nil
}
