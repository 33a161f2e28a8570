package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/journey/internal/backup"
	"github.com/julianstephens/journey/internal/storage"
)

type BackupCreateCmd struct{}

type BackupListCmd struct{}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Backup file name or path."`
}

// backupManager returns the manager for a SQLite store.
func backupManager(ctx *Context) (*backup.Manager, error) {
	if storage.IsMemory(ctx.StoreConfig) || storage.IsPostgres(ctx.StoreConfig) {
		return nil, fmt.Errorf("backups are only supported for SQLite stores")
	}
	return backup.NewManager(ctx.Store.GetConfigPath()), nil
}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	info, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.out(), "Created backup: %s\n", info.Path)
	return nil
}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	w := ctx.out()
	if len(backups) == 0 {
		fmt.Fprintf(w, "No backups found in %s\n", mgr.Dir())
		return nil
	}
	fmt.Fprintf(w, "Backups in %s:\n", mgr.Dir())
	for _, b := range backups {
		fmt.Fprintf(w, "  %s  %s  %d KB\n", b.Name(), b.Timestamp.Format("2006-01-02 15:04:05"), b.Size/1024)
	}
	return nil
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	path := c.File
	if _, err := os.Stat(path); os.IsNotExist(err) && !filepath.IsAbs(path) {
		path = filepath.Join(mgr.Dir(), c.File)
	}

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	previous, err := mgr.Restore(path)
	if previous.Path != "" {
		fmt.Fprintf(ctx.out(), "Created backup of current database: %s\n", previous.Name())
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.out(), "Restored %s from %s\n", ctx.Store.GetConfigPath(), path)
	return ctx.Store.Load()
}
