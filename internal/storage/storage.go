package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/journey/internal/models"
)

// ErrNotFound is returned (wrapped) when no record matches a lookup key.
var ErrNotFound = errors.New("record not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profile
	GetProfile() (models.Profile, error)
	GetProgress() (models.Progress, error)

	// Calendar
	GetAllEntries() ([]models.DailyEntry, error)
	GetEntry(date string) (models.DailyEntry, error)
	GetDay(date string) (models.DayDetail, error)
	GetAllDays() ([]models.DayDetail, error)

	// Component datasets
	GetAllUpdates() ([]models.Update, error)
	GetAllTaskDays() ([]models.TaskDay, error)
	GetAllArticles() ([]models.Article, error)
	GetAllWritings() ([]models.Writing, error)

	// Utils
	GetConfigPath() string
}

// IsPostgres reports whether cfg is a PostgreSQL connection string.
func IsPostgres(cfg string) bool {
	return strings.HasPrefix(cfg, "postgres://") || strings.HasPrefix(cfg, "postgresql://")
}

// IsMemory reports whether cfg selects the built-in fixture store.
func IsMemory(cfg string) bool {
	return cfg == "" || cfg == "memory"
}

// Open picks the provider for a store config: "memory" (or empty) for the
// fixtures, a postgres:// URL, or otherwise a SQLite file path.
func Open(cfg string) (Provider, error) {
	switch {
	case IsMemory(cfg):
		return NewMemoryStore(), nil
	case IsPostgres(cfg):
		if HasEmbeddedCredentials(cfg) {
			return nil, ErrEmbeddedCredentials
		}
		return NewPostgresStore(cfg), nil
	default:
		return NewSQLiteStore(cfg), nil
	}
}

// Snapshot reads every dataset from p.
func Snapshot(p Provider) (models.Dataset, error) {
	var ds models.Dataset
	var err error

	if ds.Profile, err = p.GetProfile(); err != nil {
		return ds, fmt.Errorf("failed to get profile: %w", err)
	}
	if ds.Progress, err = p.GetProgress(); err != nil {
		return ds, fmt.Errorf("failed to get progress: %w", err)
	}
	if ds.Entries, err = p.GetAllEntries(); err != nil {
		return ds, fmt.Errorf("failed to get entries: %w", err)
	}
	if ds.Days, err = p.GetAllDays(); err != nil {
		return ds, fmt.Errorf("failed to get days: %w", err)
	}
	if ds.Updates, err = p.GetAllUpdates(); err != nil {
		return ds, fmt.Errorf("failed to get updates: %w", err)
	}
	if ds.TaskDays, err = p.GetAllTaskDays(); err != nil {
		return ds, fmt.Errorf("failed to get task days: %w", err)
	}
	if ds.Articles, err = p.GetAllArticles(); err != nil {
		return ds, fmt.Errorf("failed to get articles: %w", err)
	}
	if ds.Writings, err = p.GetAllWritings(); err != nil {
		return ds, fmt.Errorf("failed to get writings: %w", err)
	}
	return ds, nil
}
