package storage

import (
	"fmt"

	"github.com/julianstephens/journey/internal/fixtures"
	"github.com/julianstephens/journey/internal/models"
)

// MemoryStore serves a fixed dataset. Lookups are linear scans; the
// datasets hold a handful of records.
type MemoryStore struct {
	data models.Dataset
}

// NewMemoryStore returns a store over the built-in fixtures.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: fixtures.Dataset()}
}

// NewMemoryStoreFrom returns a store over ds.
func NewMemoryStoreFrom(ds models.Dataset) *MemoryStore {
	return &MemoryStore{data: ds}
}

func (s *MemoryStore) Init() error  { return nil }
func (s *MemoryStore) Load() error  { return nil }
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) GetProfile() (models.Profile, error) {
	return s.data.Profile.Clone(), nil
}

func (s *MemoryStore) GetProgress() (models.Progress, error) {
	return s.data.Progress, nil
}

func (s *MemoryStore) GetAllEntries() ([]models.DailyEntry, error) {
	return append([]models.DailyEntry(nil), s.data.Entries...), nil
}

func (s *MemoryStore) GetEntry(date string) (models.DailyEntry, error) {
	for _, e := range s.data.Entries {
		if e.Date == date {
			return e, nil
		}
	}
	return models.DailyEntry{}, fmt.Errorf("entry %s: %w", date, ErrNotFound)
}

func (s *MemoryStore) GetDay(date string) (models.DayDetail, error) {
	for _, d := range s.data.Days {
		if d.Date == date {
			return d.Clone(), nil
		}
	}
	return models.DayDetail{}, fmt.Errorf("day %s: %w", date, ErrNotFound)
}

func (s *MemoryStore) GetAllDays() ([]models.DayDetail, error) {
	return models.CloneAll(s.data.Days), nil
}

func (s *MemoryStore) GetAllUpdates() ([]models.Update, error) {
	return models.CloneAll(s.data.Updates), nil
}

func (s *MemoryStore) GetAllTaskDays() ([]models.TaskDay, error) {
	return models.CloneAll(s.data.TaskDays), nil
}

func (s *MemoryStore) GetAllArticles() ([]models.Article, error) {
	return models.CloneAll(s.data.Articles), nil
}

func (s *MemoryStore) GetAllWritings() ([]models.Writing, error) {
	return append([]models.Writing(nil), s.data.Writings...), nil
}

func (s *MemoryStore) GetConfigPath() string {
	return "memory"
}
