// Package journal answers the questions the views ask of a store: which
// entry belongs to a calendar date, what a day's detail record holds and
// how the month grid and progress numbers look.
package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/models"
	"github.com/julianstephens/journey/internal/storage"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrNoEntry     = errors.New("no entry recorded for this date")
)

type Service struct {
	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock replaces the clock used for "today".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Today is the current civil date at midnight UTC.
func (s *Service) Today() time.Time {
	t := s.now()
	return civil(t.Year(), t.Month(), t.Day())
}

// Store exposes the underlying provider.
func (s *Service) Store() storage.Provider {
	return s.store
}

// ParseDate parses a strict YYYY-MM-DD string into a civil date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// ParseMonth parses YYYY-MM.
func ParseMonth(value string) (int, time.Month, error) {
	t, err := time.Parse(constants.MonthFormat, value)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t.Year(), t.Month(), nil
}

func civil(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// EntryFor returns the calendar entry whose date equals t formatted as
// YYYY-MM-DD.
func (s *Service) EntryFor(t time.Time) (models.DailyEntry, bool, error) {
	entries, err := s.store.GetAllEntries()
	if err != nil {
		return models.DailyEntry{}, false, fmt.Errorf("failed to load entries: %w", err)
	}
	key := FormatDate(t)
	for _, e := range entries {
		if e.Date == key {
			return e, true, nil
		}
	}
	return models.DailyEntry{}, false, nil
}

// Day resolves a /day/{date} route parameter to its detail record.
func (s *Service) Day(value string) (*Day, error) {
	t, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	detail, err := s.store.GetDay(FormatDate(t))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNoEntry, FormatDate(t))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load day %s: %w", value, err)
	}
	return &Day{DayDetail: detail, Time: t}, nil
}

// EntryDates lists the dates that have a calendar entry, newest first.
func (s *Service) EntryDates() ([]time.Time, error) {
	entries, err := s.store.GetAllEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	out := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		t, err := ParseDate(e.Date)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Latest is the newest date with an entry, or today when there are none.
func (s *Service) Latest() time.Time {
	dates, err := s.EntryDates()
	if err != nil || len(dates) == 0 {
		return s.Today()
	}
	latest := dates[0]
	for _, d := range dates[1:] {
		if d.After(latest) {
			latest = d
		}
	}
	return latest
}
