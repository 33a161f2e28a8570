package journal

import (
	"fmt"
	"time"

	"github.com/julianstephens/journey/internal/constants"
)

// Cell is one day of the month grid.
type Cell struct {
	Date     time.Time
	Day      int
	InMonth  bool
	HasEntry bool
	Selected bool
	Today    bool
}

// Month is a Sunday-first calendar grid. Weeks always hold seven cells;
// cells outside the month are padding from the neighbouring months.
type Month struct {
	Year     int
	Month    time.Month
	Title    string
	Weeks    [][7]Cell
	Selected time.Time
}

// Prev returns the year and month before m.
func (m Month) Prev() (int, time.Month) {
	t := civil(m.Year, m.Month, 1).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

// Next returns the year and month after m.
func (m Month) Next() (int, time.Month) {
	t := civil(m.Year, m.Month, 1).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

// Param is the YYYY-MM query value for m.
func (m Month) Param() string {
	return civil(m.Year, m.Month, 1).Format(constants.MonthFormat)
}

// Cells flattens the grid.
func (m Month) Cells() []Cell {
	out := make([]Cell, 0, len(m.Weeks)*7)
	for _, w := range m.Weeks {
		out = append(out, w[:]...)
	}
	return out
}

// Month builds the grid for year/month, flagging days with entries and the
// selected date. A zero selected leaves nothing selected.
func (s *Service) Month(year int, month time.Month, selected time.Time) (Month, error) {
	if month < time.January || month > time.December {
		return Month{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}

	dates, err := s.EntryDates()
	if err != nil {
		return Month{}, err
	}
	hasEntry := make(map[string]bool, len(dates))
	for _, d := range dates {
		hasEntry[FormatDate(d)] = true
	}

	first := civil(year, month, 1)
	last := first.AddDate(0, 1, -1)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	today := FormatDate(s.Today())
	sel := ""
	if !selected.IsZero() {
		sel = FormatDate(selected)
	}

	m := Month{Year: year, Month: month, Title: first.Format(constants.MonthTitleFormat), Selected: selected}
	for day := start; !day.After(last); {
		var week [7]Cell
		for i := range week {
			key := FormatDate(day)
			week[i] = Cell{
				Date:     day,
				Day:      day.Day(),
				InMonth:  day.Month() == month,
				HasEntry: hasEntry[key],
				Selected: key == sel,
				Today:    key == today,
			}
			day = day.AddDate(0, 0, 1)
		}
		m.Weeks = append(m.Weeks, week)
	}
	return m, nil
}
