package journal

import (
	"time"

	"github.com/julianstephens/journey/internal/constants"
)

func FormatDate(t time.Time) string { return t.Format(constants.DateFormat) }

// FormatLong renders "Monday, January 15, 2024".
func FormatLong(t time.Time) string { return t.Format(constants.LongDateFormat) }

// FormatMedium renders "January 15, 2024".
func FormatMedium(t time.Time) string { return t.Format(constants.MediumDateFormat) }

// FormatShort renders "Mon, Jan 15".
func FormatShort(t time.Time) string { return t.Format(constants.ShortDateFormat) }

// FormatMonthDay renders "Jan 15".
func FormatMonthDay(t time.Time) string { return t.Format(constants.MonthDayFormat) }

// FormatISO reformats a stored YYYY-MM-DD string with layout, returning the
// input unchanged when it does not parse.
func FormatISO(value, layout string) string {
	t, err := ParseDate(value)
	if err != nil {
		return value
	}
	return t.Format(layout)
}

// DayPath is the detail route for t.
func DayPath(t time.Time) string {
	return constants.DayRoutePrefix + FormatDate(t)
}
