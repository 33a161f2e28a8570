package constants

import "time"

const (
	AppName           = "journey"
	Version           = "v0.1.0"
	DefaultConfigDir  = "~/.config/journey"
	DefaultStore      = "memory"
	DefaultAddr       = ":8080"
	DefaultSiteConfig = "~/.config/journey/site.yaml"

	// DateFormat is the canonical day key used by entries and routes (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is the month selector format (YYYY-MM)
	MonthFormat = "2006-01"

	// Display layouts
	LongDateFormat   = "Monday, January 2, 2006"
	MediumDateFormat = "January 2, 2006"
	ShortDateFormat  = "Mon, Jan 2"
	MonthDayFormat   = "Jan 2"
	MonthTitleFormat = "January 2006"

	// DayRoutePrefix is the path prefix of the per-day detail page
	DayRoutePrefix = "/day/"

	// NoEntryMessage is shown wherever a date has no recorded entry
	NoEntryMessage = "No entry recorded for this date."

	// NoEntryDescription is the summary card subtitle for dates without entries
	NoEntryDescription = "No entry for this date"

	// EntryDescription is the summary card subtitle for dates with entries
	EntryDescription = "Daily progress summary"

	// SelectDateTitle is shown when no date is selected
	SelectDateTitle = "Select a Date"

	// Server constants
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 10 * time.Second
	WatchDebounce     = 200 * time.Millisecond

	// Log constants
	LogDirName    = "logs"
	LogFileName   = "journey.log"
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28

	// RequestIDHeader carries the per-request id set by the web middleware
	RequestIDHeader = "X-Request-ID"
)
