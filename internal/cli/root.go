package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/julianstephens/journey/internal/config"
	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/journal"
	"github.com/julianstephens/journey/internal/storage"
)

type Context struct {
	Store storage.Provider
	// StoreConfig is the raw --store value the provider was opened from.
	StoreConfig string
	Journal     *journal.Service
	Site        *config.Holder
	SitePath    string
	Debug       bool
	// Out receives command output; nil means stdout.
	Out io.Writer
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// ResolveStore picks the store config: the flag or env value first, then
// the site file, then the built-in fixtures.
func ResolveStore(flag string, site config.Site) string {
	switch {
	case flag != "":
		return flag
	case site.Store != "":
		return site.Store
	default:
		return constants.DefaultStore
	}
}

// ResolveAddr picks the listen address the same way ResolveStore does.
func ResolveAddr(flag string, site config.Site) string {
	switch {
	case flag != "":
		return flag
	case site.Addr != "":
		return site.Addr
	default:
		return constants.DefaultAddr
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
