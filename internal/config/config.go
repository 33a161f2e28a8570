// Package config loads the optional site file that brands the web pages and
// can override the server address and store.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle    = "Learning Journey"
	DefaultSubtitle = "Daily progress in Data Structures & Algorithms and continuous reading habits"
	DefaultFooter   = "© 2024 Learning Journey. Built with passion for continuous improvement."
)

// Site is the YAML site file.
type Site struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Footer   string `yaml:"footer"`
	Addr     string `yaml:"addr,omitempty"`
	Store    string `yaml:"store,omitempty"`
}

func Default() Site {
	return Site{
		Title:    DefaultTitle,
		Subtitle: DefaultSubtitle,
		Footer:   DefaultFooter,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Site, error) {
	site := Default()
	if path == "" {
		return site, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return site, nil
	}
	if err != nil {
		return site, fmt.Errorf("failed to read site config: %w", err)
	}
	if err := yaml.Unmarshal(data, &site); err != nil {
		return Default(), fmt.Errorf("failed to parse site config %s: %w", path, err)
	}
	if strings.TrimSpace(site.Title) == "" {
		site.Title = DefaultTitle
	}
	return site, nil
}

// Save writes site to path as YAML.
func Save(path string, site Site) error {
	data, err := yaml.Marshal(site)
	if err != nil {
		return fmt.Errorf("failed to encode site config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write site config: %w", err)
	}
	return nil
}

// Holder publishes the current Site to concurrent readers.
type Holder struct {
	v atomic.Pointer[Site]
}

func NewHolder(site Site) *Holder {
	h := &Holder{}
	h.Set(site)
	return h
}

// Get returns a snapshot; callers never share the stored value.
func (h *Holder) Get() Site {
	return *h.v.Load()
}

func (h *Holder) Set(site Site) {
	h.v.Store(&site)
}
