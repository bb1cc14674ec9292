// Package config reads the TOML configuration of the police records CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kjk/policerecords/autocorrect"
	"github.com/kjk/policerecords/inbox"
	"github.com/kjk/policerecords/storage"
)

// DefaultPath is where the CLI looks for its configuration
const DefaultPath = "policerecords.toml"

type Config struct {
	// storage file, must end with .txt
	StoragePath string `toml:"storage_path"`
	// if empty, logs only go to stdout
	LogDir  string `toml:"log_dir"`
	Verbose bool   `toml:"verbose"`
	// known commands, used to suggest a fix for a misspelled one
	Commands []string `toml:"commands"`
	// user id => inbox file
	Inboxes       map[string]string `toml:"inboxes"`
	InboxFallback string            `toml:"inbox_fallback"`
}

// Default returns the configuration used when there's no config file
func Default() *Config {
	return &Config{
		StoragePath:   storage.DefaultPath,
		Commands:      slices.Clone(autocorrect.DefaultCommands),
		Inboxes:       maps.Clone(inbox.DefaultTable),
		InboxFallback: inbox.DefaultFallback,
	}
}

// Load reads config from path. Values not set in the file keep their
// defaults. A missing file is not an error, Default() is returned.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config.Load('%s'): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("config.Load('%s'): unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err = c.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load('%s'): %w", path, err)
	}
	return c, nil
}

// Validate checks values that would otherwise only fail later
func (c *Config) Validate() error {
	if !storage.IsValidPath(c.StoragePath) {
		return &storage.InvalidPathError{Path: c.StoragePath}
	}
	if len(c.Commands) == 0 {
		return errors.New("commands should not be empty")
	}
	return nil
}

// Dictionary returns the autocorrect dictionary for c.Commands
func (c *Config) Dictionary() *autocorrect.Dictionary {
	return autocorrect.New(c.Commands)
}

// InboxPaths returns the inbox table for c.Inboxes
func (c *Config) InboxPaths() *inbox.Paths {
	return inbox.New(c.Inboxes, c.InboxFallback)
}
