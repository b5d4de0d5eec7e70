// Package config loads the hurl2bruno config file.
//
// Everything has a default so the tool works with no config file at all,
// the file only needs to name the values that differ. Command line flags
// override the file, that merge happens in the CLI layer.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the config file looked for when --config is not given.
const DefaultFile = "hurl2bruno.toml"

// Config holds the conversion settings.
type Config struct {
	// Source is the directory containing the .hurl files.
	Source string `toml:"source"`

	// Dest is the directory the Bruno collection is written to.
	Dest string `toml:"dest"`

	// Collection is the collection name declared in bruno.json.
	Collection string `toml:"collection"`

	// Host is the default API host declared in the Local environment.
	Host string `toml:"host"`
}

// Default returns the configuration used in the absence of a config file.
func Default() Config {
	return Config{
		Source:     "hurl",
		Dest:       "bruno",
		Collection: "realworld-conformance",
		Host:       "http://localhost:3000",
	}
}

// Load reads the config file at path, filling any unset value with its
// default. A missing file is not an error, it simply means all defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var fromFile Config

	_, err := toml.DecodeFile(path, &fromFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("could not load config from %s: %w", path, err)
	}

	if fromFile.Source != "" {
		cfg.Source = fromFile.Source
	}

	if fromFile.Dest != "" {
		cfg.Dest = fromFile.Dest
	}

	if fromFile.Collection != "" {
		cfg.Collection = fromFile.Collection
	}

	if fromFile.Host != "" {
		cfg.Host = fromFile.Host
	}

	return cfg, nil
}
