package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/realworld-conformance/hurl2bruno/internal/config"
	"go.followtheprocess.codes/test"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	test.Ok(t, err)

	test.Equal(t, cfg, config.Default())
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hurl2bruno.toml")

	contents := `source = "api/hurl"
collection = "conduit"
`
	test.Ok(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(path)
	test.Ok(t, err)

	// Values from the file
	test.Equal(t, cfg.Source, "api/hurl")
	test.Equal(t, cfg.Collection, "conduit")

	// Unset values fall back to defaults
	test.Equal(t, cfg.Dest, config.Default().Dest)
	test.Equal(t, cfg.Host, config.Default().Host)
}

func TestLoadFullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hurl2bruno.toml")

	contents := `source = "api/hurl"
dest = "api/bruno"
collection = "conduit"
host = "http://localhost:8080"
`
	test.Ok(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(path)
	test.Ok(t, err)

	test.Equal(t, cfg, config.Config{
		Source:     "api/hurl",
		Dest:       "api/bruno",
		Collection: "conduit",
		Host:       "http://localhost:8080",
	})
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hurl2bruno.toml")
	test.Ok(t, os.WriteFile(path, []byte("source = [not toml"), 0o644))

	_, err := config.Load(path)
	test.Err(t, err)
}
