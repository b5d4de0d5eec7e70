// Package converter implements the functionality of the program, the CLI
// in package cmd is simply the entrypoint to exported methods here.
package converter

import (
	"io"
	"time"

	"charm.land/log/v2"
)

// Converter is the hurl2bruno application.
type Converter struct {
	stdin  io.Reader   // Interactive prompts read from here
	stdout io.Writer   // Normal program output is written here
	stderr io.Writer   // Logs and errors are written here
	logger *log.Logger // The logger for the application
}

// Options are the settings for a conversion, resolved from the config
// file and command line flags by the caller.
type Options struct {
	// Source is the directory containing the .hurl files.
	Source string

	// Dest is the directory holding the Bruno collection.
	Dest string

	// Collection is the collection name for bruno.json.
	Collection string

	// Host is the default host for the Local environment.
	Host string

	// Report is a path to write a YAML drift report to in check mode,
	// empty means no report file.
	Report string

	// Yes skips the confirmation prompt before overwriting Dest.
	Yes bool

	// Diff shows unified diffs for changed files in check mode.
	Diff bool
}

// New returns a new [Converter].
func New(debug bool, version string, stdin io.Reader, stdout, stderr io.Writer) Converter {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(stderr, log.Options{
		TimeFormat:      time.RFC3339Nano,
		Level:           level,
		Prefix:          "hurl2bruno",
		ReportTimestamp: true,
	})

	logger.SetStyles(logStyles())

	logger.Debug("Built converter", "version", version)

	return Converter{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}
