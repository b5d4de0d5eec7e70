package converter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/aymanbagabas/go-udiff"
	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/msg"
	"go.yaml.in/yaml/v4"
	"golang.org/x/sync/errgroup"
)

// Styles for the drift report lines.
const (
	missingStyle = hue.Yellow | hue.Bold
	extraStyle   = hue.Cyan | hue.Bold
	changedStyle = hue.Red | hue.Bold
)

// ErrDrift is returned by [Converter.Check] when the committed collection
// differs from what the sources would generate, so the CLI can exit
// non-zero without wrapping further detail around it, the report has
// already been printed.
var ErrDrift = errors.New("committed collection is out of sync with the Hurl sources")

// driftReport is the classified difference between the regenerated
// collection and the committed one. Each list holds paths relative to the
// collection root, sorted.
type driftReport struct {
	// Missing files would be generated but are not committed.
	Missing []string `yaml:"missing,omitempty"`

	// Extra files are committed but would not be generated.
	Extra []string `yaml:"extra,omitempty"`

	// Changed files exist in both trees with different content.
	Changed []string `yaml:"changed,omitempty"`
}

// empty reports whether no drift was found.
func (d driftReport) empty() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0 && len(d.Changed) == 0
}

// Check implements check mode: regenerate the collection into a scratch
// directory, diff it file by file against the committed one, and report.
// The committed collection is never modified, and the scratch directory
// is removed on every exit path.
func (c Converter) Check(ctx context.Context, options Options) error {
	logger := c.logger.WithPrefix("check").With("source", options.Source, "dest", options.Dest)
	logger.Debug("Checking collection for drift")

	files, err := c.loadSources(options.Source)
	if err != nil {
		return err
	}

	scratch, err := os.MkdirTemp("", "hurl2bruno-check-*")
	if err != nil {
		return fmt.Errorf("could not create scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	if _, err := writeTree(scratch, files, options); err != nil {
		return err
	}

	var generated, committed map[string]string

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		generated, err = loadTree(scratch)

		return err
	})
	group.Go(func() error {
		var err error
		committed, err = loadTree(options.Dest)

		return err
	})

	if err := group.Wait(); err != nil {
		return err
	}

	report := classify(generated, committed)
	if report.empty() {
		msg.Fsuccess(c.stdout, "%s is in sync with %s", options.Dest, options.Source)
		return nil
	}

	c.printDrift(report, generated, committed, options)

	if options.Report != "" {
		if err := writeReport(options.Report, report); err != nil {
			return err
		}

		logger.Debug("Wrote drift report", "file", options.Report)
	}

	return ErrDrift
}

// classify buckets every path present in either tree as missing, extra
// or changed. Paths present in both with identical content are dropped.
func classify(generated, committed map[string]string) driftReport {
	union := make(map[string]struct{}, len(generated))
	for path := range generated {
		union[path] = struct{}{}
	}

	for path := range committed {
		union[path] = struct{}{}
	}

	var report driftReport

	for _, path := range slices.Sorted(maps.Keys(union)) {
		want, inGenerated := generated[path]
		got, inCommitted := committed[path]

		switch {
		case !inCommitted:
			report.Missing = append(report.Missing, path)
		case !inGenerated:
			report.Extra = append(report.Extra, path)
		case want != got:
			report.Changed = append(report.Changed, path)
		}
	}

	return report
}

// printDrift writes the human readable drift report to stdout.
func (c Converter) printDrift(report driftReport, generated, committed map[string]string, options Options) {
	for _, path := range report.Missing {
		fmt.Fprintf(c.stdout, "%s %s\n", missingStyle.Text("missing:"), path)
	}

	for _, path := range report.Extra {
		fmt.Fprintf(c.stdout, "%s %s\n", extraStyle.Text("extra:"), path)
	}

	for _, path := range report.Changed {
		fmt.Fprintf(c.stdout, "%s %s\n", changedStyle.Text("changed:"), path)

		if options.Diff {
			fmt.Fprint(c.stdout, udiff.Unified("committed/"+path, "generated/"+path, committed[path], generated[path]))
		}
	}
}

// writeReport writes the machine readable YAML drift report for CI.
func writeReport(path string, report driftReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("could not marshal drift report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write drift report: %w", err)
	}

	return nil
}

// loadTree recursively collects {relative path: content} for every file
// under root. A missing root is an empty tree, not an error, so a first
// run against a repo with no committed collection reports everything as
// missing rather than failing.
func loadTree(root string) (map[string]string, error) {
	tree := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		tree[filepath.ToSlash(rel)] = string(content)

		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}

		return nil, fmt.Errorf("could not walk %s: %w", root, err)
	}

	return tree, nil
}
