package converter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/realworld-conformance/hurl2bruno/internal/bruno"
	"github.com/realworld-conformance/hurl2bruno/internal/hurl"
	"go.followtheprocess.codes/msg"
)

// sourceFile is one parsed .hurl file.
type sourceFile struct {
	name     string // Base name, e.g. "auth_register.hurl"
	requests []hurl.Request
}

// Generate implements the default mode: wipe the destination and rebuild
// the whole Bruno collection from the Hurl sources.
//
// Regeneration is destructive but idempotent, running it twice against
// unchanged sources produces byte-identical output.
func (c Converter) Generate(ctx context.Context, options Options) error {
	logger := c.logger.WithPrefix("generate").With("source", options.Source, "dest", options.Dest)
	logger.Debug("Generating Bruno collection")

	files, err := c.loadSources(options.Source)
	if err != nil {
		return err
	}

	if !options.Yes {
		overwrite, err := c.confirmOverwrite(ctx, options.Dest)
		if err != nil {
			return err
		}

		if !overwrite {
			fmt.Fprintln(c.stdout, "Nothing written")
			return nil
		}
	}

	if err := os.RemoveAll(options.Dest); err != nil {
		return fmt.Errorf("could not remove %s: %w", options.Dest, err)
	}

	written, err := writeTree(options.Dest, files, options)
	if err != nil {
		return err
	}

	logger.Debug("Generated collection", "files", written)

	msg.Fsuccess(c.stdout, "wrote %d files to %s", written, options.Dest)

	return nil
}

// loadSources parses every .hurl file directly under dir, in
// lexicographic order so regeneration is deterministic.
func (c Converter) loadSources(dir string) ([]sourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read source directory: %w", err)
	}

	var files []sourceFile

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".hurl" {
			continue
		}

		src, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", entry.Name(), err)
		}

		requests := hurl.Parse(src)
		c.logger.Debug("Parsed source file", "file", entry.Name(), "requests", len(requests))

		files = append(files, sourceFile{name: entry.Name(), requests: requests})
	}

	return files, nil
}

// writeTree renders the full collection under root, returning the number
// of files written.
func writeTree(root string, files []sourceFile, options Options) (int, error) {
	written := 0

	for path, content := range bruno.Scaffolding(options.Collection, options.Host) {
		full := filepath.Join(root, filepath.FromSlash(path))

		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return written, fmt.Errorf("could not create %s: %w", filepath.Dir(full), err)
		}

		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			return written, fmt.Errorf("could not write %s: %w", full, err)
		}

		written++
	}

	for _, file := range files {
		folder := filepath.Join(root, bruno.FolderName(file.name))

		if err := os.MkdirAll(folder, 0o755); err != nil {
			return written, fmt.Errorf("could not create %s: %w", folder, err)
		}

		for i, request := range file.requests {
			seq := i + 1
			path := filepath.Join(folder, bruno.FileName(request, seq))

			if err := os.WriteFile(path, []byte(bruno.Render(request, seq)), 0o644); err != nil {
				return written, fmt.Errorf("could not write %s: %w", path, err)
			}

			written++
		}
	}

	return written, nil
}

// confirmOverwrite asks before wiping an existing destination. A missing
// destination needs no confirmation.
func (c Converter) confirmOverwrite(ctx context.Context, dest string) (bool, error) {
	if _, err := os.Stat(dest); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}

		return false, fmt.Errorf("could not stat %s: %w", dest, err)
	}

	var overwrite bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Overwrite %s?", dest)).
				Description("Generating wipes the destination and rebuilds it from the Hurl sources").
				Value(&overwrite),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}

	return overwrite, nil
}
