// Package cmd implements the hurl2bruno CLI.
package cmd

import (
	"context"

	"github.com/realworld-conformance/hurl2bruno/internal/config"
	"github.com/realworld-conformance/hurl2bruno/internal/converter"
	"go.followtheprocess.codes/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

const long = `
hurl2bruno keeps the Bruno conformance collection in sync with the Hurl
test sources. By default it wipes the destination directory and rebuilds
the whole collection: one folder per .hurl file, one numbered .bru file
per request, plus the shared collection scaffolding.

With --check nothing is overwritten. The collection is regenerated into a
scratch directory, diffed file by file against the committed one, and any
missing, extra or changed files are reported with a non-zero exit so CI
can gate on drift.

Settings come from hurl2bruno.toml if present, flags override the file.
`

// Build builds and returns the hurl2bruno CLI.
func Build(ctx context.Context) (*cli.Command, error) {
	var (
		source     string
		dest       string
		configPath string
		report     string
		check      bool
		showDiff   bool
		yes        bool
		debug      bool
	)

	return cli.New(
		"hurl2bruno",
		cli.Short("Convert the Hurl conformance tests to a Bruno collection"),
		cli.Long(long),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Regenerate the Bruno collection", "hurl2bruno --yes"),
		cli.Example("Verify the committed collection is in sync", "hurl2bruno --check"),
		cli.Example("Show unified diffs for drifted files", "hurl2bruno --check --diff"),
		cli.Example("Convert a different tree", "hurl2bruno --source ./api/hurl --dest ./api/bruno"),
		cli.Allow(cli.NoArgs()),
		cli.Flag(&source, "source", 's', "", "Directory containing the .hurl sources"),
		cli.Flag(&dest, "dest", 'o', "", "Directory holding the Bruno collection"),
		cli.Flag(&configPath, "config", 'c', config.DefaultFile, "Path to the config file"),
		cli.Flag(&check, "check", cli.NoShortHand, false, "Report drift instead of overwriting"),
		cli.Flag(&showDiff, "diff", cli.NoShortHand, false, "Show unified diffs for changed files (with --check)"),
		cli.Flag(&report, "report", cli.NoShortHand, "", "Write a YAML drift report to this file (with --check)"),
		cli.Flag(&yes, "yes", 'y', false, "Skip the confirmation prompt before overwriting"),
		cli.Flag(&debug, "debug", 'd', false, "Enable debug logs"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if source != "" {
				cfg.Source = source
			}

			if dest != "" {
				cfg.Dest = dest
			}

			options := converter.Options{
				Source:     cfg.Source,
				Dest:       cfg.Dest,
				Collection: cfg.Collection,
				Host:       cfg.Host,
				Report:     report,
				Yes:        yes,
				Diff:       showDiff,
			}

			app := converter.New(debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())

			if check {
				return app.Check(ctx, options)
			}

			return app.Generate(ctx, options)
		}),
	)
}
