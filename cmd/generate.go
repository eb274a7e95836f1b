package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fenwick/namesmith/internal/history"
	"github.com/fenwick/namesmith/internal/log"
	"github.com/fenwick/namesmith/internal/naming"
	"github.com/fenwick/namesmith/internal/tracing"
)

var (
	genOutput   string
	genNoHeader bool
	genLimit    int64
	genPlain    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [name-set]",
	Short: "Generate every name combination for a name set",
	Long: `Generate the full cross-product of a name set's template as CSV
(one column per slot) or as rendered names (one per line).

The enumeration is streamed, so arbitrarily large cross-products only ever
hold one row in memory. Rows follow odometer order: the last template slot
varies fastest.

Without a name-set argument the configured active set is used.

Examples:
  # Export the active set to stdout
  namesmith generate

  # Export a specific set to a file
  namesmith generate Locomotion -o locomotion.csv

  # Rendered names instead of CSV columns
  namesmith generate Locomotion --plain

  # Cap the export at 500 rows
  namesmith generate --limit 500`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "",
		"output file (default: stdout)")
	generateCmd.Flags().BoolVar(&genNoHeader, "no-header", false,
		"omit the element-name header row")
	generateCmd.Flags().Int64Var(&genLimit, "limit", 0,
		"refuse exports larger than this many rows (default: export.max_rows)")
	generateCmd.Flags().BoolVar(&genPlain, "plain", false,
		"write delimiter-joined names instead of CSV columns")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	_, project, err := loadProject(ctx, provider)
	if err != nil {
		return err
	}

	setName := cfg.ActiveNameSet
	if len(args) > 0 {
		setName = args[0]
	}
	if setName == "" {
		if sets := project.NameSets.List(); len(sets) > 0 {
			setName = sets[0].Name
		}
	}
	if err := project.SetActive(setName); err != nil {
		return fmt.Errorf("name set %q: %w", setName, err)
	}

	g, err := project.Generator()
	if err != nil {
		return err
	}
	if reason, empty := g.EmptyReason(); empty {
		return fmt.Errorf("nothing to generate: %s", reason)
	}

	opts := naming.ExportOptions{
		IncludeHeader: cfg.Export.IncludeHeader && !genNoHeader,
		MaxRows:       cfg.Export.MaxRows,
	}
	if cmd.Flags().Changed("limit") {
		opts.MaxRows = genLimit
	}

	var out io.Writer = os.Stdout
	destination := "-"
	if genOutput != "" {
		f, err := os.Create(genOutput) //nolint:gosec // G304: user-chosen export path
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
		destination = genOutput
	}

	var rows int64
	format := history.FormatCSV
	if genPlain {
		format = history.FormatPlain
		rows, err = naming.WritePlain(ctx, out, g, opts)
		if err == nil {
			_, err = io.WriteString(out, "\n")
		}
	} else {
		rows, err = naming.WriteCSV(ctx, out, g, opts)
	}
	if err != nil {
		return fmt.Errorf("exporting %q: %w", setName, err)
	}

	if repo, repoErr := openHistory(); repoErr == nil && repo != nil {
		defer func() { _ = repo.Close() }()
		rec := history.NewExportRecord(setName, rows, format, destination)
		if recErr := repo.Record(rec); recErr != nil {
			log.Warn(log.CatDB, "Failed to record export", "error", recErr)
		}
	}

	if genOutput != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d names to %s\n", rows, genOutput)
	}
	return nil
}
