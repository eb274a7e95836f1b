package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fenwick/namesmith/internal/naming"
	"github.com/fenwick/namesmith/internal/tracing"
)

var (
	setsGroup string
	setsTag   string
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the project's name sets",
	Long: `List every name set in the project with its template, group, and tags.

Use --group for an exact group match and --tag for a case-insensitive
substring match against tags. Filters narrow the listing the same way they
narrow the set pane in the TUI; creation order is preserved.

Examples:
  # All sets
  namesmith sets

  # Only sets in the SFX group
  namesmith sets --group SFX

  # Sets tagged with anything containing "loco"
  namesmith sets -t loco`,
	RunE: runSets,
}

func init() {
	setsCmd.Flags().StringVarP(&setsGroup, "group", "g", "", "filter by exact group")
	setsCmd.Flags().StringVarP(&setsTag, "tag", "t", "", "filter by tag substring")
	rootCmd.AddCommand(setsCmd)
}

func runSets(cmd *cobra.Command, args []string) error {
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

	// An unset --group means no group filter; the engine's match-all token
	// is GroupAll.
	group := setsGroup
	if group == "" {
		group = naming.GroupAll
	}
	names := project.NameSets.Filter(group, setsTag)
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No name sets match.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTEMPLATE\tGROUP\tTAGS")
	for _, name := range names {
		set := project.NameSets.Get(name)
		marker := " "
		if name == cfg.ActiveNameSet {
			marker = "*"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n",
			marker, set.Name,
			strings.Join(set.Template, set.Delimiter),
			set.Group,
			strings.Join(set.Tags, ","),
		)
	}
	return w.Flush()
}
