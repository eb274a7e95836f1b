package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent exports",
	Long: `Show the most recent exports recorded in the history database,
newest first.

Examples:
  # The last 10 exports
  namesmith history

  # Everything ever recorded
  namesmith history -n 0`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10,
		"number of records to show (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	repo, err := openHistory()
	if err != nil {
		return err
	}
	if repo == nil {
		return fmt.Errorf("export history is disabled (history.enabled: false)")
	}
	defer func() { _ = repo.Close() }()

	records, err := repo.Recent(historyLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No exports recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tNAME SET\tROWS\tFORMAT\tDESTINATION")
	for _, rec := range records {
		dest := rec.Destination
		if dest == "" {
			dest = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.NameSet, rec.Rows, rec.Format, dest,
		)
	}
	return w.Flush()
}
