package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"cfb-matchups-service/internal/domain/matchups"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

func newFetchCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the sheet once and print its rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, elapsed, err := opts.fetch(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), ds)
			}
			if err := writeTable(cmd.OutOrStdout(), ds); err != nil {
				return err
			}
			cmd.PrintErrln(fetchSummary(len(ds), elapsed))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print rows as JSON instead of a table")

	return cmd
}

func writeJSON(w io.Writer, ds matchups.Dataset) error {
	if ds == nil {
		ds = matchups.Dataset{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ds)
}

func writeTable(w io.Writer, ds matchups.Dataset) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "AWAY\tSPREAD\tHOME\tSPREAD\tPREDICTED OUTCOME")
	for _, row := range ds {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			row.AwayTeam, dash(row.AwaySpread, row.HasAwaySpread()),
			row.HomeTeam, dash(row.HomeSpread, row.HasHomeSpread()),
			row.PredictedOutcome,
		)
	}
	return tw.Flush()
}

func dash(value string, shown bool) string {
	if !shown {
		return "-"
	}
	return value
}

func fetchSummary(rows int, elapsed time.Duration) string {
	noun := "matchups"
	if rows == 1 {
		noun = "matchup"
	}
	return fmt.Sprintf("%s %s fetched in %s", humanize.Comma(int64(rows)), noun, elapsed.Round(time.Millisecond))
}
