package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"cfb-matchups-service/internal/render"
)

func newRenderCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch the sheet once and write the rendered HTML page",
		Long: `Fetches the sheet and writes the same page the server serves on GET /.
When the sheet has no rows the unavailable fragment is written instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, _, err := opts.fetch(cmd.Context())
			if err != nil {
				return err
			}

			page := render.UnavailableFragment
			if !ds.Empty() {
				if page, err = render.RenderPage(ds); err != nil {
					return fmt.Errorf("render page: %w", err)
				}
			}

			if out == "" || out == "-" {
				_, err = io.WriteString(cmd.OutOrStdout(), page)
				return err
			}
			if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			cmd.PrintErrf("wrote %s to %s\n", humanize.Bytes(uint64(len(page))), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write the page to (default stdout)")

	return cmd
}
