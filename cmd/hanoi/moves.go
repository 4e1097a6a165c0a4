package main

import (
	"github.com/aretw0/hanoi/internal/cli"
	"github.com/aretw0/hanoi/internal/config"
	"github.com/spf13/cobra"
)

func newMovesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moves",
		Short: "List the moves of a solve instead of animating it",
		Long:  `Prints every move as a table: move number, disk, source peg and destination peg (A, B, C from left to right).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			height, _ := cmd.Flags().GetUint("height")
			limit, _ := cmd.Flags().GetInt("limit")
			raw, _ := cmd.Flags().GetBool("raw")
			format, _ := cmd.Flags().GetString("format")
			disk, _ := cmd.Flags().GetInt("highlight")

			return cli.ListMoves(cli.MovesOptions{
				Height:    height,
				Limit:     limit,
				Raw:       raw,
				Out:       cmd.OutOrStdout(),
				Format:    format,
				Highlight: disk,
			})
		},
	}

	cmd.Flags().UintP("height", "N", config.DefaultHeight, "Height of the tower")
	cmd.Flags().Int("limit", 1000, "Maximum number of moves listed (0 lists all)")
	cmd.Flags().Bool("raw", false, "Print markdown without rendering it")
	cmd.Flags().String("format", cli.FormatTable, "Output format: table or mermaid")
	cmd.Flags().Int("highlight", 0, "Disk drawn with solid arrows in the mermaid diagram")
	return cmd
}
