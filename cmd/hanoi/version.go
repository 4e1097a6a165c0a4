package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/hanoi"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of hanoi",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hanoi version %s\n", strings.TrimSpace(hanoi.Version))
		},
	}
}
