package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/agentmem/pkg/agentmem"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the agentmem version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "agentmem v%s\nmodule: %s\n", agentmem.Version, agentmem.ModulePath)
			return nil
		},
	}
}
