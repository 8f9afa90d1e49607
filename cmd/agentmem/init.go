// Init command: create the configuration and initialize the catalog schema.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/agentmem/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the catalog schema",
		Long:  "Write a default config.yaml if none exists, then create the users and emails tables.\nRunning init again leaves existing rows untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := ensureDefaultConfigFile(a.configDir)
			if err != nil {
				return sysError("init", err)
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			counts, err := store.Counts(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonMode {
				return writeJSON(out, map[string]any{
					"config":         paths.ConfigFile(a.configDir),
					"config_created": created,
					"catalog":        store.Path(),
					"rows":           counts,
				})
			}
			fmt.Fprintln(out, "Database initialized")
			fmt.Fprintln(out, "  config: ", paths.ConfigFile(a.configDir))
			fmt.Fprintln(out, "  catalog:", store.Path())
			return nil
		},
	}
}
