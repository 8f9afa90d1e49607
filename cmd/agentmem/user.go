// User commands: inspect, create and partially update senders.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/agentmem/pkg/types"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage known senders",
	}
	cmd.AddCommand(newUserGetCmd(a), newUserCreateCmd(a), newUserUpdateCmd(a))
	return cmd
}

func newUserGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <email>",
		Short: "Show a user by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			u, err := store.GetUser(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, types.ErrNotFound) {
					return fmt.Errorf("user %q: %w", args[0], err)
				}
				return fmt.Errorf("get user: %w", err)
			}
			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), u)
			}
			printUser(cmd, u)
			return nil
		},
	}
}

func printUser(cmd *cobra.Command, u *types.User) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "email:              %s\n", u.Email)
	fmt.Fprintf(out, "name:               %s\n", orNone(u.Name))
	fmt.Fprintf(out, "email_count:        %d\n", u.EmailCount)
	fmt.Fprintf(out, "avg_urgency:        %g\n", u.AvgUrgency)
	fmt.Fprintf(out, "common_email_type:  %s\n", orNone(u.CommonEmailType))
	fmt.Fprintf(out, "common_email_topic: %s\n", orNone(u.CommonEmailTopic))
	fmt.Fprintf(out, "role:               %s\n", orNone(u.Role))
}

func newUserCreateCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "create <email>",
		Short: "Record a new sender with default statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			var namePtr *string
			if cmd.Flags().Changed("name") {
				namePtr = &name
			}
			rowID, err := store.CreateUser(cmd.Context(), args[0], namePtr)
			if err != nil {
				if errors.Is(err, types.ErrDuplicate) {
					return fmt.Errorf("user %q already recorded: %w", args[0], err)
				}
				return fmt.Errorf("create user: %w", err)
			}
			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"email": args[0], "row_id": rowID})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	return cmd
}

func newUserUpdateCmd(a *app) *cobra.Command {
	var (
		name, emailType, topic, role string
		count                        int64
		avgUrgency                   float64
	)
	cmd := &cobra.Command{
		Use:   "update <email>",
		Short: "Update selected fields of a user",
		Long:  "Only the flags given are written; every other field keeps its stored value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var upd types.UserUpdate
			if flags.Changed("name") {
				upd.Name = &name
			}
			if flags.Changed("email-count") {
				upd.EmailCount = &count
			}
			if flags.Changed("avg-urgency") {
				upd.AvgUrgency = &avgUrgency
			}
			if flags.Changed("type") {
				upd.CommonEmailType = &emailType
			}
			if flags.Changed("topic") {
				upd.CommonEmailTopic = &topic
			}
			if flags.Changed("role") {
				upd.Role = &role
			}
			if upd.IsEmpty() {
				return errors.New("update: at least one of --name, --email-count, --avg-urgency, --type, --topic or --role must be provided")
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ok, err := store.UpdateUser(cmd.Context(), args[0], upd)
			if err != nil {
				return fmt.Errorf("update user: %w", err)
			}
			if !ok {
				return fmt.Errorf("user %q: %w", args[0], types.ErrNotFound)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", args[0])
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "name", "", "display name")
	f.Int64Var(&count, "email-count", 0, "number of emails attributed to the sender")
	f.Float64Var(&avgUrgency, "avg-urgency", 0, "running average urgency (0 to 1)")
	f.StringVar(&emailType, "type", "", "most frequent email type")
	f.StringVar(&topic, "topic", "", "most frequent email topic")
	f.StringVar(&role, "role", "", "relationship of the sender to the owner")
	return cmd
}
