// Email commands: record and inspect processed messages.
package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/agentmem/pkg/types"
)

func newEmailCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Manage recorded emails",
	}
	cmd.AddCommand(newEmailAddCmd(a), newEmailGetCmd(a))
	return cmd
}

func newEmailAddCmd(a *app) *cobra.Command {
	var (
		e                                types.Email
		kind, sentiment, intent, actions string
		urgency                          float64
	)
	cmd := &cobra.Command{
		Use:   "add <sender-email>",
		Short: "Record an email",
		Long:  "Record an email from the given sender. Without --id a UUID v7 is generated.\nRe-adding an existing ID fails and leaves the stored email unchanged.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e.SenderEmail = &args[0]
			if e.ID == "" {
				id, err := uuid.NewV7()
				if err != nil {
					return sysError("generate email ID", err)
				}
				e.ID = id.String()
			}
			flags := cmd.Flags()
			if flags.Changed("type") {
				e.Type = &kind
			}
			if flags.Changed("urgency") {
				e.Urgency = &urgency
			}
			if flags.Changed("sentiment") {
				e.Sentiment = &sentiment
			}
			if flags.Changed("intent") {
				e.Intent = &intent
			}
			if flags.Changed("actions") {
				e.ActionsDone = &actions
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := store.InsertEmail(cmd.Context(), &e)
			if err != nil {
				if errors.Is(err, types.ErrDuplicate) {
					return fmt.Errorf("email %q already recorded: %w", e.ID, err)
				}
				return fmt.Errorf("add email: %w", err)
			}
			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"id": id})
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&e.ID, "id", "", "message identifier (default: generated UUID v7)")
	f.StringVar(&e.Subject, "subject", "", "subject line")
	f.StringVar(&e.Body, "body", "", "message body")
	f.StringVar(&kind, "type", "", "classification type")
	f.Float64Var(&urgency, "urgency", 0, "urgency score (0 to 1)")
	f.StringVar(&sentiment, "sentiment", "", "sentiment label")
	f.StringVar(&intent, "intent", "", "intent label")
	f.StringVar(&actions, "actions", "", "actions taken on the email")
	f.BoolVar(&e.Processed, "processed", false, "mark the email as processed")
	return cmd
}

func newEmailGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an email by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			e, err := store.GetEmail(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, types.ErrNotFound) {
					return fmt.Errorf("email %q: %w", args[0], err)
				}
				return fmt.Errorf("get email: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), e)
		},
	}
}
