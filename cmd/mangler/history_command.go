package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mangler/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Render history",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))
	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent renders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *history.Store) error {
				records, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "No renders recorded yet")
					return nil
				}

				headers := []string{"ID", "When", "Mode", "Status", "Effects", "Input"}
				var rows [][]string
				for _, record := range records {
					status := string(record.Status)
					if record.Status == history.StatusFailed && record.FailureKind != "" {
						status += " (" + record.FailureKind + ")"
					}
					rows = append(rows, []string{
						shortID(record.ID),
						record.StartedAt.Local().Format("2006-01-02 15:04"),
						record.Mode,
						status,
						strings.Join(record.EffectKeys, ","),
						record.PrimaryInput,
					})
				}
				fmt.Fprintln(out, renderTable(out, headers, rows))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum records to show (0 for all)")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one render in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *history.Store) error {
				record, err := findRecord(cmd, store, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ID:           %s\n", record.ID)
				fmt.Fprintf(out, "Mode:         %s\n", record.Mode)
				fmt.Fprintf(out, "Status:       %s\n", record.Status)
				if record.FailureKind != "" {
					fmt.Fprintf(out, "Failure:      %s\n", record.FailureKind)
					fmt.Fprintf(out, "Exit code:    %d (raw %d)\n", record.NormalizedExitCode, record.RawExitCode)
				}
				fmt.Fprintf(out, "Input:        %s\n", record.PrimaryInput)
				if record.OutputPath != "" {
					fmt.Fprintf(out, "Output:       %s\n", record.OutputPath)
				}
				fmt.Fprintf(out, "Effects:      %s\n", strings.Join(record.EffectKeys, ", "))
				if len(record.ExtraInputs) > 0 {
					fmt.Fprintf(out, "Extra inputs: %s\n", strings.Join(record.ExtraInputs, ", "))
				}
				fmt.Fprintf(out, "Seed:         %d\n", record.Seed)
				fmt.Fprintf(out, "Started:      %s\n", formatTimestamp(record.StartedAt))
				fmt.Fprintf(out, "Finished:     %s\n", formatTimestamp(record.FinishedAt))
				fmt.Fprintf(out, "Command:      %s\n", record.CommandLine)
				return nil
			})
		},
	}
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all render history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *history.Store) error {
				count, err := store.Count(cmd.Context())
				if err != nil {
					return err
				}
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", pluralize(count, "record"))
				return nil
			})
		},
	}
}

// findRecord accepts either a full identifier or an unambiguous prefix.
func findRecord(cmd *cobra.Command, store *history.Store, id string) (*history.Record, error) {
	record, err := store.Get(cmd.Context(), id)
	if err != nil {
		return nil, err
	}
	if record != nil {
		return record, nil
	}

	records, err := store.Recent(cmd.Context(), 0)
	if err != nil {
		return nil, err
	}
	var matches []history.Record
	for _, candidate := range records {
		if strings.HasPrefix(candidate.ID, id) {
			matches = append(matches, candidate)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no render with id %q", id)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("id prefix %q matches %d renders", id, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatTimestamp(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Local().Format("2006-01-02 15:04:05")
}

func pluralize(count int64, noun string) string {
	if count == 1 {
		return "1 " + noun
	}
	return strconv.FormatInt(count, 10) + " " + noun + "s"
}
