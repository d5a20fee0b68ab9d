package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mangler/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check directories, asset pools, and external binaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			envHeaders := []string{"Check", "OK", "Detail"}
			var envRows [][]string
			failures := 0
			for _, result := range preflight.RunAll(cfg) {
				if !result.Passed {
					failures++
				}
				envRows = append(envRows, []string{result.Name, yesNo(result.Passed), result.Detail})
			}
			fmt.Fprintln(out, renderTable(out, envHeaders, envRows))

			depHeaders := []string{"Dependency", "Available", "Command", "Detail"}
			var depRows [][]string
			for _, status := range preflight.CheckSystemDeps(cfg) {
				if !status.Available && !status.Optional {
					failures++
				}
				depRows = append(depRows, []string{status.Name, yesNo(status.Available), status.Command, status.Detail})
			}
			fmt.Fprintln(out, renderTable(out, depHeaders, depRows))

			if failures > 0 {
				return fmt.Errorf("%d check(s) failed", failures)
			}
			fmt.Fprintln(out, "All checks passed")
			return nil
		},
	}
}
