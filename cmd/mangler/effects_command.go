package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mangler/internal/effects"
)

func newEffectsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "effects",
		Short:       "List the effect catalog",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"Key", "Name", "Default", "Max", "Pools"}
			var rows [][]string
			for _, desc := range effects.Descriptors() {
				rows = append(rows, []string{
					desc.Key,
					desc.Name,
					formatIntensity(desc.DefaultIntensity),
					formatIntensity(desc.MaxIntensity),
					strings.Join(desc.PoolNames, ", "),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, headers, rows, 2, 3))
			return nil
		},
	}
}

func formatIntensity(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
