package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mangler/internal/assets"
)

func newAssetsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "Show asset pool locations and contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			pools := cfg.PoolDirs()
			names := make([]string, 0, len(pools))
			for name := range pools {
				names = append(names, name)
			}
			sort.Strings(names)

			titler := cases.Title(language.Und)
			headers := []string{"Pool", "Directory", "Files"}
			var rows [][]string
			for _, name := range names {
				display := titler.String(strings.ReplaceAll(name, "_", " "))
				files := assets.Scan(pools[name])
				rows = append(rows, []string{display, pools[name], strconv.Itoa(len(files))})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, headers, rows, 2))
			return nil
		},
	}
}
