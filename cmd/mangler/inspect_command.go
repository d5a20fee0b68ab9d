package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mangler/internal/config"
	"mangler/internal/probe"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <input>",
		Short: "Probe a media file and summarize its streams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			result, err := probe.Inspect(cmd.Context(), cfg.FFprobeBinary(), path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:      %s\n", path)
			fmt.Fprintf(out, "Container: %s\n", result.Format.FormatName)
			fmt.Fprintf(out, "Duration:  %s\n", formatDuration(result.DurationSeconds()))
			fmt.Fprintf(out, "Size:      %d bytes\n", result.SizeBytes())
			if w, h := result.VideoDimensions(); w > 0 {
				fmt.Fprintf(out, "Video:     %dx%d\n", w, h)
			}
			fmt.Fprintf(out, "Streams:   %d (video: %s, audio: %s)\n",
				result.Format.NBStreams, yesNo(result.HasVideo()), yesNo(result.HasAudio()))
			if !result.HasAudio() {
				fmt.Fprintln(out, "Warning: no audio stream; audio effects will fail against this file")
			}
			return nil
		},
	}
}

func formatDuration(seconds float64) string {
	if seconds <= 0 {
		return "unknown"
	}
	return time.Duration(seconds * float64(time.Second)).Round(time.Millisecond).String()
}
