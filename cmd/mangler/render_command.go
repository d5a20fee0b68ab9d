package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mangler/internal/assets"
	"mangler/internal/config"
	"mangler/internal/ffmpeg"
	"mangler/internal/history"
	"mangler/internal/plan"
)

type renderOptions struct {
	effects     []string
	assetDirs   []string
	overlay     string
	output      string
	seed        int64
	duration    int
	showCommand bool
	verbose     bool
}

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Render the full input with the selected effects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(ctx, cmd, ffmpeg.ModeGenerate, args[0], opts)
		},
	}

	addRenderFlags(cmd, &opts)
	return cmd
}

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "preview <input>",
		Short: "Render a short, fast-encoded preview of the selected effects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(ctx, cmd, ffmpeg.ModePreview, args[0], opts)
		},
	}

	addRenderFlags(cmd, &opts)
	cmd.Flags().IntVarP(&opts.duration, "duration", "d", 0, "Preview length in seconds (defaults to the configured value)")
	return cmd
}

func addRenderFlags(cmd *cobra.Command, opts *renderOptions) {
	cmd.Flags().StringArrayVarP(&opts.effects, "effect", "e", nil, "Enable an effect: key[=intensity[:probability]] (repeatable)")
	cmd.Flags().StringArrayVar(&opts.assetDirs, "assets", nil, "Override an asset pool: name=dir (repeatable)")
	cmd.Flags().StringVar(&opts.overlay, "overlay", "", "Overlay image for the rainbow effect")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (defaults into the configured output directory)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed for reproducible runs (0 picks one)")
	cmd.Flags().BoolVar(&opts.showCommand, "show-command", false, "Print the ffmpeg command line instead of running it")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Stream ffmpeg output to stderr")
}

func runRender(ctx *commandContext, cmd *cobra.Command, mode ffmpeg.Mode, input string, opts renderOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	inputPath, err := config.ExpandPath(input)
	if err != nil {
		return err
	}

	selections, err := parseEffectFlags(opts.effects)
	if err != nil {
		return err
	}

	overlay := opts.overlay
	if overlay != "" {
		if overlay, err = config.ExpandPath(overlay); err != nil {
			return err
		}
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	poolDirs, err := applyPoolOverrides(cfg.PoolDirs(), opts.assetDirs)
	if err != nil {
		return err
	}

	compiled := plan.Compile(plan.Request{
		Overlay:    overlay,
		Selections: selections,
		Pools:      assets.ScanPools(poolDirs),
		Rand:       rng,
	})

	outputPath, err := resolveOutputPath(cfg, inputPath, mode, opts.output)
	if err != nil {
		return err
	}

	duration := opts.duration
	if duration <= 0 {
		duration = cfg.Render.PreviewDurationSeconds
	}

	invocation := ffmpeg.BuildInvocation(ffmpeg.Params{
		Binary:                 cfg.FFmpegBinary(),
		Mode:                   mode,
		PrimaryInput:           inputPath,
		ExtraInputs:            compiled.ExtraInputs,
		FilterGraph:            compiled.FilterGraph,
		OutputPath:             outputPath,
		PreviewDurationSeconds: duration,
	})

	if opts.showCommand {
		fmt.Fprintln(cmd.OutOrStdout(), invocation.CommandLine())
		return nil
	}

	logger.Info("starting render",
		"mode", mode.String(),
		"input", inputPath,
		"output", outputPath,
		"effects", strings.Join(compiled.EffectKeys, ","),
		"extra_inputs", len(compiled.ExtraInputs),
		"seed", seed,
	)
	logger.Debug("ffmpeg command", "command", invocation.CommandLine())

	record := history.NewRecord(mode.String(), inputPath)
	record.EffectKeys = compiled.EffectKeys
	record.ExtraInputs = compiled.ExtraInputs
	record.CommandLine = invocation.CommandLine()
	record.Seed = seed

	sink := func(line string) {
		if opts.verbose {
			fmt.Fprintln(cmd.ErrOrStderr(), line)
		} else {
			logger.Debug("ffmpeg", "line", line)
		}
	}

	runErr := ffmpeg.Run(cmd.Context(), invocation, sink)
	if runErr != nil {
		kind := ffmpeg.FailureKind(runErr)
		var raw, normalized int64
		var exitErr *ffmpeg.ExitStatusError
		if errors.As(runErr, &exitErr) {
			raw = exitErr.Raw
			normalized = exitErr.Normalized
		}
		record.MarkFailed(kind, raw, normalized)
		logger.Error("render failed", "kind", kind, "error", runErr)
		recordHistory(ctx, logger, record)
		return runErr
	}

	record.MarkCompleted(outputPath)
	recordHistory(ctx, logger, record)

	logger.Info("render complete", "output", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), outputPath)
	return nil
}

// applyPoolOverrides replaces configured pool directories with name=dir flag
// values. Only known pool names are accepted.
func applyPoolOverrides(dirs map[string]string, overrides []string) (map[string]string, error) {
	for _, override := range overrides {
		name, dir, ok := strings.Cut(override, "=")
		name = strings.TrimSpace(name)
		dir = strings.TrimSpace(dir)
		if !ok || name == "" || dir == "" {
			return nil, fmt.Errorf("bad --assets value %q (want name=dir)", override)
		}
		if _, known := dirs[name]; !known {
			return nil, fmt.Errorf("unknown asset pool %q", name)
		}
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return nil, err
		}
		dirs[name] = expanded
	}
	return dirs, nil
}

func resolveOutputPath(cfg *config.Config, inputPath string, mode ffmpeg.Mode, override string) (string, error) {
	if strings.TrimSpace(override) != "" {
		return config.ExpandPath(override)
	}

	base := filepath.Base(inputPath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	suffix := "_mangled"
	if mode == ffmpeg.ModePreview {
		suffix = "_preview"
	}
	name := fmt.Sprintf("%s%s_%s.mp4", base, suffix, time.Now().Format("20060102-150405"))
	return filepath.Join(cfg.Paths.OutputDir, name), nil
}

func recordHistory(ctx *commandContext, logger *slog.Logger, record history.Record) {
	if err := ctx.withStore(func(store *history.Store) error {
		return store.Add(nil, record)
	}); err != nil {
		logger.Warn("failed to record render history", "error", err)
	}
}
