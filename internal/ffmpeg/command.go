package ffmpeg

import "strconv"

// Mode selects the encoding profile for an invocation.
type Mode int

const (
	// ModePreview bounds processing to a caller-specified duration and uses a
	// fast, lower-quality preset.
	ModePreview Mode = iota
	// ModeGenerate processes the whole primary input with the higher-quality
	// preset and a fixed audio bitrate.
	ModeGenerate
)

func (m Mode) String() string {
	if m == ModePreview {
		return "preview"
	}
	return "generate"
}

const (
	DefaultBinary = "ffmpeg"

	previewPreset = "veryfast"
	previewCRF    = "28"
	finalPreset   = "fast"
	finalCRF      = "20"
	audioBitrate  = "192k"

	// The two terminal labels every fragment declares and the command maps
	// into the output file.
	videoOutLabel = "[vout]"
	audioOutLabel = "[aout]"
)

// Params describes one ffmpeg invocation to build.
type Params struct {
	// Binary is the executable name or explicit path; empty means
	// DefaultBinary resolved from PATH.
	Binary       string
	Mode         Mode
	PrimaryInput string
	ExtraInputs  []string
	// FilterGraph is the compiled filter_complex string. When empty no graph
	// or mapping arguments are emitted and the primary streams pass through.
	FilterGraph string
	OutputPath  string
	// PreviewDurationSeconds bounds the processed media in preview mode.
	PreviewDurationSeconds int
}

// Invocation is a fully assembled command, ready for the runner. It keeps the
// primary/extra input split so the runner can report which role a missing
// file played.
type Invocation struct {
	Binary       string
	Args         []string
	PrimaryInput string
	ExtraInputs  []string
	OutputPath   string
}

// BuildInvocation turns params into the ffmpeg argument vector. Input
// ordering is the contract that makes the compiler's slot numbering line up:
// the primary input is argument input 0, each extra input i occupies global
// slot i.
func BuildInvocation(p Params) Invocation {
	binary := p.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	args := []string{"-y"}
	if p.Mode == ModePreview {
		duration := p.PreviewDurationSeconds
		if duration <= 0 {
			duration = 10
		}
		args = append(args, "-ss", "0", "-t", strconv.Itoa(duration))
	}
	args = append(args, "-i", p.PrimaryInput)
	for _, input := range p.ExtraInputs {
		args = append(args, "-i", input)
	}
	if p.FilterGraph != "" {
		args = append(args, "-filter_complex", p.FilterGraph, "-map", videoOutLabel, "-map", audioOutLabel)
	}
	if p.Mode == ModePreview {
		args = append(args, "-c:v", "libx264", "-preset", previewPreset, "-crf", previewCRF, "-c:a", "aac", "-shortest")
	} else {
		args = append(args, "-c:v", "libx264", "-preset", finalPreset, "-crf", finalCRF, "-c:a", "aac", "-b:a", audioBitrate)
	}
	args = append(args, p.OutputPath)

	return Invocation{
		Binary:       binary,
		Args:         args,
		PrimaryInput: p.PrimaryInput,
		ExtraInputs:  append([]string(nil), p.ExtraInputs...),
		OutputPath:   p.OutputPath,
	}
}

// CommandLine renders the invocation for logging and history records.
func (inv Invocation) CommandLine() string {
	line := inv.Binary
	for _, arg := range inv.Args {
		line += " " + quoteIfNeeded(arg)
	}
	return line
}

func quoteIfNeeded(arg string) string {
	for _, r := range arg {
		if r == ' ' || r == ';' || r == '\'' || r == '"' {
			return strconv.Quote(arg)
		}
	}
	if arg == "" {
		return `""`
	}
	return arg
}
