// Package ffmpeg assembles and executes the ffmpeg invocation for a compiled
// plan.
//
// The command builder owns the argument ordering contract: primary input
// first, then every extra input in plan order (so global slot i matches the
// i-th extra -i argument), then the filter graph, stream mapping, encoding
// parameters, and the destination path.
//
// The runner validates inputs before spawning, streams combined
// stdout/stderr line-by-line to the caller's sink, and normalizes the exit
// status. All failures carry one of the package's sentinel errors so callers
// can classify them with errors.Is.
package ffmpeg
