// Package logging constructs the slog logger used across mangler.
//
// Two formats are supported: a compact console format for interactive use and
// JSON for anything scripted. NewFromConfig also appends a log file under the
// configured log directory so render output survives the terminal session.
package logging
