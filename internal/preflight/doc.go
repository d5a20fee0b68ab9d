// Package preflight validates the runtime environment before a render:
// directory permissions, external binaries, and asset pool visibility.
package preflight
