// Package history persists a record of every render mangler attempts.
//
// Records land in a SQLite database under the configured state directory. A
// flock-guarded write path keeps concurrent CLI invocations from interleaving
// inserts. See schema.sql for the table layout; bump schemaVersion when it
// changes.
package history
