// Package patina keeps created/modified timestamps in the frontmatter-style
// header of Markdown notes current.
//
// Philosophy:
//
// Patina does one small thing precisely. The heart of the library is a pure
// header engine (pkg/header) that upserts name/value lines into the
// marker-delimited block at the top of a document without disturbing a single
// byte of anything else. Everything around it — settings, filesystem
// watching, atomic writes, locale tables — exists to feed that engine
// timestamps and persist its output.
//
// Features:
//
//   - **Pure Core**: header extraction and field upsert are side-effect-free
//     string transformations, trivially testable and safe to call concurrently.
//   - **Idempotent**: stamping a note twice with the same inputs yields
//     byte-identical output.
//   - **Non-destructive**: unrelated header fields and the entire body are
//     preserved verbatim; writes are atomic temp-file renames.
//   - **Watch Mode**: an fsnotify-based watcher stamps notes as they change,
//     with debouncing and self-write suppression.
//   - **Configurable**: field names, date format, include/ignore globs, and
//     display locale live in a YAML settings file at the note root.
//
// Usage:
//
//	// Initialize the service with functional options
//	svc, err := patina.New("./notes",
//		patina.WithLogger(logger),
//	)
//
//	// Stamp every note once
//	n, err := svc.StampAll(ctx)
package patina
