// Package patina is the Composition Root for the patina application.
//
// It connects the pure header engine (Domain Layer) with the infrastructure
// adapters (filesystem watcher, atomic writes, settings persistence).
//
// Patina keeps the created/modified timestamp fields in the frontmatter-style
// header of Markdown notes current, either as a one-shot pass over a note
// tree or as a long-running watcher that stamps notes as they change.
//
// Usage:
//
//	// Initialize the service with functional options
//	svc, err := patina.NewService("./notes",
//		patina.WithLogger(logger),
//	)
//
//	// One-shot: bring every note up to date
//	n, err := svc.StampAll(ctx)
//
//	// Or watch and stamp continuously
//	err = svc.Run(ctx)
package patina
