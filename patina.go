package patina

import (
	"log/slog"

	"github.com/aretw0/patina/pkg/core"
	"github.com/aretw0/patina/pkg/header"
	service "github.com/aretw0/patina/pkg/patina"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Service is a public alias for the patina service.
type Service = service.Service

// Settings is a public alias for the stamper settings.
type Settings = service.Settings

// Stamper is a public alias for the timestamp policy engine.
type Stamper = service.Stamper

// Field is a public alias for a header field pair.
type Field = header.Field

// --- Configuration ---

// Option defines a functional option for configuring patina.
type Option = service.Option

// WithSettings injects settings directly, skipping the settings file.
func WithSettings(settings Settings) Option {
	return service.WithSettings(settings)
}

// WithClock overrides the wall clock used for timestamps.
func WithClock(clock core.Clock) Option {
	return service.WithClock(clock)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return service.WithLogger(logger)
}

// WithForceTemp forces the note root into a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return service.WithForceTemp(force)
}

// WithEventBuffer sets the size of the watch event channel buffer.
func WithEventBuffer(size int) Option {
	return service.WithEventBuffer(size)
}

// --- Factory ---

// New creates a new patina Service rooted at path.
func New(path string, opts ...Option) (*Service, error) {
	return service.NewService(path, opts...)
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return service.DefaultSettings()
}

// --- Header engine ---

// Upsert sets the given fields in the header block of text, inserting a
// block if none exists. See pkg/header for the full contract.
func Upsert(text string, fields []Field) string {
	return header.Upsert(text, fields)
}

// HasField reports whether the header contents contain a field line for name.
func HasField(inner, name string) bool {
	return header.HasField(inner, name)
}
