package patina

import (
	"log/slog"

	"github.com/aretw0/patina/pkg/core"
)

// options holds the internal configuration for the patina service.
type options struct {
	settings    *Settings
	clock       core.Clock
	logger      *slog.Logger
	forceTemp   bool
	eventBuffer int
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		settings:    nil, // loaded from the settings file at the root
		clock:       nil, // file clocks are used as-is
		logger:      nil,
		forceTemp:   false,
		eventBuffer: 16,
	}
}

// WithSettings injects settings directly, skipping the settings file.
func WithSettings(settings Settings) Option {
	return func(o *options) {
		s := settings
		o.settings = &s
	}
}

// WithClock overrides the wall clock used for the modified timestamp.
// Useful for tests; when unset, the file's own stored times are used.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithForceTemp forces the service root into a temporary directory
// (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithEventBuffer sets the size of the watch event channel buffer.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.eventBuffer = size
		}
	}
}
