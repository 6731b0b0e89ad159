package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/patina/pkg/core"
)

type patinaSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits patina events.
// It bridges the typed patina event channel to the generic lifecycle Event
// interface, so hosts embedding patina in a lifecycle-managed runtime can
// consume note changes like any other source.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &patinaSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *patinaSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *patinaSource) Start(ctx context.Context) error {
	// The bridge goroutine is tracked by lifecycle.Go so shutdown and
	// panics are handled like every other managed goroutine.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
