package game

import (
	"context"
	"io"

	"github.com/vovakirdan/cargobug/internal/core"
)

// SliceSource replays a fixed list of events.
type SliceSource struct {
	events []core.Event
	next   int
}

// Events returns a source yielding evs in order, then io.EOF.
func Events(evs ...core.Event) *SliceSource {
	return &SliceSource{events: evs}
}

// Next implements EventSource.
func (s *SliceSource) Next(ctx context.Context) (core.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.next >= len(s.events) {
		return nil, io.EOF
	}
	ev := s.events[s.next]
	s.next++
	return ev, nil
}

// Remaining returns how many events have not been pulled yet.
func (s *SliceSource) Remaining() int {
	return len(s.events) - s.next
}
