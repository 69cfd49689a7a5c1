package memory

import (
	"context"
	"sync"

	"github.com/geocoder89/eventos/internal/domain/event"
)

// EventsRepo keeps created events in insertion order for the life of the process.
type EventsRepo struct {
	mu    sync.RWMutex
	items []event.Event
}

func NewEventsRepo() *EventsRepo {
	return &EventsRepo{
		items: make([]event.Event, 0),
	}
}

func (r *EventsRepo) Append(ctx context.Context, v event.ValidatedEvent) (event.Event, error) {
	if err := ctx.Err(); err != nil {
		return event.Event{}, err
	}

	e := event.NewFromValidated(v)

	r.mu.Lock()
	r.items = append(r.items, e)
	r.mu.Unlock()

	return e, nil
}

// List returns a copy so callers cannot mutate the collection.
func (r *EventsRepo) List(ctx context.Context) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, len(r.items))
	copy(out, r.items)

	return out, nil
}

func (r *EventsRepo) Ping(ctx context.Context) error {
	return nil
}
