package redisrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/geocoder89/eventos/internal/domain/event"
	"github.com/geocoder89/eventos/internal/redisclient"
	"github.com/redis/go-redis/v9"
)

// listKey is the list name under the client namespace.
const listKey = "v1"

// EventsRepo stores events as JSON documents in a redis list. RPUSH keeps
// insertion order and the list is never trimmed.
type EventsRepo struct {
	rdb *redis.Client
	key string
}

// NewEventsRepo stores under key, or under the namespaced "v1" list when
// key is empty.
func NewEventsRepo(client *redisclient.Client, key string) *EventsRepo {
	if key == "" {
		key = client.Key(listKey)
	}

	return &EventsRepo{rdb: client.Raw(), key: key}
}

func (r *EventsRepo) Append(ctx context.Context, v event.ValidatedEvent) (event.Event, error) {
	e := event.NewFromValidated(v)

	b, err := json.Marshal(e)
	if err != nil {
		return event.Event{}, fmt.Errorf("encode event: %w", err)
	}

	if err := r.rdb.RPush(ctx, r.key, b).Err(); err != nil {
		return event.Event{}, fmt.Errorf("rpush %s: %w", r.key, err)
	}

	return e, nil
}

func (r *EventsRepo) List(ctx context.Context) ([]event.Event, error) {
	raw, err := r.rdb.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", r.key, err)
	}

	out := make([]event.Event, 0, len(raw))

	for i, s := range raw {
		var e event.Event
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			return nil, fmt.Errorf("decode event at %d: %w", i, err)
		}
		out = append(out, e)
	}

	return out, nil
}

func (r *EventsRepo) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
