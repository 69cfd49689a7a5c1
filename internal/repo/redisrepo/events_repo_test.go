package redisrepo_test

import (
	"context"
	"os"
	"testing"

	"github.com/geocoder89/eventos/internal/domain/event"
	"github.com/geocoder89/eventos/internal/redisclient"
	"github.com/geocoder89/eventos/internal/repo/redisrepo"
	"github.com/google/uuid"
)

func TestEventsRepo_AppendAndList(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	client := redisclient.New(redisclient.Config{Addr: addr, Namespace: "eventos-test"})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	if err := client.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	key := client.Key(uuid.NewString())
	t.Cleanup(func() { client.Raw().Del(context.Background(), key) })

	repo := redisrepo.NewEventsRepo(client, key)

	first, err := repo.Append(ctx, event.ValidatedEvent{Titulo: "primeiro", Preco: 0})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := repo.Append(ctx, event.ValidatedEvent{Titulo: "segundo", Preco: 30}); err != nil {
		t.Fatalf("append: %v", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ID != first.ID || items[1].Titulo != "segundo" || items[1].Preco != 30 {
		t.Fatalf("unexpected items: %+v", items)
	}
}
