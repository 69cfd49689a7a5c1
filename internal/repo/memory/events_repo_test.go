package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/geocoder89/eventos/internal/domain/event"
	"github.com/geocoder89/eventos/internal/repo/memory"
)

func TestEventsRepo_AppendKeepsInsertionOrder(t *testing.T) {
	repo := memory.NewEventsRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Append(ctx, event.ValidatedEvent{Titulo: fmt.Sprintf("evento-%d", i)})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// duplicates are allowed
	if _, err := repo.Append(ctx, event.ValidatedEvent{Titulo: "evento-0"}); err != nil {
		t.Fatalf("append duplicate: %v", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"evento-0", "evento-1", "evento-2", "evento-0"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}

	for i, title := range want {
		if items[i].Titulo != title {
			t.Fatalf("items[%d].Titulo = %q, want %q", i, items[i].Titulo, title)
		}
		if items[i].ID == "" {
			t.Fatalf("items[%d] has no id", i)
		}
	}
}

func TestEventsRepo_ListReturnsCopy(t *testing.T) {
	repo := memory.NewEventsRepo()
	ctx := context.Background()

	if _, err := repo.Append(ctx, event.ValidatedEvent{Titulo: "original"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	items, _ := repo.List(ctx)
	items[0].Titulo = "changed"

	again, _ := repo.List(ctx)
	if again[0].Titulo != "original" {
		t.Fatalf("collection was mutated through List result: %q", again[0].Titulo)
	}
}

func TestEventsRepo_ConcurrentAppend(t *testing.T) {
	repo := memory.NewEventsRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Append(ctx, event.ValidatedEvent{Titulo: "x"})
		}()
	}
	wg.Wait()

	items, _ := repo.List(ctx)
	if len(items) != 50 {
		t.Fatalf("got %d items, want 50", len(items))
	}
}

func TestEventsRepo_AppendHonoursCancelledContext(t *testing.T) {
	repo := memory.NewEventsRepo()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.Append(ctx, event.ValidatedEvent{Titulo: "x"}); err == nil {
		t.Fatalf("expected error for cancelled context")
	}

	items, _ := repo.List(context.Background())
	if len(items) != 0 {
		t.Fatalf("cancelled append must not store, got %d items", len(items))
	}
}
