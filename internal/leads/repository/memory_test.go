package repository

import (
	"context"
	"testing"
	"time"
)

func TestMemoryRepositoryAppendOnlyOrder(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		lead := StoredLead{ID: id, Name: "x", CreatedAt: time.Now().UTC()}
		if err := repo.Insert(ctx, lead); err != nil {
			t.Fatalf("unexpected insert error: %v", err)
		}
	}

	leads, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(leads) != 3 {
		t.Fatalf("expected 3 leads, got %d", len(leads))
	}
	for i, want := range []string{"a", "b", "c"} {
		if leads[i].ID != want {
			t.Fatalf("expected insertion order preserved, got %s at %d", leads[i].ID, i)
		}
	}
}

func TestMemoryRepositoryListReturnsCopy(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	if err := repo.Insert(ctx, StoredLead{ID: "a"}); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	leads, _ := repo.List(ctx)
	leads[0].ID = "mutated"

	again, _ := repo.List(ctx)
	if again[0].ID != "a" {
		t.Fatal("List must return a copy, not the internal slice")
	}
}
