package character_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AbonDev/realm-of-legends/internal/model/character"
)

func TestMemoryStoreCRUD(t *testing.T) {
	store := character.NewMemoryStore()
	ctx := context.Background()

	created, err := store.Create(ctx, character.Character{
		Name:       "Kaelen",
		Race:       "elf",
		Class:      "ranger",
		Background: "outlander",
		Attributes: map[string]int{"finesse": 14},
		Equipment:  []string{"Longbow"},
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if got.Name != "Kaelen" || got.Race != "elf" {
		t.Fatalf("unexpected character: %+v", got)
	}

	got.Name = "Kaelen the Swift"
	updated, err := store.Update(ctx, created.ID, got)
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if updated.Name != "Kaelen the Swift" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Fatal("update must not change CreatedAt")
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 character, got %d", len(all))
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if _, err := store.Get(ctx, created.ID); !errors.Is(err, character.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStoreMissingCharacter(t *testing.T) {
	store := character.NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, character.ErrNotFound) {
		t.Fatalf("Get: expected ErrNotFound, got %v", err)
	}
	if _, err := store.Update(ctx, "missing", character.Character{}); !errors.Is(err, character.ErrNotFound) {
		t.Fatalf("Update: expected ErrNotFound, got %v", err)
	}
	if err := store.Delete(ctx, "missing"); !errors.Is(err, character.ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}
}
