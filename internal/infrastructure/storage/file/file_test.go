package file

import (
	"context"
	"testing"
)

func TestStore_AbsentKey(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, ok, err := store.Get(context.Background(), "users")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok {
		t.Fatal("fresh store reports key present")
	}
}

func TestStore_SetGetOverwrite(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := context.Background()

	if err := store.Set(ctx, "users", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	data, ok, err := store.Get(ctx, "users")
	if err != nil || !ok {
		t.Fatalf("Get = (ok=%v, err=%v)", ok, err)
	}
	if string(data) != `[{"id":"1"}]` {
		t.Fatalf("Get returned %q", data)
	}

	if err := store.Set(ctx, "users", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite returned error: %v", err)
	}
	data, ok, _ = store.Get(ctx, "users")
	if !ok || string(data) != `[]` {
		t.Fatalf("after overwrite Get = (%q, %v)", data, ok)
	}
}

// An empty value is still a present key; the seeding logic depends on this.
func TestStore_EmptyValueIsPresent(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := context.Background()

	if err := store.Set(ctx, "orders", []byte{}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	_, ok, err := store.Get(ctx, "orders")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !ok {
		t.Fatal("empty value reported as absent")
	}
}

func TestStore_DeleteIdempotent(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := context.Background()

	if err := store.Set(ctx, "session", []byte(`{}`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := store.Delete(ctx, "session"); err != nil {
			t.Fatalf("Delete #%d returned error: %v", i+1, err)
		}
	}
	_, ok, _ := store.Get(ctx, "session")
	if ok {
		t.Fatal("key still present after delete")
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := New(dir)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := store.Set(ctx, "chats", []byte(`[{"id":"c1"}]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	reopened, err := New(dir)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	data, ok, err := reopened.Get(ctx, "chats")
	if err != nil || !ok {
		t.Fatalf("Get after reopen = (ok=%v, err=%v)", ok, err)
	}
	if string(data) != `[{"id":"c1"}]` {
		t.Fatalf("Get after reopen returned %q", data)
	}
}
