package shade_test

import (
	"testing"

	"github.com/shadeui/shade"
)

func TestStoreGetMissingReturnsDefault(t *testing.T) {
	s := shade.NewStore()
	id := shade.NewID("missing")

	if got := shade.Get(s, id, 42); got != 42 {
		t.Errorf("expected default 42, got %d", got)
	}
	if s.Len() != 0 {
		t.Error("a miss must not create an entry")
	}
}

func TestStoreSetGetRoundtrip(t *testing.T) {
	s := shade.NewStore()
	id := shade.NewID("value")

	shade.Set(s, id, float32(42.5))
	if got := shade.Get(s, id, float32(0)); got != 42.5 {
		t.Errorf("expected 42.5, got %v", got)
	}
}

func TestStoreTypeMismatchReturnsDefault(t *testing.T) {
	s := shade.NewStore()
	id := shade.NewID("typed")

	shade.Set(s, id, "a string")

	// Reading the same key as a different type yields the default, not a
	// panic and not the stored value.
	if got := shade.Get(s, id, 7); got != 7 {
		t.Errorf("expected default 7 on type mismatch, got %d", got)
	}

	// The stored value is untouched.
	if got := shade.Get(s, id, ""); got != "a string" {
		t.Errorf("stored value should survive a mismatched read, got %q", got)
	}
}

func TestStoreOverwriteReplacesValueAndType(t *testing.T) {
	s := shade.NewStore()
	id := shade.NewID("overwrite")

	shade.Set(s, id, 1)
	shade.Set(s, id, "now a string")

	if got := shade.Get(s, id, ""); got != "now a string" {
		t.Errorf("expected overwritten value, got %q", got)
	}
	if got := shade.Get(s, id, -1); got != -1 {
		t.Error("old type should no longer be readable after overwrite")
	}
	if s.Len() != 1 {
		t.Errorf("overwrite should not add entries, len=%d", s.Len())
	}
}

func TestStoreLookup(t *testing.T) {
	s := shade.NewStore()
	id := shade.NewID("lookup")

	if _, ok := shade.Lookup[int](s, id); ok {
		t.Error("lookup of a missing key should report absence")
	}

	shade.Set(s, id, 9)
	v, ok := shade.Lookup[int](s, id)
	if !ok || v != 9 {
		t.Errorf("expected (9, true), got (%d, %v)", v, ok)
	}

	if _, ok := shade.Lookup[string](s, id); ok {
		t.Error("lookup with a mismatched type should report absence")
	}
}

func TestStoreRemove(t *testing.T) {
	s := shade.NewStore()
	id := shade.NewID("remove")

	// Removing an absent key is a no-op.
	shade.Remove(s, id)

	shade.Set(s, id, true)
	shade.Remove(s, id)

	if got := shade.Get(s, id, false); got {
		t.Error("removed entry should read as default")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, len=%d", s.Len())
	}
}

func TestStoreEntriesPersistAcrossFrames(t *testing.T) {
	renderer := &mockRenderer{}
	ui := shade.New(renderer)
	input := shade.NewInputState()
	id := shade.NewID("persist")

	ctx := ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)
	shade.Set(ctx.Store(), id, 3)
	_ = ui.End()

	// Entries survive frames untouched; there is no per-frame expiry.
	for i := 0; i < 5; i++ {
		input.Reset()
		_ = ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)
		_ = ui.End()
	}

	if got := shade.Get(ui.Store(), id, 0); got != 3 {
		t.Errorf("entry should persist across frames, got %d", got)
	}
}

func TestIDRoleDerivation(t *testing.T) {
	id := shade.NewID("widget")

	open := id.Role("open")
	area := id.Role("area")

	if open == area {
		t.Error("different roles must derive different IDs")
	}
	if open != id.Role("open") {
		t.Error("role derivation must be deterministic")
	}
	if shade.NewID("widget") != id {
		t.Error("same seed must hash to the same ID")
	}
	if shade.NewID("widget") == shade.NewID("other") {
		t.Error("different seeds should hash to different IDs")
	}
}
