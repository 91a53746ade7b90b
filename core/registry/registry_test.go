package registry

import "testing"

func TestRegistry_SetGet(t *testing.T) {
	r := New()
	if _, ok := r.GetGlobal("k"); ok {
		t.Fatal("empty registry: want miss")
	}
	if !r.SetGlobal("k", 1) {
		t.Fatal("SetGlobal on unlocked key: want true")
	}
	v, ok := r.GetGlobal("k")
	if !ok || v != 1 {
		t.Errorf("GetGlobal = %v, %v; want 1, true", v, ok)
	}
}

func TestRegistry_LockRejectsWrites(t *testing.T) {
	r := New()
	r.SetGlobal("k", "a")
	r.Lock("k")
	if !r.IsLocked("k") {
		t.Fatal("IsLocked: want true")
	}
	if r.SetGlobal("k", "b") {
		t.Error("SetGlobal on locked key: want false")
	}
	if v, _ := r.GetGlobal("k"); v != "a" {
		t.Errorf("value changed while locked: %v", v)
	}
	r.UnlockForTesting("k")
	if !r.SetGlobal("k", "b") {
		t.Error("SetGlobal after unlock: want true")
	}
}
