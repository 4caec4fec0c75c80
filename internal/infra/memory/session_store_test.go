package memory

import "testing"

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	session := store.GetOrCreate("p1")
	if session == nil {
		t.Fatalf("expected session")
	}
	if again := store.GetOrCreate("p1"); again != session {
		t.Fatalf("expected the same session instance")
	}
	if _, ok := store.Get("p1"); !ok {
		t.Fatalf("expected session present")
	}

	store.Delete("p1")
	if _, ok := store.Get("p1"); ok {
		t.Fatalf("expected session removed")
	}
}
