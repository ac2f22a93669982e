package kvstore

import (
	"context"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	if got, err := s.Get(ctx, "missing"); err != nil || got != "" {
		t.Fatalf("Get(missing) = %q, %v", got, err)
	}

	if err := s.Set(ctx, "auth_token", "tok"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ := s.Get(ctx, "auth_token"); got != "tok" {
		t.Fatalf("Get = %q, want tok", got)
	}

	if err := s.Remove(ctx, "auth_token"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got, _ := s.Get(ctx, "auth_token"); got != "" {
		t.Fatalf("key survived Remove: %q", got)
	}

	_ = s.Set(ctx, "a", "1")
	_ = s.Set(ctx, "b", "2")
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got, _ := s.Get(ctx, "a"); got != "" {
		t.Fatalf("key survived Clear: %q", got)
	}
}
