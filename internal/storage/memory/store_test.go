package memory

import (
	"context"
	"testing"
)

func TestStoreGetPut(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, found, err := s.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("expected miss, got found=%v err=%v", found, err)
	}

	value := []byte("payload")
	if err := s.Put(ctx, "k", value); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	value[0] = 'X'

	got, found, err := s.Get(ctx, "k")
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}
	if string(got) != "payload" {
		t.Fatalf("stored value aliased caller slice: %q", got)
	}
	got[0] = 'Y'
	again, _, _ := s.Get(ctx, "k")
	if string(again) != "payload" {
		t.Fatalf("returned value aliased store: %q", again)
	}

	if err := s.HealthCheck(ctx); err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}
