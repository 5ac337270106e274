package seed

import (
	"context"
	"testing"

	"github.com/hamed0406/ewsmon/internal/payload"
	"github.com/hamed0406/ewsmon/internal/repo/memory"
)

func TestTargets_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	created, err := Targets(ctx, store)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if created != len(DefaultTargets) {
		t.Fatalf("want %d created, got %d", len(DefaultTargets), created)
	}

	created, err = Targets(ctx, store)
	if err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	if created != 0 {
		t.Fatalf("second run must create nothing, got %d", created)
	}

	all, _ := store.List(ctx)
	if len(all) != len(DefaultTargets) {
		t.Fatalf("target count: %d", len(all))
	}
}

func TestDefaultTargets_AllHaveProbePayloads(t *testing.T) {
	for _, tgt := range DefaultTargets {
		if !payload.Supported(tgt.APIType) {
			t.Errorf("%s: api type %q has no payload builder", tgt.Name, tgt.APIType)
		}
		if tgt.SOAPAction == "" || tgt.URL == "" {
			t.Errorf("%s: incomplete definition", tgt.Name)
		}
	}
}
