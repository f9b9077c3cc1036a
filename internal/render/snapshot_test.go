package render

import (
	"errors"
	"testing"
)

type payload struct {
	Items []string
}

func TestResolveLoadingWinsOverEverything(t *testing.T) {
	stale := &payload{Items: []string{"a", "b"}}

	tests := []struct {
		name string
		snap Snapshot[payload]
	}{
		{"loading only", Snapshot[payload]{Loading: true}},
		{"loading with stale data", Snapshot[payload]{Loading: true, Data: stale}},
		{"loading with stale error", Snapshot[payload]{Loading: true, Err: errors.New("old failure")}},
		{"loading with stale error and data", Snapshot[payload]{Loading: true, Err: errors.New("old"), Data: stale}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Resolve(tt.snap)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if out.Phase != PhaseLoading {
				t.Errorf("Expected PhaseLoading, got %v", out.Phase)
			}
			if out.Err != nil {
				t.Errorf("Loading outcome should not carry an error, got %v", out.Err)
			}
		})
	}
}

func TestResolveErrorWinsOverData(t *testing.T) {
	fetchErr := errors.New("network down")
	out, err := Resolve(Snapshot[payload]{
		Err:  fetchErr,
		Data: &payload{Items: []string{"stale"}},
	})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if out.Phase != PhaseFailed {
		t.Errorf("Expected PhaseFailed, got %v", out.Phase)
	}
	if !errors.Is(out.Err, fetchErr) {
		t.Errorf("Expected outcome to carry %v, got %v", fetchErr, out.Err)
	}
}

func TestResolveFailed(t *testing.T) {
	fetchErr := errors.New("network down")
	out, err := Resolve(Snapshot[payload]{Err: fetchErr})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if out.Phase != PhaseFailed {
		t.Errorf("Expected PhaseFailed, got %v", out.Phase)
	}
	if out.Err == nil || out.Err.Error() != "network down" {
		t.Errorf("Expected error message 'network down', got %v", out.Err)
	}
}

func TestResolveSucceeded(t *testing.T) {
	out, err := Resolve(Snapshot[payload]{Data: &payload{Items: []string{"x", "y"}}})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if out.Phase != PhaseSucceeded {
		t.Errorf("Expected PhaseSucceeded, got %v", out.Phase)
	}
	if len(out.Data.Items) != 2 {
		t.Errorf("Expected payload with 2 items, got %d", len(out.Data.Items))
	}
}

func TestResolveMissingPayload(t *testing.T) {
	out, err := Resolve(Snapshot[payload]{})
	if err == nil {
		t.Fatal("Expected ErrMissingPayload for empty snapshot, got nil")
	}
	if !errors.Is(err, ErrMissingPayload) {
		t.Errorf("Expected ErrMissingPayload, got %v", err)
	}
	// The zero outcome must not be mistaken for a real decision.
	if out.Err != nil || out.Data.Items != nil {
		t.Errorf("Expected zero outcome alongside the error, got %+v", out)
	}
}

func TestResolveIsPurePerSnapshot(t *testing.T) {
	snap := Snapshot[payload]{Data: &payload{Items: []string{"only"}}}

	first, err := Resolve(snap)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	second, err := Resolve(snap)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if first.Phase != second.Phase {
		t.Errorf("Repeated resolution diverged: %v vs %v", first.Phase, second.Phase)
	}
	if len(first.Data.Items) != len(second.Data.Items) {
		t.Error("Repeated resolution returned different payloads")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseLoading, "loading"},
		{PhaseFailed, "failed"},
		{PhaseSucceeded, "succeeded"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
