package main

import (
	"context"
	"errors"
	"testing"
)

func TestSearchOutcome(t *testing.T) {
	tests := []struct {
		name   string
		result SearchResult
		err    error
		want   string
	}{
		{"found", SearchResult{State: StateFound}, nil, "found"},
		{"exhausted", SearchResult{State: StateExhausted}, nil, "exhausted"},
		{"blocked", SearchResult{State: StateIdle}, nil, "blocked"},
		{"unreachable", SearchResult{State: StateExhausted}, ErrUnreachable, "unreachable"},
		{"out of bounds", SearchResult{}, ErrOutOfBounds, "error"},
		{"nil grid", SearchResult{}, ErrNilGrid, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := searchOutcome(tt.result, tt.err); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestTracedSearch_MatchesSearch(t *testing.T) {
	grid := mustPreset(t, "maze")
	start, target := Position{0, 0}, Position{6, 8}

	traced, err := tracedSearch(context.Background(), grid, start, target)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	plain, _ := SearchWithStats(grid, start, target)
	if len(traced.Path) != len(plain.Path) || traced.Expanded != plain.Expanded {
		t.Errorf("Expected traced search to match plain search, got %d/%d vs %d/%d",
			len(traced.Path), traced.Expanded, len(plain.Path), plain.Expanded)
	}

	if _, err := tracedSearch(context.Background(), grid, start, Position{20, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
}
