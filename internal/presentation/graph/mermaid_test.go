package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/hanoi/internal/presentation/graph"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name        string
		height      int
		limit       int
		overlay     *graph.Overlay
		contains    []string
		notContains []string
	}{
		{
			name:   "Participants",
			height: 1,
			contains: []string{
				"sequenceDiagram\n",
				"participant A as left",
				"participant B as middle",
				"participant C as right",
				"A->>C: 1. disk 1",
			},
		},
		{
			name:   "Full Solve",
			height: 2,
			contains: []string{
				"A->>B: 1. disk 1",
				"A->>C: 2. disk 2",
				"B->>C: 3. disk 1",
			},
			notContains: []string{"Note over"},
		},
		{
			name:        "Limit",
			height:      3,
			limit:       2,
			contains:    []string{"A->>B: 2. disk 2", "Note over A,C: 5 more moves not shown"},
			notContains: []string{"3. disk"},
		},
		{
			name:     "Overlay",
			height:   2,
			overlay:  &graph.Overlay{Disk: 2},
			contains: []string{"A-->>B: 1. disk 1", "A->>C: 2. disk 2", "B-->>C: 3. disk 1"},
		},
		{
			name:        "Empty Tower",
			height:      0,
			notContains: []string{"disk", "Note over"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.height, tt.limit, tt.overlay)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestGenerateMermaid_OneLinePerMove(t *testing.T) {
	got := graph.GenerateMermaid(4, 0, nil)
	assert.Equal(t, 15, strings.Count(got, ": "), "one message per move")
}
