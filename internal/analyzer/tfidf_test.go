package analyzer

import (
	"testing"
)

func TestTFIDFScore(t *testing.T) {
	scorer := NewTFIDF()

	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "ranked by frequency",
			tokens: []string{"cache", "cache", "cache", "miss", "miss", "hit"},
			want:   []string{"cache", "miss", "hit"},
		},
		{
			name:   "ties broken alphabetically",
			tokens: []string{"zebra", "apple", "mango"},
			want:   []string{"apple", "mango", "zebra"},
		},
		{
			name:   "empty input",
			tokens: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.tokens)
			if len(got) != len(tt.want) {
				t.Fatalf("Score() returned %d terms, want %d", len(got), len(tt.want))
			}
			for i, term := range tt.want {
				if got[i].Term != term {
					t.Errorf("rank %d = %q, want %q", i, got[i].Term, term)
				}
			}
		})
	}
}

func TestTFIDFScoresDescend(t *testing.T) {
	scorer := NewTFIDF()
	ranked := scorer.Score([]string{"a", "a", "b", "c", "c", "c"})

	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("scores not descending at %d: %v", i, ranked)
		}
	}
}
