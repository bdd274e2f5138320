package search

import "testing"

func candidateSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func TestClosestMatch(t *testing.T) {
	tests := []struct {
		name       string
		term       string
		candidates map[string]struct{}
		want       string
		wantFound  bool
	}{
		{
			name:       "single typo within threshold",
			term:       "mgic",
			candidates: candidateSet("Magic", "History"),
			want:       "Magic",
			wantFound:  true,
		},
		{
			name:       "case insensitive comparison",
			term:       "TOLKEIN",
			candidates: candidateSet("Tolkien"),
			want:       "Tolkien",
			wantFound:  true,
		},
		{
			name:       "nothing within threshold",
			term:       "cat",
			candidates: candidateSet("elephant", "rhinoceros"),
			wantFound:  false,
		},
		{
			name:       "empty candidate set",
			term:       "fantasy",
			candidates: candidateSet(),
			wantFound:  false,
		},
		{
			name:       "threshold is half the term length",
			term:       "abcd",
			candidates: candidateSet("abxy"), // distance 2 == floor(4/2)
			want:       "abxy",
			wantFound:  true,
		},
		{
			name:       "just over the threshold",
			term:       "abcd",
			candidates: candidateSet("axyz"), // distance 3 > floor(4/2)
			wantFound:  false,
		},
		{
			name:       "picks the nearest of several",
			term:       "thriler",
			candidates: candidateSet("Thriller", "Thrifty"),
			want:       "Thriller",
			wantFound:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ClosestMatch(tt.term, tt.candidates)
			if found != tt.wantFound {
				t.Fatalf("ClosestMatch(%q) found = %v, want %v", tt.term, found, tt.wantFound)
			}
			if found && got != tt.want {
				t.Errorf("ClosestMatch(%q) = %q, want %q", tt.term, got, tt.want)
			}
		})
	}
}

func TestClosestMatchPreservesCandidateCasing(t *testing.T) {
	got, found := ClosestMatch("mgic", candidateSet("MAGIC"))
	if !found {
		t.Fatal("expected a suggestion")
	}
	if got != "MAGIC" {
		t.Errorf("suggestion = %q, want the candidate's original casing %q", got, "MAGIC")
	}
}
