package search

import "github.com/booksage/booksage/internal/books"

// FetchFunc returns the raw volumes for a search already bound to a term
// and type. Transport and decoding errors pass through Refine untouched.
type FetchFunc func() ([]books.Volume, error)

// ConfirmFunc asks whether a suggested replacement for a failed term
// should be searched.
type ConfirmFunc func(term, suggestion string) bool

// OutcomeKind discriminates the results of a refinement.
type OutcomeKind int

const (
	// KindMatches means at least one volume satisfied the term.
	KindMatches OutcomeKind = iota
	// KindNoResults means nothing matched and no usable suggestion exists.
	KindNoResults
	// KindSuggestedRetry means nothing matched but a close candidate value
	// was found; the caller may confirm and re-run with it.
	KindSuggestedRetry
)

// Outcome is the structured result of one refinement pass.
type Outcome struct {
	Kind       OutcomeKind
	Term       string
	Suggestion string
	Matches    []books.Volume
}

const (
	// defaultMatchCap bounds the number of accepted volumes per search.
	defaultMatchCap = 5
	// maxSuggestionHops bounds how many corrected terms RefineInteractive
	// will chase, so a fetch that keeps yielding near-miss candidates
	// cannot loop forever.
	maxSuggestionHops = 5
)

// Refiner filters raw fetch results down to a capped, ordered match list
// and proposes a corrected term when nothing matches.
type Refiner struct {
	matcher  *Matcher
	matchCap int
}

// NewRefiner creates a Refiner. matchCap values below 1 select the default
// cap of 5.
func NewRefiner(matcher *Matcher, matchCap int) *Refiner {
	if matchCap < 1 {
		matchCap = defaultMatchCap
	}
	return &Refiner{matcher: matcher, matchCap: matchCap}
}

// Refine fetches raw volumes once and scans them in order until the match
// cap fills. Every scanned volume contributes its relevant field values to
// the suggestion candidate pool whether or not it matches; volumes past
// the cap are never scanned at all. An empty match list falls back to
// ClosestMatch over the collected candidates.
func (r *Refiner) Refine(term string, st SearchType, fetch FetchFunc) (Outcome, error) {
	records, err := fetch()
	if err != nil {
		return Outcome{}, err
	}
	if len(records) == 0 {
		return Outcome{Kind: KindNoResults, Term: term}, nil
	}

	matches := make([]books.Volume, 0, r.matchCap)
	candidates := make(map[string]struct{})

	for i := 0; i < len(records) && len(matches) < r.matchCap; i++ {
		collectFieldValues(records[i], st, candidates)
		if r.matcher.Matches(records[i], term, st, len(matches)) {
			matches = append(matches, records[i])
		}
	}

	if len(matches) > 0 {
		return Outcome{Kind: KindMatches, Term: term, Matches: matches}, nil
	}

	if suggestion, ok := ClosestMatch(term, candidates); ok {
		return Outcome{Kind: KindSuggestedRetry, Term: term, Suggestion: suggestion}, nil
	}

	return Outcome{Kind: KindNoResults, Term: term}, nil
}

// RefineInteractive runs Refine and, whenever it yields a suggestion the
// caller confirms, re-fetches with the corrected term. Each hop is a full
// fetch, not a rescan of earlier results. A declined suggestion or an
// exhausted hop budget resolves to NoResults for the last term searched.
func (r *Refiner) RefineInteractive(term string, st SearchType, fetchFor func(term string) FetchFunc, confirm ConfirmFunc) (Outcome, error) {
	current := term
	for hop := 0; ; hop++ {
		outcome, err := r.Refine(current, st, fetchFor(current))
		if err != nil {
			return Outcome{}, err
		}
		if outcome.Kind != KindSuggestedRetry {
			return outcome, nil
		}
		if hop >= maxSuggestionHops || !confirm(current, outcome.Suggestion) {
			return Outcome{Kind: KindNoResults, Term: current}, nil
		}
		current = outcome.Suggestion
	}
}

// collectFieldValues unions the field values relevant to st into the
// candidate pool.
func collectFieldValues(v books.Volume, st SearchType, into map[string]struct{}) {
	switch st {
	case Author:
		for _, author := range v.Authors {
			into[author] = struct{}{}
		}
	case Title:
		if v.HasTitle() {
			into[v.Title] = struct{}{}
		}
	case Genre:
		for _, category := range v.Categories {
			into[category] = struct{}{}
		}
	}
}
