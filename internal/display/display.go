// Package display renders search outcomes for the terminal.
package display

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/booksage/booksage/internal/books"
	"github.com/booksage/booksage/internal/search"
)

// GoodreadsSearchURL is the base URL for per-book Goodreads lookup links.
const GoodreadsSearchURL = "https://www.goodreads.com/search?q="

// Renderer writes human-readable search output.
type Renderer struct {
	out io.Writer
}

// New creates a Renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Outcome renders a resolved refinement outcome. Suggestion prompts happen
// before resolution, so only matches and no-results reach this point.
func (r *Renderer) Outcome(o search.Outcome, st search.SearchType) {
	switch o.Kind {
	case search.KindMatches:
		r.Results(o.Matches, st, o.Term)
	default:
		r.NoResults(o.Term)
	}
}

// Results prints the matched volumes with a Goodreads search link each.
func (r *Renderer) Results(volumes []books.Volume, st search.SearchType, term string) {
	rule := strings.Repeat("-", 60)
	fmt.Fprintf(r.out, "\n%s\n", rule)
	fmt.Fprintf(r.out, "Top %d Books matching %s: %s\n", len(volumes), st, term)
	fmt.Fprintln(r.out, rule)

	for i, v := range volumes {
		title := v.DisplayTitle()
		authors := v.FormatAuthors()
		link := GoodreadsSearchURL + url.QueryEscape(title+" "+authors)

		fmt.Fprintf(r.out, "\nBook %d:\n", i+1)
		fmt.Fprintf(r.out, "Title: %s\n", title)
		fmt.Fprintf(r.out, "Author(s): %s\n", authors)
		fmt.Fprintf(r.out, "Goodreads: %s\n", link)
	}

	fmt.Fprintf(r.out, "\n%s\n", rule)
}

// NoResults prints the terminal no-match message for term.
func (r *Renderer) NoResults(term string) {
	fmt.Fprintf(r.out, "\nSorry, we couldn't find any matches for: %s\n", term)
}
