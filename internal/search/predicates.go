package search

import (
	"strings"

	"github.com/booksage/booksage/internal/books"
)

// SearchType selects which volume field a search inspects and which match
// rules apply to it.
type SearchType int

const (
	Genre SearchType = iota
	Author
	Title
)

func (st SearchType) String() string {
	switch st {
	case Genre:
		return "genre"
	case Author:
		return "author"
	case Title:
		return "title"
	default:
		return "unknown"
	}
}

// QueryPrefix returns the Google Books field prefix for this search type.
func (st SearchType) QueryPrefix() string {
	switch st {
	case Genre:
		return "subject:"
	case Author:
		return "inauthor:"
	case Title:
		return "intitle:"
	default:
		return ""
	}
}

// GenreRule is a directional related-genre pairing: a category containing
// Category is considered related to a search term containing Term. The
// reverse pairing does not hold unless listed separately.
type GenreRule struct {
	Category string
	Term     string
}

// DefaultGenreRules is the built-in related-genre table. Deployments can
// override it via the related_genres config key.
var DefaultGenreRules = []GenreRule{
	{Category: "fiction", Term: "novel"},
	{Category: "mystery", Term: "thriller"},
	{Category: "sci-fi", Term: "science fiction"},
	{Category: "fantasy", Term: "magic"},
}

// Matcher decides whether a single volume satisfies a search term.
type Matcher struct {
	genreRules []GenreRule
}

// NewMatcher creates a Matcher. A nil rules slice selects
// DefaultGenreRules.
func NewMatcher(genreRules []GenreRule) *Matcher {
	if genreRules == nil {
		genreRules = DefaultGenreRules
	}
	return &Matcher{genreRules: genreRules}
}

// Matches dispatches to the predicate for st. currentMatchCount is the
// number of matches already accepted in the ongoing scan, excluding the
// volume under test; genre matching grows stricter as it rises.
func (m *Matcher) Matches(v books.Volume, term string, st SearchType, currentMatchCount int) bool {
	switch st {
	case Author:
		return m.matchesAuthor(v, term)
	case Title:
		return m.matchesTitle(v, term)
	case Genre:
		return m.matchesGenre(v, term, currentMatchCount)
	default:
		return false
	}
}

func (m *Matcher) matchesAuthor(v books.Volume, term string) bool {
	if !v.HasAuthors() {
		return false
	}
	termLower := strings.ToLower(term)
	for _, author := range v.Authors {
		if strings.Contains(strings.ToLower(author), termLower) {
			return true
		}
	}
	return false
}

func (m *Matcher) matchesTitle(v books.Volume, term string) bool {
	if !v.HasTitle() {
		return false
	}
	return strings.Contains(strings.ToLower(v.Title), strings.ToLower(term))
}

// matchesGenre applies a three-tier policy. Uncategorized volumes are
// accepted only while fewer than 3 matches exist. Otherwise a strict
// term-in-category substring match wins outright, and while fewer than 2
// matches exist the looser reverse-substring and related-genre checks
// backfill the result set. The outcome deliberately depends on scan order
// through currentMatchCount.
func (m *Matcher) matchesGenre(v books.Volume, term string, currentMatchCount int) bool {
	// Be more selective with uncategorized volumes
	if !v.HasCategories() {
		return currentMatchCount < 3
	}

	termLower := strings.ToLower(term)
	for _, category := range v.Categories {
		if strings.Contains(strings.ToLower(category), termLower) {
			return true
		}
	}

	if currentMatchCount < 2 {
		for _, category := range v.Categories {
			categoryLower := strings.ToLower(category)
			if strings.Contains(termLower, categoryLower) || m.relatedGenres(categoryLower, termLower) {
				return true
			}
		}
	}

	return false
}

// relatedGenres expects both arguments already lower-cased.
func (m *Matcher) relatedGenres(category, term string) bool {
	for _, rule := range m.genreRules {
		if strings.Contains(category, rule.Category) && strings.Contains(term, rule.Term) {
			return true
		}
	}
	return false
}
