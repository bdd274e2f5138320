package books

import "strings"

// Volume holds the volumeInfo portion of a Google Books API item. Every
// field is optional in the API response; absent fields decode to their
// zero values.
type Volume struct {
	Title      string   `json:"title"`
	Authors    []string `json:"authors"`
	Categories []string `json:"categories"`
}

// HasTitle reports whether the API supplied a title for this volume.
func (v Volume) HasTitle() bool { return v.Title != "" }

// HasAuthors reports whether the API supplied any author names.
func (v Volume) HasAuthors() bool { return len(v.Authors) > 0 }

// HasCategories reports whether the API supplied any subject categories.
func (v Volume) HasCategories() bool { return len(v.Categories) > 0 }

// DisplayTitle returns the title, or a placeholder when the volume has none.
func (v Volume) DisplayTitle() string {
	if !v.HasTitle() {
		return "Unknown Title"
	}
	return v.Title
}

// FormatAuthors joins the author names for display.
func (v Volume) FormatAuthors() string {
	if !v.HasAuthors() {
		return "Unknown Author"
	}
	return strings.Join(v.Authors, ", ")
}
