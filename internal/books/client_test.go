package books

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientSearch(t *testing.T) {
	var gotQuery, gotMaxResults, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotMaxResults = r.URL.Query().Get("maxResults")
		gotKey = r.URL.Query().Get("key")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{"volumeInfo": {"title": "The Hobbit", "authors": ["J.R.R. Tolkien"], "categories": ["Fantasy"]}},
				{"volumeInfo": {"title": "Untitled Notes"}}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", 20, 100)
	volumes, err := client.Search(context.Background(), "subject:fantasy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery != "subject:fantasy" {
		t.Errorf("query = %q, want %q", gotQuery, "subject:fantasy")
	}
	if gotMaxResults != "20" {
		t.Errorf("maxResults = %q, want %q", gotMaxResults, "20")
	}
	if gotKey != "secret" {
		t.Errorf("key = %q, want %q", gotKey, "secret")
	}

	if len(volumes) != 2 {
		t.Fatalf("got %d volumes, want 2", len(volumes))
	}
	if volumes[0].Title != "The Hobbit" {
		t.Errorf("first title = %q, want %q", volumes[0].Title, "The Hobbit")
	}
	if !volumes[0].HasAuthors() || volumes[0].Authors[0] != "J.R.R. Tolkien" {
		t.Errorf("first authors = %v, want [J.R.R. Tolkien]", volumes[0].Authors)
	}
	if volumes[1].HasAuthors() || volumes[1].HasCategories() {
		t.Errorf("second volume should have no authors or categories, got %+v", volumes[1])
	}
}

func TestClientSearchOmitsEmptyKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("key") {
			t.Error("key parameter should be absent without an API key")
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 20, 100)
	volumes, err := client.Search(context.Background(), "intitle:dune")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(volumes) != 0 {
		t.Errorf("got %d volumes for response without items, want 0", len(volumes))
	}
}

func TestClientSearchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 20, 100)
	_, err := client.Search(context.Background(), "subject:fantasy")
	if err == nil {
		t.Fatal("expected an error for non-200 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should include the status code, got: %v", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error should include the response body, got: %v", err)
	}
}

func TestClientSearchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 20, 100)
	_, err := client.Search(context.Background(), "subject:fantasy")
	if err == nil {
		t.Fatal("expected a decode error")
	}
}
