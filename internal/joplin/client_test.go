package joplin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dinayuil/joplin-to-hexo/internal/apperr"
)

func TestPing_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ping" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "JoplinClipperServer")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestPing_WrongService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "SomethingElse")
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "tok").Ping(context.Background())
	if !errors.Is(err, apperr.ErrUnreachable) {
		t.Errorf("err = %v, want ErrUnreachable", err)
	}
}

func TestPing_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nobody listening anymore

	err := NewClient(srv.URL, "tok").Ping(context.Background())
	if !errors.Is(err, apperr.ErrUnreachable) {
		t.Errorf("err = %v, want ErrUnreachable", err)
	}
}

func TestNotes_Pagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/notes" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("token"); got != "tok" {
			t.Errorf("token param = %q, want tok", got)
		}
		switch r.URL.Query().Get("page") {
		case "1":
			json.NewEncoder(w).Encode(map[string]any{
				"items":    []map[string]any{{"id": "n1", "title": "one"}},
				"has_more": true,
			})
		case "2":
			json.NewEncoder(w).Encode(map[string]any{
				"items":    []map[string]any{{"id": "n2", "title": "two"}},
				"has_more": false,
			})
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
			http.Error(w, "bad page", http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	notes, err := NewClient(srv.URL, "tok").Notes(context.Background(), "")
	if err != nil {
		t.Fatalf("Notes: %v", err)
	}
	if len(notes) != 2 || notes[0].ID != "n1" || notes[1].ID != "n2" {
		t.Errorf("notes = %v, want pages concatenated", notes)
	}
}

func TestNotes_TagFilterUsesTagRoute(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"items": []any{}, "has_more": false})
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, "tok").Notes(context.Background(), "tag123"); err != nil {
		t.Fatalf("Notes: %v", err)
	}
	if gotPath != "/tags/tag123/notes" {
		t.Errorf("path = %q, want /tags/tag123/notes", gotPath)
	}
}

func TestResource_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "tok").Resource(context.Background(), "deadbeef")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestResource_Metadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/resources/abc123" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": "abc123", "filename": "pic.jpg", "mime": "image/jpeg",
		})
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, "tok").Resource(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Resource: %v", err)
	}
	if res.Filename != "pic.jpg" || res.Mime != "image/jpeg" {
		t.Errorf("resource = %+v", res)
	}
}

func TestResourceContent_StreamsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/resources/abc123/file" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer srv.Close()

	var buf bytes.Buffer
	if err := NewClient(srv.URL, "tok").ResourceContent(context.Background(), "abc123", &buf); err != nil {
		t.Fatalf("ResourceContent: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Errorf("content = %v", buf.Bytes())
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient("", "tok")
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
}
