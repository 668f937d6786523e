// Package testutil provides shared helpers for exporter tests.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/dinayuil/joplin-to-hexo/internal/storage"
)

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestSite creates a Site in a temporary directory with clean output
// directories, cleaned up automatically.
func TestSite(t *testing.T) *storage.Site {
	t.Helper()
	site, err := storage.NewSite(t.TempDir())
	if err != nil {
		t.Fatalf("NewSite: %v", err)
	}
	if err := site.Clean(); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	return site
}
