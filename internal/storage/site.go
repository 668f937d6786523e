// Package storage manages the Hexo source tree the exporter writes into.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Directory names under the output base, as Hexo expects them.
const (
	postsDir     = "source/_posts"
	resourcesDir = "source/resources"
)

// Site is the output layout under a base directory: posts under
// source/_posts, downloaded attachments under source/resources.
type Site struct {
	base string
}

// NewSite creates a Site rooted at the given base directory. The directory
// itself is created on Clean, not here.
func NewSite(base string) (*Site, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve base: %w", err)
	}
	return &Site{base: abs}, nil
}

// PostsDir returns the absolute path of the posts directory.
func (s *Site) PostsDir() string {
	return filepath.Join(s.base, filepath.FromSlash(postsDir))
}

// ResourcesDir returns the absolute path of the resources directory.
func (s *Site) ResourcesDir() string {
	return filepath.Join(s.base, filepath.FromSlash(resourcesDir))
}

// Clean deletes and recreates the posts and resources directories.
// Prior content in both, including manual edits, is lost.
func (s *Site) Clean() error {
	for _, dir := range []string{s.PostsDir(), s.ResourcesDir()} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("storage: remove %s: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: create %s: %w", dir, err)
		}
	}
	return nil
}

// WritePost atomically writes a post file: tmp file → fsync → rename.
// An existing file of the same name is overwritten.
func (s *Site) WritePost(name string, content []byte) error {
	abs, err := safeName(s.PostsDir(), name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.PostsDir(), ".export-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// HasResource reports whether a resource file is already present.
// Presence is keyed on the filename only, never on content.
func (s *Site) HasResource(name string) bool {
	abs, err := safeName(s.ResourcesDir(), name)
	if err != nil {
		return false
	}
	_, statErr := os.Stat(abs)
	return statErr == nil
}

// WriteResource copies r verbatim into the resources directory and returns
// the number of bytes written.
func (s *Site) WriteResource(name string, r io.Reader) (int64, error) {
	abs, err := safeName(s.ResourcesDir(), name)
	if err != nil {
		return 0, err
	}
	f, err := os.Create(abs)
	if err != nil {
		return 0, fmt.Errorf("storage: create %s: %w", name, err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		return n, fmt.Errorf("storage: write %s: %w", name, err)
	}
	return n, nil
}

// safeName validates that name is a plain filename (no path separators, no
// traversal) and returns the absolute path under dir.
func safeName(dir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("storage: filename is required")
	}
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("storage: invalid filename: %s", name)
	}
	abs := filepath.Join(dir, cleaned)
	// Double-check the resolved path is still under dir.
	if !strings.HasPrefix(abs, dir+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: path escapes output directory: %s", name)
	}
	return abs, nil
}
