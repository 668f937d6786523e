package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"strings"

	"github.com/dinayuil/joplin-to-hexo/internal/joplin"
)

// resourceRefPattern matches markdown image syntax whose target is an
// internal Joplin reference: ":/" followed by a 32-character lowercase hex
// resource id.
var resourceRefPattern = regexp.MustCompile(`!\[.*?\]\(:/([a-f0-9]{32})\)`)

// rewriteResources downloads every attachment referenced by the body and
// rewrites the internal references to /resources/ paths. A failure on one
// resource is logged and leaves all its references untouched; the rest of
// the body is still processed.
func (e *Exporter) rewriteResources(ctx context.Context, body string) string {
	for _, m := range resourceRefPattern.FindAllStringSubmatch(body, -1) {
		id := m[1]
		name, err := e.fetchResource(ctx, id)
		if err != nil {
			e.logger.Warn("resource left unrewritten",
				slog.String("resource", id), slog.String("error", err.Error()))
			continue
		}
		body = strings.ReplaceAll(body, "(:/"+id+")", "(/resources/"+name+")")
	}
	return body
}

// fetchResource makes sure the attachment is present in the resources
// directory and returns its local filename. A file that already exists
// under that name is trusted and not downloaded again.
func (e *Exporter) fetchResource(ctx context.Context, id string) (string, error) {
	meta, err := e.client.Resource(ctx, id)
	if err != nil {
		return "", fmt.Errorf("metadata: %w", err)
	}

	name := id + extensionFor(meta)
	if e.site.HasResource(name) {
		return name, nil
	}

	var buf bytes.Buffer
	if err := e.client.ResourceContent(ctx, id, &buf); err != nil {
		return "", fmt.Errorf("content: %w", err)
	}
	size, err := e.site.WriteResource(name, &buf)
	if err != nil {
		return "", fmt.Errorf("save: %w", err)
	}
	e.logger.Info("downloaded resource", slog.String("file", name), slog.Int64("bytes", size))
	return name, nil
}

// extensionFor derives the file extension from resource metadata, preferring
// the original filename over the title and falling back to ".png" when
// neither carries one.
func extensionFor(r joplin.Resource) string {
	name := r.Filename
	if name == "" {
		name = r.Title
	}
	if ext := path.Ext(name); ext != "" {
		return ext
	}
	return ".png"
}
