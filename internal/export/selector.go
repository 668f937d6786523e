package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/dinayuil/joplin-to-hexo/internal/apperr"
	"github.com/dinayuil/joplin-to-hexo/internal/joplin"
)

// tagAll is the case-insensitive sentinel that disables tag filtering.
const tagAll = "ALL"

// SelectNotes resolves which notes to export. The sentinel "ALL" (any case)
// selects every note without consulting tags at all. Otherwise the tag with
// exactly the given title is looked up; a missing tag aborts the export
// with apperr.ErrNotFound before any note is fetched.
func SelectNotes(ctx context.Context, client Client, tagName string) ([]joplin.Note, error) {
	if strings.EqualFold(tagName, tagAll) {
		return client.Notes(ctx, "")
	}

	tags, err := client.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	for _, tag := range tags {
		if tag.Title == tagName {
			return client.Notes(ctx, tag.ID)
		}
	}
	return nil, fmt.Errorf("%w: tag %q", apperr.ErrNotFound, tagName)
}
