package export

import (
	"fmt"

	"github.com/dinayuil/joplin-to-hexo/internal/apperr"
	"github.com/dinayuil/joplin-to-hexo/internal/joplin"
)

// NotebookSet resolves notebook ids to Hexo category paths.
type NotebookSet struct {
	byID map[string]joplin.Notebook
}

// NewNotebookSet indexes notebooks by id. Records without an id are ignored.
func NewNotebookSet(books []joplin.Notebook) *NotebookSet {
	byID := make(map[string]joplin.Notebook, len(books))
	for _, b := range books {
		if b.ID != "" {
			byID[b.ID] = b
		}
	}
	return &NotebookSet{byID: byID}
}

// CategoryPath walks parent links from startID upwards and returns the
// notebook titles ordered root-first. An id that is not in the set ends the
// walk: that is either the root or a dangling parent reference, neither is
// an error. A parent cycle yields apperr.ErrMalformedHierarchy.
func (s *NotebookSet) CategoryPath(startID string) ([]string, error) {
	var path []string
	visited := make(map[string]struct{})
	for id := startID; id != ""; {
		book, ok := s.byID[id]
		if !ok {
			break
		}
		if _, seen := visited[id]; seen {
			return nil, fmt.Errorf("%w: notebook %s is its own ancestor", apperr.ErrMalformedHierarchy, id)
		}
		visited[id] = struct{}{}
		path = append([]string{book.Title}, path...)
		id = book.ParentID
	}
	return path, nil
}
