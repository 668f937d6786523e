// Package export implements the note-to-post pipeline: note selection,
// category derivation, resource rewriting, and front-matter assembly.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dinayuil/joplin-to-hexo/internal/joplin"
	"github.com/dinayuil/joplin-to-hexo/internal/storage"
)

// Client is the part of the Joplin API the pipeline consumes.
type Client interface {
	Tags(ctx context.Context) ([]joplin.Tag, error)
	Notes(ctx context.Context, tagID string) ([]joplin.Note, error)
	Notebooks(ctx context.Context) ([]joplin.Notebook, error)
	Resource(ctx context.Context, id string) (joplin.Resource, error)
	ResourceContent(ctx context.Context, id string, w io.Writer) error
}

// Exporter turns Joplin notes into Hexo posts.
type Exporter struct {
	client Client
	site   *storage.Site
	logger *slog.Logger
	now    func() time.Time

	books *NotebookSet
}

// New creates an Exporter that writes into site.
func New(client Client, site *storage.Site, logger *slog.Logger) *Exporter {
	return &Exporter{
		client: client,
		site:   site,
		logger: logger,
		now:    time.Now,
	}
}

// Summary reports what a run did.
type Summary struct {
	Exported int
	Skipped  int
}

// Run executes one full export pass: reset the output directories, resolve
// the notes to export, load the notebook forest, then process each note
// strictly in order. Failures scoped to one resource or one note are
// contained; everything else aborts the run.
func (e *Exporter) Run(ctx context.Context, tagName string) (Summary, error) {
	var sum Summary

	if err := e.site.Clean(); err != nil {
		return sum, err
	}

	notes, err := SelectNotes(ctx, e.client, tagName)
	if err != nil {
		return sum, err
	}
	if len(notes) == 0 {
		e.logger.Info("no notes matched, nothing to export")
		return sum, nil
	}
	e.logger.Info("notes selected", slog.Int("count", len(notes)))

	books, err := e.client.Notebooks(ctx)
	if err != nil {
		return sum, fmt.Errorf("list notebooks: %w", err)
	}
	e.books = NewNotebookSet(books)

	for _, note := range notes {
		if note.Title == "" || note.Body == "" {
			e.logger.Info("skipping note without title or body", slog.String("id", note.ID))
			sum.Skipped++
			continue
		}
		if err := e.exportNote(ctx, note); err != nil {
			return sum, err
		}
		sum.Exported++
	}
	return sum, nil
}

// exportNote writes a single note as a Hexo post.
func (e *Exporter) exportNote(ctx context.Context, note joplin.Note) error {
	e.logger.Info("processing note", slog.String("title", note.Title))

	body := e.rewriteResources(ctx, note.Body)

	fm := frontMatter{
		Title: note.Title,
		Date:  e.noteDate(note),
	}
	fm.Updated = fm.Date
	if note.UpdatedTime != 0 {
		fm.Updated = formatTime(note.UpdatedTime)
	}

	if note.ParentID != "" {
		cats, err := e.books.CategoryPath(note.ParentID)
		if err != nil {
			// Contained like a resource failure: the note is still written,
			// only its categories are dropped.
			e.logger.Warn("categories omitted", slog.String("note", note.ID), slog.String("error", err.Error()))
		} else if len(cats) > 0 {
			fm.Categories = cats
		}
	}

	head, err := fm.render()
	if err != nil {
		return err
	}

	// The note id keys the filename, so duplicate titles cannot collide.
	return e.site.WritePost(note.ID+".md", []byte(head+body))
}

// noteDate picks the creation timestamp: the user-set one first, then the
// system one, then the current time.
func (e *Exporter) noteDate(note joplin.Note) string {
	switch {
	case note.UserCreatedTime != 0:
		return formatTime(note.UserCreatedTime)
	case note.CreatedTime != 0:
		return formatTime(note.CreatedTime)
	default:
		e.logger.Warn("note has no creation time, using current time", slog.String("id", note.ID))
		return e.now().Format(timeLayout)
	}
}
