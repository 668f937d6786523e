// Package joplin is a typed client for the Data API exposed by the Joplin
// desktop application's Web Clipper service.
package joplin

// Note is a note record with the field projection used by the exporter.
// Timestamps are Unix milliseconds; zero means the field was absent.
type Note struct {
	ID              string `json:"id"`
	ParentID        string `json:"parent_id"`
	Title           string `json:"title"`
	Body            string `json:"body"`
	CreatedTime     int64  `json:"created_time"`
	UserCreatedTime int64  `json:"user_created_time"`
	UpdatedTime     int64  `json:"updated_time"`
}

// Tag is a tag record.
type Tag struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Notebook is a notebook record (a "folder" in API terms). An empty
// ParentID marks a root notebook.
type Notebook struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ParentID string `json:"parent_id"`
}

// Resource describes an attachment's metadata.
type Resource struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
	Mime     string `json:"mime"`
}

// page is the envelope of a paginated list response.
type page[T any] struct {
	Items   []T  `json:"items"`
	HasMore bool `json:"has_more"`
}
