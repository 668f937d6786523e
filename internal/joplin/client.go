package joplin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dinayuil/joplin-to-hexo/internal/apperr"
)

// DefaultBaseURL is where the clipper service listens when it is enabled.
const DefaultBaseURL = "http://localhost:41184"

// pingBody is the fixed response body of a healthy clipper service.
const pingBody = "JoplinClipperServer"

// Field projections requested from the API.
const (
	noteFields     = "id,parent_id,title,body,created_time,user_created_time,updated_time"
	tagFields      = "id,title"
	notebookFields = "id,title,parent_id"
	resourceFields = "id,title,filename,mime"
)

// Client talks to the Joplin Data API over HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the service at baseURL, authenticating
// every request with the given token. An empty baseURL falls back to
// DefaultBaseURL.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{},
	}
}

// Ping checks that the clipper service is reachable and answers with its
// expected identifier. Any failure is reported as apperr.ErrUnreachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, "/ping", nil)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrUnreachable, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrUnreachable, err)
	}
	if res.StatusCode != http.StatusOK || !strings.Contains(string(body), pingBody) {
		return fmt.Errorf("%w: unexpected ping response (status %d)", apperr.ErrUnreachable, res.StatusCode)
	}
	return nil
}

// Tags lists all tags.
func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	return listAll[Tag](ctx, c, "/tags", tagFields)
}

// Notes lists notes with the exporter's field projection, restricted to one
// tag when tagID is non-empty.
func (c *Client) Notes(ctx context.Context, tagID string) ([]Note, error) {
	path := "/notes"
	if tagID != "" {
		path = "/tags/" + tagID + "/notes"
	}
	return listAll[Note](ctx, c, path, noteFields)
}

// Notebooks lists all notebooks.
func (c *Client) Notebooks(ctx context.Context) ([]Notebook, error) {
	return listAll[Notebook](ctx, c, "/folders", notebookFields)
}

// Resource fetches metadata for a single attachment.
func (c *Client) Resource(ctx context.Context, id string) (Resource, error) {
	var r Resource
	err := c.getJSON(ctx, "/resources/"+id, url.Values{"fields": {resourceFields}}, &r)
	return r, err
}

// ResourceContent streams the binary content of an attachment into w.
func (c *Client) ResourceContent(ctx context.Context, id string, w io.Writer) error {
	path := "/resources/" + id + "/file"
	req, err := c.newRequest(ctx, path, nil)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("joplin: get %s: %w", path, err)
	}
	defer res.Body.Close()

	if err := expectOK(res, path); err != nil {
		return err
	}
	if _, err := io.Copy(w, res.Body); err != nil {
		return fmt.Errorf("joplin: read %s: %w", path, err)
	}
	return nil
}

// listAll follows the has_more pagination cursor until the last page and
// concatenates the items.
func listAll[T any](ctx context.Context, c *Client, path, fields string) ([]T, error) {
	var out []T
	for pageNo := 1; ; pageNo++ {
		q := url.Values{
			"fields": {fields},
			"page":   {strconv.Itoa(pageNo)},
		}
		var p page[T]
		if err := c.getJSON(ctx, path, q, &p); err != nil {
			return nil, err
		}
		out = append(out, p.Items...)
		if !p.HasMore {
			return out, nil
		}
	}
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, dst any) error {
	req, err := c.newRequest(ctx, path, q)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("joplin: get %s: %w", path, err)
	}
	defer res.Body.Close()

	if err := expectOK(res, path); err != nil {
		return err
	}
	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("joplin: decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, path string, q url.Values) (*http.Request, error) {
	if q == nil {
		q = url.Values{}
	}
	if c.token != "" {
		q.Set("token", c.token)
	}
	u := c.baseURL + path
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("joplin: build request for %s: %w", path, err)
	}
	return req, nil
}

// expectOK classifies non-200 responses; 404 maps to apperr.ErrNotFound.
func expectOK(res *http.Response, what string) error {
	switch res.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", apperr.ErrNotFound, what)
	default:
		return fmt.Errorf("joplin: %s returned status %d", what, res.StatusCode)
	}
}
