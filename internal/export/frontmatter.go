package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// timeLayout is the timestamp format Hexo expects in front-matter.
const timeLayout = "2006-01-02 15:04:05"

// delimiter separates the front-matter block from the post body.
const delimiter = ";;;"

// frontMatter is the ordered field set serialized at the top of each post.
type frontMatter struct {
	Title      string   `json:"title"`
	Date       string   `json:"date"`
	Updated    string   `json:"updated"`
	Categories []string `json:"categories,omitempty"`
}

// render serializes the front-matter as an indented JSON field list between
// `;;;` delimiter lines, followed by a blank line. The enclosing braces are
// stripped because Hexo's JSON front-matter mode expects the bare field
// list. HTML escaping is off so Unicode titles stay readable.
func (fm frontMatter) render() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fm); err != nil {
		return "", fmt.Errorf("encode front-matter: %w", err)
	}

	fields := strings.TrimSpace(buf.String())
	fields = strings.TrimPrefix(fields, "{")
	fields = strings.TrimSuffix(fields, "}")
	fields = strings.Trim(fields, "\n")

	return delimiter + "\n" + fields + "\n" + delimiter + "\n\n", nil
}

// formatTime renders a Joplin Unix-millisecond timestamp in local time.
func formatTime(ms int64) string {
	return time.UnixMilli(ms).Local().Format(timeLayout)
}
