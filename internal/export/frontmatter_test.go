package export

import (
	"strings"
	"testing"
	"time"
)

func TestRender_FieldOrderAndDelimiters(t *testing.T) {
	fm := frontMatter{
		Title:   "Hello",
		Date:    "2024-01-02 03:04:05",
		Updated: "2024-01-03 03:04:05",
	}
	got, err := fm.render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := ";;;\n" +
		"  \"title\": \"Hello\",\n" +
		"  \"date\": \"2024-01-02 03:04:05\",\n" +
		"  \"updated\": \"2024-01-03 03:04:05\"\n" +
		";;;\n\n"
	if got != want {
		t.Errorf("render =\n%q\nwant\n%q", got, want)
	}
}

func TestRender_CategoriesOmittedWhenEmpty(t *testing.T) {
	fm := frontMatter{Title: "x", Date: "d", Updated: "d"}
	got, err := fm.render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "categories") {
		t.Errorf("categories should be omitted: %q", got)
	}
}

func TestRender_CategoriesIncluded(t *testing.T) {
	fm := frontMatter{Title: "x", Date: "d", Updated: "d", Categories: []string{"A", "B"}}
	got, err := fm.render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "\"categories\": [") {
		t.Errorf("missing categories list: %q", got)
	}
	if !strings.Contains(got, "\"A\"") || !strings.Contains(got, "\"B\"") {
		t.Errorf("missing category values: %q", got)
	}
}

func TestRender_PreservesUnicode(t *testing.T) {
	fm := frontMatter{Title: "中文标题 & <tags>", Date: "d", Updated: "d"}
	got, err := fm.render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "中文标题") {
		t.Errorf("unicode title was escaped: %q", got)
	}
	if !strings.Contains(got, "& <tags>") {
		t.Errorf("html characters were escaped: %q", got)
	}
}

func TestRender_NoEnclosingBraces(t *testing.T) {
	fm := frontMatter{Title: "x", Date: "d", Updated: "d"}
	got, err := fm.render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "{") || strings.Contains(got, "}") {
		t.Errorf("braces not stripped: %q", got)
	}
}

func TestFormatTime_RoundTrip(t *testing.T) {
	ms := int64(1700000000123)
	formatted := formatTime(ms)
	parsed, err := time.ParseInLocation(timeLayout, formatted, time.Local)
	if err != nil {
		t.Fatalf("parse back: %v", err)
	}
	// Round-trips at one-second resolution.
	if parsed.Unix() != ms/1000 {
		t.Errorf("parsed = %d, want %d", parsed.Unix(), ms/1000)
	}
}
