// Package format renders /news responses for MCP clients. Rendering is pure
// and keeps the upstream item order.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/byul-ai/byul-mcp/internal/byul"
)

type Mode string

const (
	ModeMarkdown Mode = "markdown"
	ModeText     Mode = "text"
	ModeJSON     Mode = "json"
	// ModeSummary is the two-part output of earlier releases: a count line
	// followed by the raw JSON.
	ModeSummary Mode = "summary"

	DefaultMode = ModeMarkdown

	MIMEMarkdown = "text/markdown"
	MIMEText     = "text/plain"
	MIMEJSON     = "application/json"

	emptyBody = "No articles."
)

// Modes lists the accepted mode names in schema order.
var Modes = []string{string(ModeMarkdown), string(ModeText), string(ModeJSON), string(ModeSummary)}

// ParseMode resolves a mode name. An empty name yields DefaultMode.
func ParseMode(name string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(name))); m {
	case "":
		return DefaultMode, nil
	case ModeMarkdown, ModeText, ModeJSON, ModeSummary:
		return m, nil
	default:
		return "", fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(Modes, ", "))
	}
}

type Options struct {
	Mode          Mode
	IncludeHeader bool
}

// Part is one rendered output block.
type Part struct {
	Text     string
	MIMEType string
}

// Render produces the output blocks for resp. The header flag is ignored by
// the json and summary modes.
func Render(resp byul.NewsResponse, opts Options) []Part {
	mode := opts.Mode
	if mode == "" {
		mode = DefaultMode
	}
	switch mode {
	case ModeJSON:
		return []Part{{Text: rawJSON(resp.Raw), MIMEType: MIMEJSON}}
	case ModeSummary:
		return []Part{
			{Text: summary(len(resp.Items)), MIMEType: MIMEText},
			{Text: rawJSON(resp.Raw), MIMEType: MIMEJSON},
		}
	case ModeText:
		return []Part{{Text: list(resp.Items, "", "News (%d)\n", opts.IncludeHeader), MIMEType: MIMEText}}
	default:
		return []Part{{Text: list(resp.Items, "- ", "# News (%d)\n\n", opts.IncludeHeader), MIMEType: MIMEMarkdown}}
	}
}

// Format renders items and raw as a single string, joining multi-part output
// with a blank line.
func Format(items []byul.Article, raw json.RawMessage, mode Mode, includeHeader bool) string {
	parts := Render(byul.NewsResponse{Items: items, Raw: raw}, Options{Mode: mode, IncludeHeader: includeHeader})
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, "\n\n")
}

func list(items []byul.Article, bullet, header string, includeHeader bool) string {
	var b strings.Builder
	if includeHeader {
		fmt.Fprintf(&b, header, len(items))
	}
	if len(items) == 0 {
		b.WriteString(emptyBody)
		return b.String()
	}
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(bullet)
		b.WriteString(it.Date)
		b.WriteString(" | ")
		b.WriteString(it.Title)
		b.WriteString(" | ")
		b.WriteString(it.URL)
	}
	return b.String()
}

func summary(n int) string {
	if n == 1 {
		return "Found 1 article."
	}
	return fmt.Sprintf("Found %d articles.", n)
}

func rawJSON(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "{}"
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}
