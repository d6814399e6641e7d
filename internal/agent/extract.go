package agent

import (
	"regexp"
	"strconv"
	"strings"
)

// Buckets maps a bucket name to the lines that matched its keyword set,
// in original line order.
type Buckets map[string][]string

// LineExtractor is a best-effort categorizer for free-form model output.
// A line lands in a bucket when it contains at least one of the bucket's
// keywords (case-insensitive substring). A line may land in several
// buckets, and nothing guarantees any line matches at all — the result is
// approximate categorization with no correctness guarantee.
type LineExtractor struct {
	Sets map[string][]string
}

func (e LineExtractor) Extract(text string) Buckets {
	out := make(Buckets, len(e.Sets))
	for name := range e.Sets {
		out[name] = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		for name, keywords := range e.Sets {
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					out[name] = append(out[name], trimmed)
					break
				}
			}
		}
	}

	return out
}

// Score pulls "<label>: <digits>" out of text, case-insensitively.
// Returns nil when no match.
func Score(text, label string) *int {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(label) + `[:\s]*(\d+)`)
	if err != nil {
		return nil
	}
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

var bulletItem = regexp.MustCompile(`^\s*(?:[-•*]|\d+[.)])\s*(.+)`)

// bulletLines collects list items (dash, bullet or numbered) from text.
func bulletLines(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		if m := bulletItem.FindStringSubmatch(line); len(m) > 1 {
			if s := strings.TrimSpace(m[1]); s != "" {
				items = append(items, s)
			}
		}
	}
	return items
}

// sectionAfter returns the non-empty lines following the first line that
// contains one of the markers. Falls back to the whole text when no marker
// line is found.
func sectionAfter(text string, markers ...string) string {
	var out []string
	in := false
	for _, line := range strings.Split(text, "\n") {
		if !in {
			lower := strings.ToLower(line)
			for _, m := range markers {
				if strings.Contains(lower, m) {
					in = true
					break
				}
			}
			continue
		}
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return text
	}
	return strings.Join(out, "\n")
}

// commaItems splits everything after the first colon of each matching line
// into comma-separated entries.
func commaItems(lines []string) []string {
	var items []string
	for _, line := range lines {
		rest := line
		if idx := strings.Index(line, ":"); idx != -1 {
			rest = line[idx+1:]
		}
		for _, part := range strings.Split(rest, ",") {
			if s := strings.TrimSpace(part); s != "" {
				items = append(items, s)
			}
		}
	}
	return items
}
