package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fenceRe     = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\\n(.*?)\\n?```$")
	blankLineRe = regexp.MustCompile(`\n\s*\n`)
)

// SplitSections splits sectioned text into its sections. A JSON array of
// strings, optionally inside a fenced code block, yields its elements;
// anything else is split on blank lines. Blank sections are dropped.
func SplitSections(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	body := text
	if m := fenceRe.FindStringSubmatch(body); m != nil {
		body = strings.TrimSpace(m[1])
	}

	var parts []string
	if err := json.Unmarshal([]byte(body), &parts); err != nil {
		parts = blankLineRe.Split(text, -1)
	}

	sections := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sections = append(sections, p)
		}
	}
	return sections
}
