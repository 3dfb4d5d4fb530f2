package todo

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	tagPattern      = regexp.MustCompile(`#(\w+)`)
	tagStripPattern = regexp.MustCompile(`#\w+\s*`)
	priPattern      = regexp.MustCompile(`@(\w+)`)
	priStripPattern = regexp.MustCompile(`@\w+\s*`)
)

// Parsed is the result of extracting inline metadata from free text.
type Parsed struct {
	Desc     string
	Tags     []string
	Priority Priority
	// Unknown holds an unrecognized @token from the input, if any.
	// The priority has already been downgraded to normal; callers
	// decide how to surface the warning.
	Unknown string
}

// EmptyDescError reports input that had no description left once
// inline tags and priority tokens were stripped.
type EmptyDescError struct {
	Input string
}

func (e *EmptyDescError) Error() string {
	return fmt.Sprintf("task description cannot be empty after parsing tags/priority from: %q", e.Input)
}

// ParseDescription extracts #tag tokens and the first @priority token
// from raw text. Tags keep their typed case and input order. The first
// @word decides the priority; an unknown name falls back to normal with
// Unknown set. Once any @word matched, every @word token is stripped so
// re-parsing the cleaned text is a no-op. Interior whitespace collapses
// to single spaces.
func ParseDescription(raw string) (Parsed, error) {
	p := Parsed{Priority: PriorityNormal, Tags: []string{}}

	desc := raw
	for _, m := range tagPattern.FindAllStringSubmatch(desc, -1) {
		p.Tags = append(p.Tags, m[1])
	}
	desc = tagStripPattern.ReplaceAllString(desc, "")

	if m := priPattern.FindStringSubmatch(desc); m != nil {
		token := strings.ToLower(m[1])
		if level, ok := ParsePriority(token); ok {
			p.Priority = level
		} else {
			p.Unknown = token
		}
		desc = priStripPattern.ReplaceAllString(desc, "")
	}

	p.Desc = strings.Join(strings.Fields(desc), " ")
	if p.Desc == "" {
		return Parsed{}, &EmptyDescError{Input: raw}
	}
	return p, nil
}
