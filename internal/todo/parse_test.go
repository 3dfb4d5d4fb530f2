package todo

import (
	"errors"
	"testing"
)

func TestParseDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		desc     string
		tags     []string
		priority Priority
		unknown  string
	}{
		{
			name:     "plain text",
			input:    "Buy groceries",
			desc:     "Buy groceries",
			tags:     []string{},
			priority: PriorityNormal,
		},
		{
			name:     "inline priority and tag",
			input:    "Fix bug @urgent #backend",
			desc:     "Fix bug",
			tags:     []string{"backend"},
			priority: PriorityUrgent,
		},
		{
			name:     "unknown priority falls back to normal",
			input:    "Unknown @bogus",
			desc:     "Unknown",
			tags:     []string{},
			priority: PriorityNormal,
			unknown:  "bogus",
		},
		{
			name:     "tags keep typed case and order",
			input:    "#Work review PR #CodeReview",
			desc:     "review PR",
			tags:     []string{"Work", "CodeReview"},
			priority: PriorityNormal,
		},
		{
			name:     "priority name is case-insensitive",
			input:    "deploy @URGENT",
			desc:     "deploy",
			tags:     []string{},
			priority: PriorityUrgent,
		},
		{
			name:     "first at-token wins, all are stripped",
			input:    "call @high then @low",
			desc:     "call then",
			tags:     []string{},
			priority: PriorityHigh,
		},
		{
			name:     "whitespace collapses",
			input:    "  too    many   spaces  ",
			desc:     "too many spaces",
			tags:     []string{},
			priority: PriorityNormal,
		},
		{
			name:     "metadata in the middle",
			input:    "Fix @high the #auth login flow",
			desc:     "Fix the login flow",
			tags:     []string{"auth"},
			priority: PriorityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDescription(tt.input)
			if err != nil {
				t.Fatalf("ParseDescription(%q) failed: %v", tt.input, err)
			}
			if got.Desc != tt.desc {
				t.Errorf("Desc: got %q, want %q", got.Desc, tt.desc)
			}
			if len(got.Tags) != len(tt.tags) {
				t.Fatalf("Tags: got %v, want %v", got.Tags, tt.tags)
			}
			for i := range tt.tags {
				if got.Tags[i] != tt.tags[i] {
					t.Errorf("Tags[%d]: got %q, want %q", i, got.Tags[i], tt.tags[i])
				}
			}
			if got.Priority != tt.priority {
				t.Errorf("Priority: got %d, want %d", got.Priority, tt.priority)
			}
			if got.Unknown != tt.unknown {
				t.Errorf("Unknown: got %q, want %q", got.Unknown, tt.unknown)
			}
		})
	}
}

func TestParseDescriptionEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "only a tag", input: "   #tag   "},
		{name: "only a priority", input: "@urgent"},
		{name: "only metadata", input: "#a #b @high"},
		{name: "blank", input: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDescription(tt.input)
			var emptyErr *EmptyDescError
			if !errors.As(err, &emptyErr) {
				t.Fatalf("ParseDescription(%q): got err %v, want EmptyDescError", tt.input, err)
			}
			if emptyErr.Input != tt.input {
				t.Errorf("EmptyDescError.Input: got %q, want %q", emptyErr.Input, tt.input)
			}
		})
	}
}

// A cleaned description must parse to itself: no leftover tags, no
// leftover priority tokens.
func TestParseDescriptionIdempotent(t *testing.T) {
	inputs := []string{
		"Fix bug @urgent #backend",
		"call @high then @low",
		"#a middle #b text @bogus",
		"plain text",
	}

	for _, input := range inputs {
		first, err := ParseDescription(input)
		if err != nil {
			t.Fatalf("first parse of %q failed: %v", input, err)
		}
		second, err := ParseDescription(first.Desc)
		if err != nil {
			t.Fatalf("second parse of %q failed: %v", first.Desc, err)
		}
		if second.Desc != first.Desc {
			t.Errorf("re-parse changed desc: %q -> %q", first.Desc, second.Desc)
		}
		if len(second.Tags) != 0 {
			t.Errorf("re-parse of %q found tags %v", first.Desc, second.Tags)
		}
		if second.Priority != PriorityNormal {
			t.Errorf("re-parse of %q found priority %d", first.Desc, second.Priority)
		}
	}
}
