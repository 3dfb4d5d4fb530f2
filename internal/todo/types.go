// Package todo parses, stores, and updates the per-directory task list.
package todo

import (
	"strings"
	"time"
)

// Filename is the task store file created in the working directory.
const Filename = ".todo.json"

// CreatedLayout is the timestamp format written for new tasks.
const CreatedLayout = "2006-01-02 15:04:05"

// Priority is an ordinal task severity, low < normal < high < urgent.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityNormal Priority = 2
	PriorityHigh   Priority = 3
	PriorityUrgent Priority = 4
)

var priorityNames = map[Priority]string{
	PriorityLow:    "low",
	PriorityNormal: "normal",
	PriorityHigh:   "high",
	PriorityUrgent: "urgent",
}

var priorityLevels = map[string]Priority{
	"low":    PriorityLow,
	"normal": PriorityNormal,
	"high":   PriorityHigh,
	"urgent": PriorityUrgent,
}

var priorityIcons = map[Priority]string{
	PriorityLow:    "🟢",
	PriorityNormal: "🔵",
	PriorityHigh:   "🟠",
	PriorityUrgent: "🔴",
}

// PrioritiesDescending lists all levels from urgent down to low.
// Breakdown views iterate it so ordering stays fixed.
var PrioritiesDescending = []Priority{PriorityUrgent, PriorityHigh, PriorityNormal, PriorityLow}

// ParsePriority resolves a level name (case-insensitive) to a Priority.
func ParsePriority(name string) (Priority, bool) {
	p, ok := priorityLevels[strings.ToLower(name)]
	return p, ok
}

// PriorityNames returns the valid level names in ascending severity order.
func PriorityNames() []string {
	return []string{"low", "normal", "high", "urgent"}
}

// Name returns the level name, or "normal" for out-of-range values.
func (p Priority) Name() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "normal"
}

// Icon returns the colored dot used in listings.
func (p Priority) Icon() string {
	if icon, ok := priorityIcons[p]; ok {
		return icon
	}
	return priorityIcons[PriorityNormal]
}

// Valid reports whether p is one of the four known levels.
func (p Priority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

// Task is a single to-do record. Field names match the .todo.json
// format written by earlier versions of the tool.
type Task struct {
	Desc     string   `json:"desc"`
	Done     bool     `json:"done"`
	Priority Priority `json:"priority"`
	Tags     []string `json:"tags"`
	Created  string   `json:"created"`
}

// ParseCreated parses a stored creation timestamp. Both the current
// layout and RFC3339 (written by the migration path) are accepted.
func ParseCreated(s string) (time.Time, bool) {
	for _, layout := range []string{CreatedLayout, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// migrate back-fills fields missing from records written by older
// versions: priority defaults to normal, tags to an empty list,
// created to now. Applied in memory only; the file is not rewritten
// until the next save.
func migrate(tasks []Task, now time.Time) []Task {
	for i := range tasks {
		if tasks[i].Priority == 0 {
			tasks[i].Priority = PriorityNormal
		}
		if tasks[i].Tags == nil {
			tasks[i].Tags = []string{}
		}
		if tasks[i].Created == "" {
			tasks[i].Created = now.Format(time.RFC3339)
		}
	}
	return tasks
}
