package todo

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// RangeError reports a task number outside the stored sequence.
type RangeError struct {
	Index int
	Count int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid task number %d: use 1-%d", e.Index, e.Count)
}

// Repository runs task operations against a Store. Every operation
// loads the full sequence, mutates it in memory, and saves it back;
// there is no incremental persistence.
type Repository struct {
	store  Store
	logger *log.Logger
	now    func() time.Time
}

// NewRepository returns a repository over store. Warnings and storage
// failures are reported through logger.
func NewRepository(store Store, logger *log.Logger) *Repository {
	return &Repository{store: store, logger: logger, now: time.Now}
}

// load reads the store and applies the in-memory migration. Read
// failures are logged and treated as an empty list; the file on disk
// is left untouched.
func (r *Repository) load() []Task {
	tasks, err := r.store.Load()
	if err != nil {
		r.logger.Error("error reading todo file", "err", err)
		return []Task{}
	}
	return migrate(tasks, r.now())
}

// save writes the full sequence back. A write failure is logged and
// otherwise swallowed: the operation's result has already been decided
// in memory and is reported to the user as-is.
func (r *Repository) save(tasks []Task) {
	if err := r.store.Save(tasks); err != nil {
		r.logger.Error("error saving tasks", "err", err)
	}
}

func (r *Repository) warnUnknownPriority(token string) {
	r.logger.Warn("unknown priority, using normal",
		"got", token,
		"valid", strings.Join(PriorityNames(), ", "))
}

// Tasks returns the current sequence with migration applied.
func (r *Repository) Tasks() []Task {
	return r.load()
}

// AddResult describes a successfully appended task.
type AddResult struct {
	Task  Task
	Index int
}

// Add parses raw for inline metadata and appends a new pending task.
// An explicit priority or tag list from flags wins over inline tokens;
// a non-nil empty tag list still counts as explicit.
func (r *Repository) Add(raw string, explicit Priority, tags []string) (AddResult, error) {
	parsed, err := ParseDescription(raw)
	if err != nil {
		return AddResult{}, err
	}
	if parsed.Unknown != "" {
		r.warnUnknownPriority(parsed.Unknown)
	}

	task := Task{
		Desc:     parsed.Desc,
		Done:     false,
		Priority: parsed.Priority,
		Tags:     parsed.Tags,
		Created:  r.now().Format(CreatedLayout),
	}
	if explicit.Valid() {
		task.Priority = explicit
	}
	if tags != nil {
		task.Tags = tags
	}

	all := r.load()
	all = append(all, task)
	r.save(all)
	return AddResult{Task: task, Index: len(all)}, nil
}

// SortBy selects the listing order.
type SortBy string

const (
	SortByPriority SortBy = "priority"
	SortByCreated  SortBy = "created"
)

// ListOptions filters and orders a listing.
type ListOptions struct {
	Tags        []string // keep tasks with at least one matching tag
	Priority    Priority // 0 = no priority filter
	SortBy      SortBy
	IncludeDone bool
	ShowCreated bool
}

// Grouped reports whether the listing renders under per-priority
// headers: only when sorting by priority without a priority filter.
func (o ListOptions) Grouped() bool {
	return o.SortBy == SortByPriority && o.Priority == 0
}

// ListItem pairs a task with its original 1-based position in the
// unfiltered sequence. Positions are the displayed task numbers.
type ListItem struct {
	Index int
	Task  Task
}

// ListResult is a filtered, sorted view plus counts over the full
// unfiltered sequence.
type ListResult struct {
	Total   int
	Pending int
	Done    int
	Items   []ListItem
	Opts    ListOptions
}

// List builds a listing view. Counts always cover the whole store,
// filters only shrink Items.
func (r *Repository) List(opts ListOptions) ListResult {
	all := r.load()

	res := ListResult{Total: len(all), Opts: opts}
	for _, t := range all {
		if t.Done {
			res.Done++
		} else {
			res.Pending++
		}
	}

	items := make([]ListItem, 0, len(all))
	for i, t := range all {
		items = append(items, ListItem{Index: i + 1, Task: t})
	}

	if !opts.IncludeDone {
		items = keepItems(items, func(t Task) bool { return !t.Done })
	}
	if len(opts.Tags) > 0 {
		items = keepItems(items, func(t Task) bool { return hasAnyTag(t, opts.Tags) })
	}
	if opts.Priority != 0 && opts.Priority.Valid() {
		items = keepItems(items, func(t Task) bool { return t.Priority == opts.Priority })
	}

	switch opts.SortBy {
	case SortByCreated:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Task.Created > items[j].Task.Created
		})
	case SortByPriority:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i].Task, items[j].Task
			if a.Priority != b.Priority {
				return a.Priority > b.Priority
			}
			return a.Created < b.Created
		})
	}

	res.Items = items
	return res
}

func keepItems(items []ListItem, keep func(Task) bool) []ListItem {
	out := items[:0]
	for _, it := range items {
		if keep(it.Task) {
			out = append(out, it)
		}
	}
	return out
}

func hasAnyTag(t Task, filters []string) bool {
	for _, want := range filters {
		for _, have := range t.Tags {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

// MarkDone completes the task at the 1-based index. The returned bool
// is false when the task was already completed (no save happens).
func (r *Repository) MarkDone(index int) (Task, bool, error) {
	return r.setDone(index, true)
}

// MarkUndone reopens the task at the 1-based index. The returned bool
// is false when the task was already pending.
func (r *Repository) MarkUndone(index int) (Task, bool, error) {
	return r.setDone(index, false)
}

func (r *Repository) setDone(index int, done bool) (Task, bool, error) {
	all := r.load()
	if index < 1 || index > len(all) {
		return Task{}, false, &RangeError{Index: index, Count: len(all)}
	}
	if all[index-1].Done == done {
		return all[index-1], false, nil
	}
	all[index-1].Done = done
	r.save(all)
	return all[index-1], true, nil
}

// Delete removes the task at the 1-based index. Later tasks shift
// down by one position.
func (r *Repository) Delete(index int) (Task, error) {
	all := r.load()
	if index < 1 || index > len(all) {
		return Task{}, &RangeError{Index: index, Count: len(all)}
	}
	removed := all[index-1]
	all = append(all[:index-1], all[index:]...)
	r.save(all)
	return removed, nil
}

// UpdateOptions carries the fields to change. A zero Priority and a
// nil Tags slice mean "not given"; an empty non-nil Tags slice
// explicitly clears the tags.
type UpdateOptions struct {
	Desc     string
	Priority Priority
	Tags     []string
}

// Change records one applied field mutation for reporting. Old and
// New are already formatted for display.
type Change struct {
	Field string
	Old   string
	New   string
}

// Update edits the task at the 1-based index. A new description is
// re-parsed for inline metadata; inline priority and tags apply only
// when the caller did not pass explicit ones. Nothing is saved when
// no field actually changes.
func (r *Repository) Update(index int, opts UpdateOptions) ([]Change, error) {
	all := r.load()
	if index < 1 || index > len(all) {
		return nil, &RangeError{Index: index, Count: len(all)}
	}
	task := &all[index-1]
	var changes []Change

	if opts.Desc != "" {
		parsed, err := ParseDescription(opts.Desc)
		if err != nil {
			return nil, err
		}
		if parsed.Unknown != "" {
			r.warnUnknownPriority(parsed.Unknown)
		}

		old := task.Desc
		task.Desc = parsed.Desc
		changes = append(changes, Change{
			Field: "description",
			Old:   fmt.Sprintf("'%s'", old),
			New:   fmt.Sprintf("'%s'", parsed.Desc),
		})

		if opts.Priority == 0 && parsed.Priority != task.Priority {
			changes = append(changes, Change{
				Field: "priority",
				Old:   task.Priority.Name(),
				New:   parsed.Priority.Name(),
			})
			task.Priority = parsed.Priority
		}
		if opts.Tags == nil && !equalTags(parsed.Tags, task.Tags) {
			changes = append(changes, Change{
				Field: "tags",
				Old:   formatTags(task.Tags),
				New:   formatTags(parsed.Tags),
			})
			task.Tags = parsed.Tags
		}
	}

	if opts.Priority != 0 && opts.Priority.Valid() && opts.Priority != task.Priority {
		changes = append(changes, Change{
			Field: "priority",
			Old:   task.Priority.Name(),
			New:   opts.Priority.Name(),
		})
		task.Priority = opts.Priority
	}

	if opts.Tags != nil && !equalTags(opts.Tags, task.Tags) {
		changes = append(changes, Change{
			Field: "tags",
			Old:   formatTags(task.Tags),
			New:   formatTags(opts.Tags),
		})
		task.Tags = opts.Tags
	}

	if len(changes) == 0 {
		return nil, nil
	}
	r.save(all)
	return changes, nil
}

func equalTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "none"
	}
	return "#" + strings.Join(tags, " #")
}

// ClearCompleted removes every completed task, preserving the
// relative order of the rest. Nothing is saved when there was
// nothing to clear.
func (r *Repository) ClearCompleted() []Task {
	all := r.load()
	var removed []Task
	remaining := all[:0]
	for _, t := range all {
		if t.Done {
			removed = append(removed, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	r.save(remaining)
	return removed
}

// TagCount is one entry of the active-tag leaderboard.
type TagCount struct {
	Tag   string
	Count int
}

// Stats summarizes the store for the dashboard view.
type Stats struct {
	Total             int
	Done              int
	Pending           int
	CompletionRate    float64 // percent, 0 for an empty store
	PendingByPriority map[Priority]int
	TopTags           []TagCount // up to 5, by pending-task count
}

// Stats computes dashboard numbers over the full store. Tag counts
// only cover pending tasks; ties keep first-seen order.
func (r *Repository) Stats() Stats {
	all := r.load()

	s := Stats{
		Total:             len(all),
		PendingByPriority: make(map[Priority]int),
	}

	tagCounts := make(map[string]int)
	var tagOrder []string
	for _, t := range all {
		if t.Done {
			s.Done++
			continue
		}
		s.Pending++
		s.PendingByPriority[t.Priority]++
		for _, tag := range t.Tags {
			if _, seen := tagCounts[tag]; !seen {
				tagOrder = append(tagOrder, tag)
			}
			tagCounts[tag]++
		}
	}

	if s.Total > 0 {
		s.CompletionRate = float64(s.Done) / float64(s.Total) * 100
	}

	sort.SliceStable(tagOrder, func(i, j int) bool {
		return tagCounts[tagOrder[i]] > tagCounts[tagOrder[j]]
	})
	for i, tag := range tagOrder {
		if i == 5 {
			break
		}
		s.TopTags = append(s.TopTags, TagCount{Tag: tag, Count: tagCounts[tag]})
	}
	return s
}
