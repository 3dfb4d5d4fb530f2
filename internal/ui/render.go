package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ShauravBhatt/Devtodo/internal/todo"
)

// FormatTask renders the one-line view of a task:
//
//	 3. ⏳ 🔴 Fix login bug #backend (yesterday)
//
// index is the task's original 1-based position in the store.
func FormatTask(t todo.Task, index int, showCreated bool, now time.Time) string {
	status := "⏳"
	if t.Done {
		status = "✅"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%2d. %s %s %s", index, status, t.Priority.Icon(), t.Desc)
	if len(t.Tags) > 0 {
		b.WriteString(" #" + strings.Join(t.Tags, " #"))
	}
	if showCreated {
		if rel := relativeCreated(t.Created, now); rel != "" {
			b.WriteString(" (" + rel + ")")
		}
	}
	return b.String()
}

// relativeCreated renders a creation timestamp relative to now:
// "today", "yesterday", "<n>d ago" under a week, MM/DD beyond.
func relativeCreated(created string, now time.Time) string {
	t, ok := todo.ParseCreated(created)
	if !ok {
		return ""
	}
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return t.Format("01/02")
	}
}

// RenderList writes a full listing: header with store-wide counts,
// then either priority-grouped sections or a flat list. Tasks keep
// their original numbers so they stay valid for done/rm/update.
func RenderList(w io.Writer, res todo.ListResult, now time.Time) {
	if res.Total == 0 {
		fmt.Fprintln(w, "🎉 Awesome! No pending tasks - you're all caught up!")
		return
	}

	if len(res.Items) == 0 {
		fmt.Fprintln(w, warnStyle.Render("🔍 No tasks match your filters"+filterSummary(res.Opts)))
		Tipf(w, "💡 Try: devtodo ls --done  or  devtodo ls  (to see all pending)")
		return
	}

	if res.Opts.IncludeDone {
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("📋 All Tasks (%d total, %d pending, %d done):",
			res.Total, res.Pending, res.Done)))
	} else {
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("📋 Pending Tasks (%d of %d):", res.Pending, res.Total)))
	}

	if res.Opts.Grouped() {
		renderGrouped(w, res, now)
		return
	}
	for _, it := range res.Items {
		fmt.Fprintln(w, FormatTask(it.Task, it.Index, res.Opts.ShowCreated, now))
	}
}

// renderGrouped prints tasks under per-priority headers, highest
// group first, with a blank line between groups.
func renderGrouped(w io.Writer, res todo.ListResult, now time.Time) {
	var current todo.Priority
	first := true
	for _, it := range res.Items {
		if first || it.Task.Priority != current {
			if !first {
				fmt.Fprintln(w)
			}
			current = it.Task.Priority
			fmt.Fprintf(w, "  %s %s:\n", current.Icon(), strings.ToUpper(current.Name()))
			first = false
		}
		fmt.Fprintln(w, "    "+FormatTask(it.Task, it.Index, res.Opts.ShowCreated, now))
	}
}

func filterSummary(opts todo.ListOptions) string {
	var parts []string
	if len(opts.Tags) > 0 {
		parts = append(parts, "tags: #"+strings.Join(opts.Tags, " #"))
	}
	if opts.Priority != 0 {
		parts = append(parts, "priority: "+opts.Priority.Name())
	}
	if !opts.IncludeDone {
		parts = append(parts, "status: pending")
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// RenderAdded reports a freshly appended task.
func RenderAdded(w io.Writer, res todo.AddResult) {
	tags := ""
	if len(res.Task.Tags) > 0 {
		tags = " #" + strings.Join(res.Task.Tags, " #")
	}
	Successf(w, "✅ Added [%s]: %s%s", strings.ToUpper(res.Task.Priority.Name()), res.Task.Desc, tags)
}

// RenderChanges reports the field mutations applied by an update.
func RenderChanges(w io.Writer, index int, changes []todo.Change) {
	fmt.Fprintf(w, "📝 Updated task %d:\n", index)
	for _, c := range changes {
		fmt.Fprintf(w, "   • %s: %s → %s\n", c.Field, c.Old, c.New)
	}
}

// RenderCleared reports a completed-task sweep, listing the removed
// descriptions when there are five or fewer.
func RenderCleared(w io.Writer, removed []todo.Task) {
	Successf(w, "🧹 Cleared %d completed tasks", len(removed))
	if len(removed) > 5 {
		return
	}
	fmt.Fprintln(w, "   Removed:")
	for _, t := range removed {
		tags := ""
		if len(t.Tags) > 0 {
			tags = " #" + strings.Join(t.Tags, " #")
		}
		fmt.Fprintf(w, "   • %s%s\n", t.Desc, tags)
	}
}

// RenderStats writes the productivity dashboard.
func RenderStats(w io.Writer, s todo.Stats) {
	if s.Total == 0 {
		fmt.Fprintln(w, "📊 No tasks to analyze yet!")
		Tipf(w, "💡 Start by adding some tasks: devtodo add \"Your first task\"")
		return
	}

	fmt.Fprintln(w, titleStyle.Render("📊 Your Productivity Dashboard:"))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "   📋 Total Tasks: %d\n", s.Total)
	fmt.Fprintf(w, "   ✅ Completed: %d (%.0f%%)\n", s.Done, s.CompletionRate)
	fmt.Fprintf(w, "   ⏳ Pending: %d\n", s.Pending)
	fmt.Fprintln(w, "   "+encouragement(s.CompletionRate))

	if s.Pending == 0 {
		fmt.Fprintln(w, "   🎉 All tasks completed! You're a productivity superstar!")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "   🎯 What needs attention:")
	for _, p := range todo.PrioritiesDescending {
		count := s.PendingByPriority[p]
		if count == 0 {
			continue
		}
		fmt.Fprintf(w, "      %s %s: %d %s\n", p.Icon(), capitalize(p.Name()), count, plural(count, "task"))
	}

	if len(s.TopTags) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "   🏷️  Active categories:")
		for _, tc := range s.TopTags {
			fmt.Fprintf(w, "      #%s: %d %s\n", tc.Tag, tc.Count, plural(tc.Count, "task"))
		}
	}

	fmt.Fprintln(w, rule)
}

// encouragement maps a completion percentage onto one of five banners.
func encouragement(rate float64) string {
	switch {
	case rate >= 80:
		return "🏆 Amazing! You're crushing it!"
	case rate >= 60:
		return "🎯 Great progress! Keep it up!"
	case rate >= 40:
		return "💪 You're making good headway!"
	case rate >= 20:
		return "📈 Getting started - stay focused!"
	default:
		return "🚀 Time to tackle those tasks!"
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Welcome writes the zero-argument welcome screen around the current
// task state.
func Welcome(w io.Writer, version string, res todo.ListResult, now time.Time) {
	fmt.Fprintln(w, titleStyle.Render("✨ Welcome to DevTodo v"+version))
	fmt.Fprintln(w, rule)

	if res.Total > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "📋 YOUR TASKS:")
		RenderList(w, res, now)
		fmt.Fprintln(w)
		Tipf(w, "💡 TIP: Use 'devtodo done <number>' to mark tasks complete!")
	} else {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "🎯 Ready to get organized? Let's add your first task!")
		fmt.Fprintln(w)
		Tipf(w, "💡 EXAMPLE: devtodo add \"Learn Go programming\"")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "🚀 GETTING STARTED:")
	fmt.Fprintln(w, "   devtodo add \"Your task\"           ← Add a simple task")
	fmt.Fprintln(w, "   devtodo add \"Fix bug @urgent\"    ← Add with priority")
	fmt.Fprintln(w, "   devtodo add \"Code review #work\"  ← Add with tags")
	fmt.Fprintln(w, "   devtodo ls                         ← See all tasks")
	fmt.Fprintln(w, "   devtodo done 1                     ← Complete task #1")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "⚡ QUICK COMMANDS:")
	fmt.Fprintln(w, "   add    ls    done    rm    update    stats    clear    help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "🏷️  POWER FEATURES:")
	fmt.Fprintln(w, "   #tag1 #tag2        → Organize with tags")
	fmt.Fprintln(w, "   @urgent @high      → Set priority levels")
	fmt.Fprintln(w, "   @normal @low       → Lower priorities")
	fmt.Fprintln(w)
	Tipf(w, "❓ Need help? Try 'devtodo help' for detailed guide")
	fmt.Fprintln(w, rule)
}

// Help writes the detailed command guide.
func Help(w io.Writer, version string) {
	fmt.Fprintln(w, titleStyle.Render("✨ DevTodo v"+version+" - Your Personal Task Manager"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "🎯 ESSENTIAL COMMANDS:")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  add <task>           📝 Create a new task")
	fmt.Fprintln(w, "  ls                   📋 Show your tasks")
	fmt.Fprintln(w, "  done <number>        ✅ Mark task complete")
	fmt.Fprintln(w, "  undone <number>      ⏳ Reopen a task")
	fmt.Fprintln(w, "  rm <number>          🗑️  Delete a task")
	fmt.Fprintln(w, "  update <number>      ✏️  Modify a task")
	fmt.Fprintln(w, "  stats                📊 View progress")
	fmt.Fprintln(w, "  clear                🧹 Remove completed tasks")
	fmt.Fprintln(w, "  doctor               🩺 Check the task file")
	fmt.Fprintln(w, "  tui                  🖥️  Interactive browser")
	fmt.Fprintln(w, "  help                 ❓ Show this guide")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "🏷️  SMART FEATURES:")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  Priority Levels:     @urgent  @high  @normal  @low")
	fmt.Fprintln(w, "  Tags:                #work #personal #coding #bug")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ✨ Use them anywhere in your task:")
	fmt.Fprintln(w, "     devtodo add \"Fix login bug @urgent #backend\"")
	fmt.Fprintln(w, "     devtodo add \"#personal Buy groceries @low\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "🔍 FILTERING & SORTING:")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  devtodo ls --tag work              Show only #work tasks")
	fmt.Fprintln(w, "  devtodo ls --priority urgent       Show urgent tasks only")
	fmt.Fprintln(w, "  devtodo ls --done                  Include completed tasks")
	fmt.Fprintln(w, "  devtodo ls --created               Show when tasks were made")
	fmt.Fprintln(w, "  devtodo ls --sort created          Sort by creation date")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "📝 PRACTICAL EXAMPLES:")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  devtodo add \"Review pull request @high #code\"")
	fmt.Fprintln(w, "  devtodo add \"Team meeting tomorrow #work\"")
	fmt.Fprintln(w, "  devtodo update 2 --priority urgent")
	fmt.Fprintln(w, "  devtodo ls --tag personal --done")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "💡 PRO TIPS:")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  • Use quotes for complex tasks: 'Deploy app @urgent'")
	fmt.Fprintln(w, "  • Tasks are saved in .todo.json in current folder")
	fmt.Fprintln(w, "  • Higher priority tasks show up first")
	fmt.Fprintln(w, "  • Numbers in commands match the list numbers")
	fmt.Fprintln(w, "  • Mix and match tags and priorities freely!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Happy task managing! 🎉")
}
