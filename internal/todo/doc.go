// Package todo parses, stores, and updates the per-directory task list.
//
// The task store (.todo.json in the working directory) is a JSON array
// of task records:
//
//	[
//	  {
//	    "desc": "Fix login bug",
//	    "done": false,
//	    "priority": 4,
//	    "tags": ["backend"],
//	    "created": "2025-03-14 09:30:00"
//	  }
//	]
//
// A task's only identifier is its 1-based position in file order; the
// number shifts when an earlier task is deleted. Records written by
// older versions may lack priority, tags, or created — those fields
// are back-filled in memory at load time and only written out on the
// next save.
//
// # Inline metadata
//
// Free-text descriptions may embed tags and a priority:
//
//	Fix login bug @urgent #backend #auth
//
// ParseDescription strips #word tokens into the tag list and resolves
// the first @word token against the priority names low, normal, high,
// urgent. An unknown @word downgrades to normal with a warning.
//
// # Priority range
//
//   - 1: low
//   - 2: normal
//   - 3: high
//   - 4: urgent
//
// # Persistence model
//
// Repository operations load the whole sequence, mutate it in memory,
// and save it back with 2-space indentation and a trailing newline.
// Read failures degrade to an empty list without touching the file;
// write failures are logged and otherwise swallowed.
package todo
