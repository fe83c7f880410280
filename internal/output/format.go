// Package output provides formatters for CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"todo/internal/task"
)

// NoTasks is printed when a projection is empty.
const NoTasks = "no tasks found"

// FormatTask formats a task line.
// Format: "{N:>4}  [x] {TEXT}\n" ("[ ]" for open tasks)
func FormatTask(w io.Writer, num int, t task.Task) {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", num, mark, normalizeText(t.Text))
}

// FormatTasks prints tasks numbered by their position in the full collection.
func FormatTasks(w io.Writer, tasks []task.Task, positions map[int64]int) {
	for _, t := range tasks {
		FormatTask(w, positions[t.ID], t)
	}
}

// Positions maps task ids to their 1-based position in all.
func Positions(all []task.Task) map[int64]int {
	positions := make(map[int64]int, len(all))
	for i, t := range all {
		positions[t.ID] = i + 1
	}
	return positions
}

// WriteJSON prints tasks in the snapshot format, one indented array.
func WriteJSON(w io.Writer, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}

// normalizeText normalizes task text for display.
// - Newlines are replaced with spaces
// - Empty or whitespace-only text becomes "(untitled)"
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
