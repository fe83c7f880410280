package task

import (
	"fmt"
	"strings"
)

// FilterMode selects which tasks a projection keeps.
type FilterMode string

const (
	// FilterAll keeps every task. It is the initial mode.
	FilterAll FilterMode = "all"

	// FilterActive keeps tasks that are not completed.
	FilterActive FilterMode = "active"

	// FilterCompleted keeps completed tasks.
	FilterCompleted FilterMode = "completed"
)

// FilterModes lists the valid modes in display order.
var FilterModes = []FilterMode{FilterAll, FilterActive, FilterCompleted}

// ParseFilterMode parses a filter mode name (case-insensitive, trimmed).
// Empty input yields FilterAll.
func ParseFilterMode(s string) (FilterMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FilterAll, nil
	}
	for _, m := range FilterModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid filter: %s (want all, active or completed)", s)
}

// Keep reports whether t passes the mode. The zero value behaves as FilterAll.
func (m FilterMode) Keep(t Task) bool {
	switch m {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Project returns the tasks that pass mode and whose text contains query,
// compared case-insensitively. An empty query matches everything.
// Order is preserved and tasks is not modified.
func Project(tasks []Task, mode FilterMode, query string) []Task {
	query = strings.ToLower(query)

	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !mode.Keep(t) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Text), query) {
			continue
		}
		result = append(result, t)
	}
	return result
}
