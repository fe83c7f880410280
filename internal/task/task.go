// Package task defines the task entity and the pure operations over a task
// collection. Nothing here performs I/O; callers own persistence.
package task

import (
	"strings"
	"time"
)

// Task represents a single task item.
// Field names match the persisted JSON snapshot.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"` // ms since Unix epoch
}

// Created returns the creation time.
func (t Task) Created() time.Time {
	return time.UnixMilli(t.CreatedAt)
}

// Add trims text and prepends a new open task with the given id.
// Whitespace-only text leaves tasks unchanged.
func Add(tasks []Task, text string, id int64, now time.Time) []Task {
	text = strings.TrimSpace(text)
	if text == "" {
		return tasks
	}

	result := make([]Task, 0, len(tasks)+1)
	result = append(result, Task{
		ID:        id,
		Text:      text,
		Completed: false,
		CreatedAt: now.UnixMilli(),
	})
	return append(result, tasks...)
}

// Delete returns tasks without the task matching id.
func Delete(tasks []Task, id int64) []Task {
	if _, ok := Find(tasks, id); !ok {
		return tasks
	}

	result := make([]Task, 0, len(tasks)-1)
	for _, t := range tasks {
		if t.ID != id {
			result = append(result, t)
		}
	}
	return result
}

// Edit replaces the text of the task matching id.
// Text is trimmed; whitespace-only text leaves tasks unchanged.
func Edit(tasks []Task, id int64, text string) []Task {
	text = strings.TrimSpace(text)
	if text == "" {
		return tasks
	}
	return update(tasks, id, func(t *Task) { t.Text = text })
}

// Toggle flips the completed flag of the task matching id.
func Toggle(tasks []Task, id int64) []Task {
	return update(tasks, id, func(t *Task) { t.Completed = !t.Completed })
}

// Find returns the index of the task matching id.
func Find(tasks []Task, id int64) (int, bool) {
	for i, t := range tasks {
		if t.ID == id {
			return i, true
		}
	}
	return -1, false
}

// update applies fn to a copy of the matching task in a copy of tasks.
func update(tasks []Task, id int64, fn func(*Task)) []Task {
	i, ok := Find(tasks, id)
	if !ok {
		return tasks
	}

	result := make([]Task, len(tasks))
	copy(result, tasks)
	fn(&result[i])
	return result
}
