// Package service defines the interface the commands use to read and mutate
// the task collection. Commands never touch a persistence slot directly.
package service

import (
	"context"

	"todo/internal/task"
)

// Service defines the task collection operations.
// Unknown ids and blank text are no-ops; the booleans report whether the
// collection changed.
type Service interface {
	// Tasks returns the full collection, newest first.
	Tasks(ctx context.Context) []task.Task

	// View returns the tasks passing the filter mode whose text contains
	// query (case-insensitive). Order matches Tasks.
	View(ctx context.Context, mode task.FilterMode, query string) []task.Task

	// Add creates an open task from trimmed text and puts it first.
	Add(ctx context.Context, text string) (task.Task, bool)

	// Edit replaces the text of a task.
	Edit(ctx context.Context, id int64, text string) bool

	// Toggle flips the completed flag of a task.
	Toggle(ctx context.Context, id int64) bool

	// Delete removes a task.
	Delete(ctx context.Context, id int64) bool

	// Close releases the persistence backend.
	Close() error
}
