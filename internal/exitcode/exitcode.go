// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, bad reference, blank text).
	UserError = 1

	// StorageError indicates the persistence backend could not be opened.
	StorageError = 2
)
