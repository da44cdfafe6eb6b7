// Package storage provides a small filesystem abstraction used for the
// persisted user profile and for CSV exports of selected records.
//
// Disk is the port; Local is the default driver. Tests inject their own
// Disk (or a Local rooted in t.TempDir()) instead of touching real paths.
package storage

import "io"

// Disk is a flat key/value file store.
type Disk interface {
	// Put writes content under path, creating parent directories as needed.
	Put(path string, content []byte) error
	// PutStream writes from r under path.
	PutStream(path string, r io.Reader) error
	// Get reads the file at path.
	Get(path string) ([]byte, error)
	// Exists reports whether path is present.
	Exists(path string) bool
	// Delete removes path; deleting a missing path is not an error.
	Delete(path string) error
}
