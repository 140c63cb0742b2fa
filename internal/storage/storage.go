// Package storage keeps uploaded file bytes, keyed by stored file name.
package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when no object exists under the name
	ErrNotFound = errors.New("storage: file not found")
	// ErrExists is returned by Save when the name is already taken
	ErrExists = errors.New("storage: file already exists")
	// ErrInvalidName is returned for names that are not a single path element
	ErrInvalidName = errors.New("storage: invalid file name")
)

// ObjectInfo describes a stored object
type ObjectInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// FileStorage stores upload bytes. Implementations must be safe for concurrent use
// and Save must never overwrite an existing object.
type FileStorage interface {
	Save(ctx context.Context, name string, r io.Reader) error
	Open(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]ObjectInfo, error)
}

// ValidateName accepts only bare file names
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return ErrInvalidName
	case strings.ContainsAny(name, "/\\\x00"):
		return ErrInvalidName
	case strings.HasPrefix(name, "."):
		return ErrInvalidName
	}
	return nil
}
