package scaffold

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectoryExists is returned when the project directory is already
	// present. Nothing is written in that case.
	ErrDirectoryExists = errors.New("directory already exists")

	// ErrIncoherentProject is returned when a written project does not
	// match the configuration it was generated from.
	ErrIncoherentProject = errors.New("generated project is inconsistent")
)

// FilesystemError wraps an I/O failure while creating the project tree.
type FilesystemError struct {
	Op   string // "resolve", "stat", "create" or "write"
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
