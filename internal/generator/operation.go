package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it.
// force=true skips conflict checks (e.g., file already exists).
//
// Execute performs the actual operation. This should only be called after Validate succeeds.
//
// Description returns a human-readable description for output (e.g., "Create README.md (234 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// Target is implemented by operations that produce a single path.
type Target interface {
	TargetPath() string
}

// MkdirOp creates a directory and any missing parents.
type MkdirOp struct {
	Path string
	Mode fs.FileMode
}

func (op *MkdirOp) Validate(ctx context.Context, force bool) error {
	if op.Path == "" {
		return fmt.Errorf("directory path is empty")
	}

	info, err := os.Stat(op.Path)
	if err == nil && !info.IsDir() {
		return fmt.Errorf("path exists and is not a directory: %s", op.Path)
	}

	return nil
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	return os.MkdirAll(op.Path, op.mode())
}

func (op *MkdirOp) Description() string {
	return fmt.Sprintf("Create %s/", op.Path)
}

func (op *MkdirOp) TargetPath() string {
	return op.Path
}

func (op *MkdirOp) mode() fs.FileMode {
	if op.Mode == 0 {
		return 0755
	}
	return op.Mode
}

// WriteFileOp creates a new file with content.
//
// Validation behavior:
//   - Checks for file conflicts unless force=true
//   - Allows empty content (zero bytes) but rejects nil content
//
// Validation never touches the filesystem, so a batch can be validated
// before its directories exist.
//
// Execution behavior:
//   - Creates parent directories if needed
//   - Writes file with specified Mode
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	if !force {
		if _, err := os.Stat(op.Path); err == nil {
			return fmt.Errorf("file already exists: %s", op.Path)
		}
	}

	// Reject nil content (empty is OK)
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

func (op *WriteFileOp) TargetPath() string {
	return op.Path
}
