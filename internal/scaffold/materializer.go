package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/simonhull/hatch/internal/generator"
	"github.com/simonhull/hatch/internal/logger"
)

// GeneratedProject describes a materialized project tree.
type GeneratedProject struct {
	Dir        string   // absolute project directory
	Files      []string // slash separated paths relative to Dir, in write order
	EntryPoint string   // relative path of the entry-point source
	DryRun     bool     // true when nothing was written
}

// Options configures a Materialize call.
type Options struct {
	DryRun bool      // plan and report without writing
	Verify bool      // read the tree back and check it against the config
	Writer io.Writer // receives one line per operation (defaults to io.Discard)
}

// Materializer writes projects to disk.
type Materializer struct {
	sdk    SDKShape
	source *SourceGenerator
	log    logger.Logger
}

// NewMaterializer creates a materializer for the given SDK shape.
// A nil logger uses logger.Default().
func NewMaterializer(sdk SDKShape, log logger.Logger) *Materializer {
	if log == nil {
		log = logger.Default()
	}
	return &Materializer{
		sdk:    sdk,
		source: NewSourceGenerator(sdk),
		log:    log,
	}
}

// ProjectDir resolves the project directory for cfg under root. The name is
// joined so that it can never escape root.
func ProjectDir(root, name string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &FilesystemError{Op: "resolve", Path: root, Err: err}
	}
	dir, err := securejoin.SecureJoin(absRoot, name)
	if err != nil {
		return "", &FilesystemError{Op: "resolve", Path: filepath.Join(absRoot, name), Err: err}
	}
	return dir, nil
}

// Plan renders every artifact and returns the operations that create the
// project tree under projectDir, in execution order.
func (m *Materializer) Plan(cfg ProjectConfig, projectDir string) ([]generator.Operation, error) {
	artifacts, err := m.source.Render(cfg)
	if err != nil {
		return nil, err
	}

	ops := []generator.Operation{
		&generator.MkdirOp{Path: projectDir, Mode: 0755},
		&generator.MkdirOp{Path: filepath.Join(projectDir, SourceDir), Mode: 0755},
	}
	for _, a := range artifacts {
		ops = append(ops, &generator.WriteFileOp{
			Path:    filepath.Join(projectDir, filepath.FromSlash(a.Path)),
			Content: a.Content,
			Mode:    0644,
		})
	}
	return ops, nil
}

// Materialize creates root/cfg.Name and writes the project into it.
//
// It fails with ErrDirectoryExists if the directory is already present and
// writes nothing in that case. Any I/O failure afterwards is returned as a
// *FilesystemError; files written before it are not removed.
func (m *Materializer) Materialize(ctx context.Context, cfg ProjectConfig, root string, opts Options) (*GeneratedProject, error) {
	// The literal entry is checked before the secure join resolves
	// symlinks, so a link at root/name counts as existing even when dangling.
	if err := ensureAbsent(filepath.Join(root, cfg.Name)); err != nil {
		return nil, err
	}
	dir, err := ProjectDir(root, cfg.Name)
	if err != nil {
		return nil, err
	}
	if err := ensureAbsent(dir); err != nil {
		return nil, err
	}
	log := m.log.WithFields(logger.F("project", cfg.Name))

	ops, err := m.Plan(cfg, dir)
	if err != nil {
		return nil, err
	}
	log.Debug("planned project",
		logger.F("dir", dir),
		logger.F("operations", len(ops)),
		logger.F("provider", cfg.Provider),
		logger.F("typescript", cfg.TypeScript))

	w := opts.Writer
	if w == nil {
		w = io.Discard
	}
	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{DryRun: opts.DryRun, Writer: w}); err != nil {
		return nil, toFilesystemError(err)
	}

	project := &GeneratedProject{
		Dir:        dir,
		EntryPoint: EntryPointFile(cfg),
		DryRun:     opts.DryRun,
	}
	for _, op := range ops {
		if wf, ok := op.(*generator.WriteFileOp); ok {
			rel, err := filepath.Rel(dir, wf.Path)
			if err != nil {
				rel = wf.Path
			}
			project.Files = append(project.Files, filepath.ToSlash(rel))
			log.Debug("file",
				logger.F("path", filepath.ToSlash(rel)),
				logger.F("bytes", len(wf.Content)),
				logger.F("dry_run", opts.DryRun))
		}
	}

	if opts.Verify && !opts.DryRun {
		if err := Verify(dir, cfg, m.sdk); err != nil {
			return project, err
		}
		log.Debug("verified project", logger.F("dir", dir))
	}

	return project, nil
}

// ensureAbsent fails with ErrDirectoryExists if any entry exists at path.
func ensureAbsent(path string) error {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrDirectoryExists, path)
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return &FilesystemError{Op: "stat", Path: path, Err: err}
	}
}

func toFilesystemError(err error) error {
	var opErr *generator.OperationError
	if !errors.As(err, &opErr) {
		return &FilesystemError{Op: "write", Err: err}
	}

	fsErr := &FilesystemError{Op: "write", Err: opErr.Err}
	if t, ok := opErr.Op.(generator.Target); ok {
		fsErr.Path = t.TargetPath()
	}
	if _, ok := opErr.Op.(*generator.MkdirOp); ok {
		fsErr.Op = "create"
	}
	return fsErr
}
