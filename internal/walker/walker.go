// Package walker performs the depth-first directory traversal.
package walker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/gofind/internal/types"
)

var (
	// ErrRootNotFound is returned when the root cannot be accessed at all.
	ErrRootNotFound = errors.New("root not found")
	// ErrSubtreeUnreadable is reported for directories whose contents cannot be listed.
	ErrSubtreeUnreadable = errors.New("cannot read directory")
)

// PathError records a failure for a specific path.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

type options struct {
	ctx     context.Context
	logger  *slog.Logger
	onError func(error)
}

// Option configures a walk.
type Option func(*options)

// WithContext stops the walk between directories once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the logger unreadable subtrees are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithErrorHandler registers fn to receive every recoverable error. Errors
// passed to fn wrap ErrSubtreeUnreadable, or the context's error when the walk
// was cancelled.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// Walk checks that root exists and returns the sequence of entries beneath it,
// root included. Nothing is read until the sequence is ranged over, and each
// range walks the tree again.
//
// Directories are yielded before their contents. Children are classified
// without following symlinks, so only real directories are descended into.
// A directory that cannot be listed is reported and skipped; the walk goes on
// with its siblings.
func Walk(root string, opts ...Option) (iter.Seq[types.Entry], error) {
	o := options{
		ctx:    context.Background(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	// The root follows symlinks so a linked directory given explicitly is walked
	info, err := os.Stat(root)
	if err != nil {
		return nil, &PathError{Path: root, Err: fmt.Errorf("%w: %w", ErrRootNotFound, cause(err))}
	}

	rootEntry := types.Entry{
		Path: root,
		Name: filepath.Base(root),
		Kind: kindOf(info.Mode()),
	}

	return func(yield func(types.Entry) bool) {
		if !yield(rootEntry) || !rootEntry.Kind.IsDir() {
			return
		}

		// One frame per open directory level; only the listing is held,
		// never the directory handle.
		var stack []*frame
		if f := o.list(root); f != nil {
			stack = append(stack, f)
		}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.next >= len(top.children) {
				stack = stack[:len(stack)-1]
				continue
			}

			child := top.children[top.next]
			top.next++

			e := types.Entry{
				Path: join(top.dir, child.Name()),
				Name: child.Name(),
				Kind: kindOf(child.Type()),
			}
			if !yield(e) {
				return
			}
			if !e.Kind.IsDir() {
				continue
			}

			if err := o.ctx.Err(); err != nil {
				o.report(err)
				return
			}
			if f := o.list(e.Path); f != nil {
				stack = append(stack, f)
			}
		}
	}, nil
}

type frame struct {
	dir      string
	children []fs.DirEntry
	next     int
}

// list reads dir, reporting a failure. ReadDir hands back whatever it read
// before failing, and that much is still walked.
func (o *options) list(dir string) *frame {
	children, err := os.ReadDir(dir)
	if err != nil {
		o.report(&PathError{Path: dir, Err: fmt.Errorf("%w: %w", ErrSubtreeUnreadable, cause(err))})
	}
	if len(children) == 0 {
		return nil
	}
	return &frame{dir: dir, children: children}
}

func (o *options) report(err error) {
	var pe *PathError
	if errors.As(err, &pe) {
		o.logger.Warn("skipping subtree", "path", pe.Path, "error", pe.Err)
	} else {
		o.logger.Warn("walk interrupted", "error", err)
	}
	if o.onError != nil {
		o.onError(err)
	}
}

// cause strips the *fs.PathError layer, whose path PathError already carries.
func cause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

func kindOf(mode fs.FileMode) types.Kind {
	switch {
	case mode.IsDir():
		return types.KindDirectory
	case mode.IsRegular():
		return types.KindFile
	default:
		return types.KindOther
	}
}

// join appends name to dir without cleaning, so the root is kept as given.
func join(dir, name string) string {
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + "/" + name
}
