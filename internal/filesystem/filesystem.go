// Package filesystem runs finds confined to a base directory.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/taigrr/gofind/internal/finder"
	"github.com/taigrr/gofind/internal/types"
	"github.com/taigrr/gofind/internal/walker"
)

const (
	defaultLimit = 200
	maxLimit     = 1000
)

// Service runs finds rooted inside a base directory.
type Service struct {
	basePath string
	realBase string
	logger   *slog.Logger
}

// New creates a new Service.
func New(basePath string, logger *slog.Logger) *Service {
	absPath, _ := filepath.Abs(basePath)
	realBase, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		realBase = absPath
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		basePath: absPath,
		realBase: realBase,
		logger:   logger,
	}
}

// ResolvePath resolves a relative path within the base directory and validates
// it. The path is checked twice: as written, and with every symlink along it
// resolved, so a link pointing out of the base is rejected. The returned path
// is the one as written.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	// Trim whitespace
	relativePath = strings.TrimSpace(relativePath)

	// Leading slashes are relative to the base, not the filesystem root
	normalizedPath := strings.TrimLeft(relativePath, "/")

	fullPath := filepath.Join(s.basePath, normalizedPath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	// Security check: ensure path is within the base
	if !within(s.basePath, absPath) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	realPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		// A missing path is reported by the walk as root not found
		if errors.Is(err, fs.ErrNotExist) {
			return absPath, nil
		}
		return "", err
	}
	if !within(s.realBase, realPath) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// within reports whether path is base or lies beneath it.
func within(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Find walks params.Root and returns the matching paths relative to the base
// directory, windowed by Offset and Limit.
func (s *Service) Find(ctx context.Context, params types.FindParams) (types.FindResult, error) {
	root := params.Root
	if root == "." {
		root = ""
	}

	fullPath, err := s.ResolvePath(root)
	if err != nil {
		return types.FindResult{}, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	offset := max(params.Offset, 0)

	var paths []string
	total := 0
	stats, err := finder.Find(ctx, fullPath, params.Filter, func(e types.Entry) error {
		total++
		if total > offset && len(paths) < limit {
			paths = append(paths, s.relative(e.Path))
		}
		return nil
	}, walker.WithLogger(s.logger))
	if err != nil {
		if errors.Is(err, walker.ErrRootNotFound) {
			return types.FindResult{}, fmt.Errorf("root not found: %s", params.Root)
		}
		return types.FindResult{}, err
	}

	if paths == nil {
		paths = []string{}
	}

	return types.FindResult{
		Paths:   paths,
		Total:   total,
		HasMore: offset+len(paths) < total,
		Skipped: stats.Skipped,
	}, nil
}

// relative reports p relative to the base, with forward slashes.
func (s *Service) relative(p string) string {
	rel, err := filepath.Rel(s.basePath, p)
	if err != nil {
		return p
	}
	return filepath.ToSlash(rel)
}

// GetBasePath returns the base path.
func (s *Service) GetBasePath() string {
	return s.basePath
}
