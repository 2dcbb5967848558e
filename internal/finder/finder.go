// Package finder runs a walk and applies the predicate chain to it.
package finder

import (
	"context"
	"errors"

	"github.com/taigrr/gofind/internal/predicate"
	"github.com/taigrr/gofind/internal/types"
	"github.com/taigrr/gofind/internal/walker"
)

// Stats summarises a completed walk.
type Stats struct {
	Visited int `json:"visited"`
	Matched int `json:"matched"`
	Skipped int `json:"skipped"` // subtrees that could not be listed
}

// Find walks root and calls emit, in visitation order, for every entry
// accepted by cfg. Invalid filters are reported before the filesystem is
// touched. An error returned by emit stops the walk and is returned as is.
// Find installs its own walker.WithErrorHandler to count skipped subtrees.
func Find(ctx context.Context, root string, cfg types.FilterConfig, emit func(types.Entry) error, opts ...walker.Option) (Stats, error) {
	var stats Stats

	chain, err := predicate.New(cfg)
	if err != nil {
		return stats, err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	opts = append(opts[:len(opts):len(opts)],
		walker.WithContext(ctx),
		walker.WithErrorHandler(func(err error) {
			if errors.Is(err, walker.ErrSubtreeUnreadable) {
				stats.Skipped++
			}
		}),
	)

	entries, err := walker.Walk(root, opts...)
	if err != nil {
		return stats, err
	}

	var emitErr error
	for e := range entries {
		stats.Visited++
		if !chain.Match(e) {
			continue
		}
		stats.Matched++
		if emitErr = emit(e); emitErr != nil {
			break
		}
	}
	if emitErr != nil {
		return stats, emitErr
	}

	return stats, ctx.Err()
}

// Collect is Find with the matching paths gathered into a slice.
func Collect(ctx context.Context, root string, cfg types.FilterConfig, opts ...walker.Option) ([]string, Stats, error) {
	var paths []string
	stats, err := Find(ctx, root, cfg, func(e types.Entry) error {
		paths = append(paths, e.Path)
		return nil
	}, opts...)
	return paths, stats, err
}
