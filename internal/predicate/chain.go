// Package predicate implements the filter chain applied to every visited entry.
package predicate

import (
	"errors"
	"fmt"

	"github.com/taigrr/gofind/internal/types"
)

// ErrInvalidType is returned for a type constraint other than "d" or "f".
var ErrInvalidType = errors.New("invalid type")

// Chain is the conjunction of the configured predicates. The set of
// predicates is fixed: an optional type constraint and up to two name
// matchers. A Chain with nothing configured accepts every entry.
type Chain struct {
	typ   string
	name  *Matcher
	iname *Matcher
}

// New builds a Chain from cfg, rejecting invalid types and patterns.
func New(cfg types.FilterConfig) (*Chain, error) {
	c := &Chain{}

	switch cfg.Type {
	case "", types.TypeDirectory, types.TypeFile:
		c.typ = cfg.Type
	default:
		return nil, fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidType, cfg.Type, types.TypeDirectory, types.TypeFile)
	}

	if cfg.Name != "" {
		m, err := Compile(cfg.Name, true)
		if err != nil {
			return nil, fmt.Errorf("-name: %w", err)
		}
		c.name = m
	}

	if cfg.IName != "" {
		m, err := Compile(cfg.IName, false)
		if err != nil {
			return nil, fmt.Errorf("-iname: %w", err)
		}
		c.iname = m
	}

	return c, nil
}

// Match reports whether e passes every configured predicate.
func (c *Chain) Match(e types.Entry) bool {
	if !c.matchType(e.Kind) {
		return false
	}
	if c.name != nil && !c.name.Match(e.Name) {
		return false
	}
	if c.iname != nil && !c.iname.Match(e.Name) {
		return false
	}
	return true
}

// IsEmpty reports whether the chain accepts everything.
func (c *Chain) IsEmpty() bool {
	return c.typ == "" && c.name == nil && c.iname == nil
}

// matchType: "f" accepts anything that is not a directory.
func (c *Chain) matchType(k types.Kind) bool {
	switch c.typ {
	case types.TypeDirectory:
		return k.IsDir()
	case types.TypeFile:
		return !k.IsDir()
	default:
		return true
	}
}

// Filter returns the entries that pass the chain, preserving order.
func (c *Chain) Filter(entries []types.Entry) []types.Entry {
	var matched []types.Entry
	for _, e := range entries {
		if c.Match(e) {
			matched = append(matched, e)
		}
	}
	return matched
}
