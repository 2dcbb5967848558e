// Package types defines the data structures shared by the walker, the
// predicate chain and the command surfaces.
package types
