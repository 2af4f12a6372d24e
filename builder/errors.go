// Package builder: sentinel errors.
//
// Only package-level sentinels are exposed; implementations attach
// context with %w wrapping and callers branch with errors.Is. The
// builder never panics at runtime.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter n is smaller than the
// minimum the requested constructor can build (Path needs 2, Cycle 3,
// Star 2, Complete 1).
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNilConstructor indicates that a nil Constructor was passed to
// Build (programmer error surfaced as an error, not a panic).
var ErrNilConstructor = errors.New("builder: nil constructor")

// ErrNeedNodeFunc indicates that Build was called without WithNodeFunc;
// generic node identities cannot be invented by the builder.
var ErrNeedNodeFunc = errors.New("builder: node factory is required")

// ErrNeedLabelFunc indicates that Build was called without
// WithLabelFunc; generic edge labels cannot be invented by the builder.
var ErrNeedLabelFunc = errors.New("builder: label factory is required")
