package nearest

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("nearest: invalid option supplied")

// ErrSourceNotFound is returned when Search/Connect is asked to search
// from a vertex id the graph does not contain.
var ErrSourceNotFound = errors.New("nearest: source vertex not found")

// TieBreaker selects how Connect picks one vertex from a multi-vertex
// found set when ConnectAll is false. Stable, ByID, and ByCreation are
// synonyms: all three mean "pick the minimum id".
type TieBreaker string

const (
	Stable     TieBreaker = "stable"
	ByID       TieBreaker = "by_id"
	ByCreation TieBreaker = "by_creation"
	Random     TieBreaker = "random"
)

// Options configures a Search/Connect call.
type Options struct {
	// MaxDepth bounds the BFS; must be >= 1.
	MaxDepth int

	// TieBreaker selects among a multi-vertex found set.
	TieBreaker TieBreaker

	// ConnectAll, if true, connects the source to every vertex in the
	// found set instead of picking one.
	ConnectAll bool

	// RNG is consulted only when TieBreaker == Random. A nil RNG with
	// Random selected silently falls back to minimum-id selection — a
	// configuration conflict, not an error.
	RNG *rand.Rand

	err error
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions returns depth 1, stable tie-breaking, connect-all off,
// no RNG.
func DefaultOptions() Options {
	return Options{
		MaxDepth:   1,
		TieBreaker: Stable,
		ConnectAll: false,
	}
}

// WithMaxDepth sets the BFS depth bound. Depths below 1 are a violation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= 1 (got %d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithTieBreaker selects the tie-breaking strategy.
func WithTieBreaker(tb TieBreaker) Option {
	return func(o *Options) {
		switch tb {
		case Stable, ByID, ByCreation, Random:
			o.TieBreaker = tb
		default:
			o.err = fmt.Errorf("%w: unknown tie breaker %q", ErrOptionViolation, tb)
		}
	}
}

// WithConnectAll toggles connect-all mode.
func WithConnectAll(all bool) Option {
	return func(o *Options) { o.ConnectAll = all }
}

// WithRNG supplies the random source used when TieBreaker == Random.
func WithRNG(rng *rand.Rand) Option {
	return func(o *Options) { o.RNG = rng }
}

// resolve applies opts over DefaultOptions and downgrades an unseeded
// Random tie breaker to Stable rather than erroring.
func resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if o.TieBreaker == Random && o.RNG == nil {
		o.TieBreaker = Stable
	}

	return o, nil
}
