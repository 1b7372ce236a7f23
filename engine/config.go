package engine

import (
	"errors"
	"fmt"

	"github.com/guca-engine/guca/nearest"
	"github.com/guca-engine/guca/rules"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("engine: invalid option supplied")

// Config holds every run-time tunable the engine needs. Build one with
// DefaultConfig and a chain of Option values, then pass it to New.
type Config struct {
	// StartState seeds an empty initial graph with one vertex in this
	// state. Ignored if the graph passed to New already has vertices.
	StartState string

	// Transcription selects the rule-table traversal discipline.
	Transcription rules.Transcription

	// CountCompare selects the numeric predicate mode.
	CountCompare rules.CountCompare

	// MaxVertices caps GiveBirth*/birth; 0 means unbounded.
	MaxVertices int

	// MaxSteps caps the number of steps; negative means unbounded.
	MaxSteps int

	// NearestMaxDepth bounds TryToConnectWithNearest's BFS; must be >= 1.
	NearestMaxDepth int

	// NearestTieBreaker selects among a multi-vertex nearest found set.
	NearestTieBreaker nearest.TieBreaker

	// NearestConnectAll, if true, connects to every vertex in the found
	// set instead of picking one.
	NearestConnectAll bool

	// RNGSeed seeds the RNG used only when NearestTieBreaker == Random.
	// A nil seed with Random selected downgrades to Stable.
	RNGSeed *int64

	err error
}

// Option configures a Config value.
type Option func(*Config)

// DefaultConfig returns a baseline configuration: start state "A",
// resettable transcription, range comparison, unbounded births,
// unbounded steps, nearest depth 2, stable tie-breaking, connect-all off.
func DefaultConfig() Config {
	return Config{
		StartState:        "A",
		Transcription:     rules.Resettable,
		CountCompare:      rules.CompareRange,
		MaxVertices:       0,
		MaxSteps:          -1,
		NearestMaxDepth:   2,
		NearestTieBreaker: nearest.Stable,
		NearestConnectAll: false,
	}
}

// WithStartState sets the seed label for an empty initial graph.
func WithStartState(state string) Option {
	return func(c *Config) { c.StartState = state }
}

// WithTranscription selects resettable or continuable rule-table scans.
func WithTranscription(t rules.Transcription) Option {
	return func(c *Config) {
		switch t {
		case rules.Resettable, rules.Continuable:
			c.Transcription = t
		default:
			c.err = fmt.Errorf("%w: unknown transcription %q", ErrOptionViolation, t)
		}
	}
}

// WithCountCompare selects range or exact numeric comparison.
func WithCountCompare(cmp rules.CountCompare) Option {
	return func(c *Config) {
		switch cmp {
		case rules.CompareRange, rules.CompareExact:
			c.CountCompare = cmp
		default:
			c.err = fmt.Errorf("%w: unknown count compare %q", ErrOptionViolation, cmp)
		}
	}
}

// WithMaxVertices sets the birth cap; 0 means unbounded. Negative values
// are a violation.
func WithMaxVertices(n int) Option {
	return func(c *Config) {
		if n < 0 {
			c.err = fmt.Errorf("%w: MaxVertices must be >= 0 (got %d)", ErrOptionViolation, n)
			return
		}
		c.MaxVertices = n
	}
}

// WithMaxSteps sets the step cap; negative means unbounded.
func WithMaxSteps(n int) Option {
	return func(c *Config) { c.MaxSteps = n }
}

// WithNearestMaxDepth sets TryToConnectWithNearest's BFS depth bound;
// must be >= 1.
func WithNearestMaxDepth(d int) Option {
	return func(c *Config) {
		if d < 1 {
			c.err = fmt.Errorf("%w: NearestMaxDepth must be >= 1 (got %d)", ErrOptionViolation, d)
			return
		}
		c.NearestMaxDepth = d
	}
}

// WithNearestTieBreaker selects the nearest-neighbor tie-breaking
// strategy.
func WithNearestTieBreaker(tb nearest.TieBreaker) Option {
	return func(c *Config) {
		switch tb {
		case nearest.Stable, nearest.ByID, nearest.ByCreation, nearest.Random:
			c.NearestTieBreaker = tb
		default:
			c.err = fmt.Errorf("%w: unknown tie breaker %q", ErrOptionViolation, tb)
		}
	}
}

// WithNearestConnectAll toggles connect-all mode for
// TryToConnectWithNearest.
func WithNearestConnectAll(all bool) Option {
	return func(c *Config) { c.NearestConnectAll = all }
}

// WithRNGSeed seeds the RNG used when NearestTieBreaker == Random.
func WithRNGSeed(seed int64) Option {
	return func(c *Config) { c.RNGSeed = &seed }
}
