// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, step weights and functional options for Dijkstra.

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/velvet/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source strand was supplied.
	ErrEmptySource = errors.New("dijkstra: source strand is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source node is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that the weight function returned a
	// negative cost for some step.
	ErrNegativeWeight = errors.New("dijkstra: negative step weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by PathTo for a strand the search never reached.
	ErrNoPath = errors.New("dijkstra: no path to strand")
)

// WeightFunc is the cost of stepping from one oriented node to the next.
type WeightFunc func(from, to core.OrientedNode) int64

// NodeLength charges the length of the node being entered.
func NodeLength(_, to core.OrientedNode) int64 { return int64(to.Node.Length) }

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting strand; its node must be in the graph.
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – strands farther than this are not explored. Default math.MaxInt64.
// InfEdgeThreshold – steps weighing at least this much are impassable. Default math.MaxInt64.
// Weight           – step cost. Default NodeLength.
type Options struct {
	Source           core.Strand
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
	Weight           WeightFunc
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting strand. It must be supplied.
func Source(s core.Strand) Option {
	return func(o *Options) {
		o.Source = s
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps the explored distance.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold makes every step weighing threshold or more impassable.
// Panics with ErrBadInfThreshold on a value <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithWeight replaces the step cost; nil keeps NodeLength.
func WithWeight(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// DefaultOptions returns Options for the given source with no cap, no
// impassable steps, no predecessor map, and node length weights.
func DefaultOptions(source core.Strand) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		Weight:           NodeLength,
	}
}
