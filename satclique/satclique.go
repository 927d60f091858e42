package satclique

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/cliquesat/core"
)

// Outcome is the answer to one probe.
type Outcome int

const (
	// Unknown means the budget ran out before the solver decided.
	Unknown Outcome = iota
	// Sat means a clique of at least k vertices exists; a model is returned.
	Sat
	// Unsat means no clique of k vertices exists inside the candidate set.
	Unsat
)

// String returns the log name of o.
func (o Outcome) String() string {
	switch o {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

var (
	// ErrUnknownBackend is returned by Lookup for an unregistered name.
	ErrUnknownBackend = errors.New("satclique: unknown backend")

	// ErrInvalidModel reports a satisfying assignment that is not a clique
	// of the requested size. It indicates a defect in the encoding or the
	// solver and is fatal to the search.
	ErrInvalidModel = errors.New("satclique: solver returned an invalid model")

	// ErrClosed is returned when probing a closed query.
	ErrClosed = errors.New("satclique: query closed")
)

// Backend creates queries for candidate sets.
type Backend interface {
	// Name is the configuration name of the backend.
	Name() string
	// NewQuery encodes cand (global ids, distinct) for repeated probing.
	NewQuery(g *core.Graph, cand []int) (Query, error)
}

// Query answers "clique of size ≥ k in the candidate set?" for increasing k.
type Query interface {
	// Probe decides k within the budget carried by ctx. On Sat the returned
	// clique holds global ids, sorted ascending, and has at least k vertices.
	Probe(ctx context.Context, k int) (Outcome, []int, error)
	// Close releases solver state. Probing afterwards returns ErrClosed.
	Close()
}

// Backend names accepted by Lookup.
const (
	NameGini      = "gini"
	NameGophersat = "gophersat"
	NameNone      = "none"
)

// Lookup maps a configuration name to a Backend.
// "" selects Gini; "none" returns a nil Backend (SAT probing disabled).
func Lookup(name string) (Backend, error) {
	switch strings.ToLower(name) {
	case "", NameGini:
		return Gini{}, nil
	case NameGophersat:
		return Gophersat{}, nil
	case NameNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// trivial settles the probes that need no solver: k ≤ 0 is Sat with an empty
// clique and k above the candidate count is Unsat.
func trivial(k, n int) (Outcome, bool) {
	switch {
	case k <= 0:
		return Sat, true
	case k > n:
		return Unsat, true
	default:
		return Unknown, false
	}
}

// checkModel maps the selected local indices to global ids and verifies the
// result is a clique of at least k vertices.
func checkModel(g *core.Graph, enc Encoding, selected []int, k int) ([]int, error) {
	clique := make([]int, len(selected))
	for i, li := range selected {
		clique[i] = enc.Vertices[li]
	}
	sort.Ints(clique)
	if len(clique) < k {
		return nil, fmt.Errorf("%w: %d vertices selected, want at least %d", ErrInvalidModel, len(clique), k)
	}
	if err := core.ValidateClique(g, clique); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	return clique, nil
}
