package builder

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRandOptions verifies RNG options and last-wins ordering.
func TestRandOptions(t *testing.T) {
	t.Parallel()

	require.Nil(t, newBuilderConfig().rng, "default config must be deterministic")
	require.False(t, newBuilderConfig().shuffle)

	a := newBuilderConfig(WithSeed(5)).rng.Int63()
	b := newBuilderConfig(WithSeed(5)).rng.Int63()
	require.Equal(t, a, b)

	explicit := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithSeed(5), WithRand(explicit))
	require.Same(t, explicit, cfg.rng)

	require.Panics(t, func() { WithRand(nil) })
}

// TestShuffledLabels checks that relabeling is an isomorphism and needs an RNG.
func TestShuffledLabels(t *testing.T) {
	t.Parallel()

	plain, err := BuildGraph(nil, Complete(4), Path(3))
	require.NoError(t, err)
	shuffled, err := BuildGraph([]BuilderOption{WithSeed(9), WithShuffledLabels()}, Complete(4), Path(3))
	require.NoError(t, err)

	require.Equal(t, plain.Order(), shuffled.Order())
	require.Equal(t, plain.Size(), shuffled.Size())
	degrees := func(vs []int, deg func(int) int) []int {
		out := make([]int, len(vs))
		for i, v := range vs {
			out[i] = deg(v)
		}
		sort.Ints(out)
		return out
	}
	require.Equal(t, degrees(plain.Vertices(), plain.Degree), degrees(shuffled.Vertices(), shuffled.Degree))

	again, err := BuildGraph([]BuilderOption{WithSeed(9), WithShuffledLabels()}, Complete(4), Path(3))
	require.NoError(t, err)
	require.Equal(t, shuffled.Edges(), again.Edges())

	_, err = BuildGraph([]BuilderOption{WithShuffledLabels()}, Complete(3))
	require.ErrorIs(t, err, ErrNeedRandSource)
}

// TestValidators covers the shared parameter checks.
func TestValidators(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateMin(MethodPath, 2, MinPathNodes))
	require.ErrorIs(t, validateMin(MethodPath, 1, MinPathNodes), ErrTooFewVertices)
	require.ErrorIs(t, validateParts(MethodCompleteMultipartite, nil), ErrTooFewVertices)
	require.ErrorIs(t, validateParts(MethodCompleteMultipartite, []int{2, 0}), ErrTooFewVertices)
	require.ErrorIs(t, validateProbability(MethodRandom, 1.5), ErrInvalidProbability)
	require.NoError(t, validateProbability(MethodRandom, 1))
}
