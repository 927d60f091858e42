package core_test

import (
	"testing"

	"github.com/katalvlaran/cliquesat/core"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// QuerySuite exercises the read-only queries on a fixed "house with a roof" graph:
//
//	0-1, 1-2, 2-3, 3-0 (square) plus roof 4 joined to 0 and 1.
type QuerySuite struct {
	suite.Suite
	g *core.Graph
}

func (s *QuerySuite) SetupTest() {
	g, err := core.NewGraph(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 0}, {4, 1}})
	s.Require().NoError(err)
	s.g = g
}

func (s *QuerySuite) TestCounts() {
	s.Equal(5, s.g.Order())
	s.Equal(6, s.g.Size())
	s.Equal(3, s.g.MaxDegree())
	s.InDelta(0.6, s.g.Density(), 1e-12)
}

func (s *QuerySuite) TestAdjacency() {
	s.True(s.g.IsAdjacent(0, 4))
	s.True(s.g.IsAdjacent(4, 0))
	s.False(s.g.IsAdjacent(0, 2))
	s.False(s.g.IsAdjacent(0, 0))
	s.False(s.g.IsAdjacent(0, 17))
	s.False(s.g.IsAdjacent(-1, 0))
}

func (s *QuerySuite) TestNeighborsSorted() {
	s.Equal([]int{1, 3, 4}, s.g.Neighbors(0))
	s.Equal([]int{0, 2, 4}, s.g.Neighbors(1))
	s.Nil(s.g.Neighbors(5))
	s.Equal(0, s.g.Degree(-3))
}

func (s *QuerySuite) TestEdgesLexicographic() {
	s.Equal([][2]int{{0, 1}, {0, 3}, {0, 4}, {1, 2}, {1, 4}, {2, 3}}, s.g.Edges())
}

func (s *QuerySuite) TestRowMatchesNeighbors() {
	for v := 0; v < s.g.Order(); v++ {
		s.Equal(s.g.Neighbors(v), s.g.Row(v).AppendTo(nil))
		s.Equal(s.g.Degree(v), s.g.Row(v).Count())
	}
}

func (s *QuerySuite) TestDegreeWithin() {
	set := core.BitsetOf(5, []int{1, 2, 4})
	s.Equal(2, s.g.DegreeWithin(0, set))
	s.Equal(1, s.g.DegreeWithin(2, set))
}

func (s *QuerySuite) TestCliques() {
	s.True(core.IsClique(s.g, nil))
	s.True(core.IsClique(s.g, []int{2}))
	s.True(core.IsClique(s.g, []int{0, 1, 4}))
	s.ErrorIs(core.ValidateClique(s.g, []int{0, 1, 2}), core.ErrNotClique)
	s.ErrorIs(core.ValidateClique(s.g, []int{0, 0}), core.ErrDuplicateVertex)
	s.ErrorIs(core.ValidateClique(s.g, []int{0, 9}), core.ErrVertexOutOfRange)
}

func (s *QuerySuite) TestCommonNeighbors() {
	s.Equal([]int{4}, core.CommonNeighbors(s.g, []int{0, 1}).AppendTo(nil))
	s.Equal([]int{0, 1, 2, 3, 4}, core.CommonNeighbors(s.g, nil).AppendTo(nil))
	s.Empty(core.CommonNeighbors(s.g, []int{0, 1, 4}).AppendTo(nil))
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(QuerySuite))
}

// TestBitset covers the set algebra used by the solvers.
func TestBitset(t *testing.T) {
	t.Parallel()

	a := core.BitsetOf(130, []int{0, 63, 64, 129, 200})
	require.Equal(t, 4, a.Count())
	require.True(t, a.Has(129))
	require.False(t, a.Has(1))

	b := core.BitsetOf(130, []int{63, 129, 5})
	require.True(t, a.Intersects(b))
	require.Equal(t, 2, a.AndCount(b))

	c := a.Clone()
	c.And(b)
	require.Equal(t, []int{63, 129}, c.AppendTo(nil))
	require.Equal(t, 4, a.Count(), "Clone must not alias")

	c.CopyFrom(a)
	c.AndNot(b)
	require.Equal(t, []int{0, 64}, c.AppendTo(nil))

	c.Remove(0)
	c.Remove(64)
	require.True(t, c.Empty())

	a.Clear()
	require.True(t, a.Empty())
}
