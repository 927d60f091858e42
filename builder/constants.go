// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodEmpty is the canonical name for the Empty constructor.
	MethodEmpty = "Empty"
	// MethodCompleteMultipartite is the canonical name for the CompleteMultipartite constructor.
	MethodCompleteMultipartite = "CompleteMultipartite"
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodPlantedClique is the canonical name for the PlantedClique constructor.
	MethodPlantedClique = "PlantedClique"
)

//-----------------------------------------------------------------------------
// Topology Minimums
//-----------------------------------------------------------------------------

// MinCycleNodes is the minimum number of vertices for a simple cycle.
const MinCycleNodes = 3

// MinPathNodes is the minimum number of vertices for a path.
const MinPathNodes = 2

// MinStarNodes is the minimum number of vertices for a star (center + 1 leaf).
const MinStarNodes = 2

// MinWheelNodes is the minimum number of vertices for a wheel (hub + C3).
const MinWheelNodes = 4

// MinCompleteNodes is the minimum number of vertices for K_n.
const MinCompleteNodes = 1

// MinPartition is the minimum size of each part in a complete multipartite graph.
const MinPartition = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lowest admissible edge probability.
const MinProbability = 0.0

// MaxProbability is the highest admissible edge probability.
const MaxProbability = 1.0
