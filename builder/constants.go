// Package builder: size minimums for the topology constructors.
package builder

const (
	// minRingVertices allows the degenerate 1-ring, which is a single
	// self-loop and still a perfectly valid cycle.
	minRingVertices = 1

	// minPathVertices keeps a path from collapsing into a lone vertex.
	minPathVertices = 2

	// minCompleteVertices admits K1, the smallest acyclic fixture.
	minCompleteVertices = 1

	// minSparseVertices mirrors minCompleteVertices for random draws.
	minSparseVertices = 1
)
