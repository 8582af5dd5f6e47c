// Package pet implements the stat/evolution engine: the single owner of
// the canonical save document. It applies reward deltas with clamping,
// derives lifecycle flags from stat thresholds, advances evolution stages
// and broadcasts snapshots to every open window.
package pet

import "github.com/pixelbeasts/petcade/internal/save"

// Graph is a directed evolution graph: each pet type optionally points to
// one successor. There is exactly one canonical copy (DefaultGraph);
// every consumer resolves display types through Resolve against it so no
// two windows can drift apart.
type Graph map[string]string

// DefaultGraph is the canonical evolution graph.
var DefaultGraph = Graph{
	"chick":  "duck",
	"duck":   "swan",
	"kitten": "cat",
	"cat":    "lion",
	"pup":    "dog",
	"dog":    "wolf",
}

// Resolve returns the pet type reached by following up to stage-1
// successor edges from base, stopping early at a node with no successor.
// Stage 1 always returns the base type unchanged. An unknown base type
// falls back to the starter type.
func Resolve(g Graph, base string, stage int) string {
	if !g.knows(base) {
		base = save.StarterPetType
	}
	current := base
	for i := 1; i < stage; i++ {
		next, ok := g[current]
		if !ok {
			break
		}
		current = next
	}
	return current
}

// HasSuccessor reports whether the type resolved from (base, stage) can
// evolve one more stage.
func HasSuccessor(g Graph, base string, stage int) bool {
	_, ok := g[Resolve(g, base, stage)]
	return ok
}

// knows reports whether typ appears in the graph as a node, either as a
// base or as some type's successor.
func (g Graph) knows(typ string) bool {
	if _, ok := g[typ]; ok {
		return true
	}
	for _, next := range g {
		if next == typ {
			return true
		}
	}
	return false
}
