// Package tgraph identifier translation between the external
// string-named world and index-ordered boolean vectors.
package tgraph

// IndexOf returns the node index for an external identifier.
func (g *TemporalGraph) IndexOf(id string) (Node, bool) {
	n, ok := g.indexOf[id]

	return n, ok
}

// IDOf returns the external identifier of n, if one was registered.
func (g *TemporalGraph) IDOf(n Node) (string, bool) {
	id, ok := g.idOf[n]

	return id, ok
}

// VectorFromIDs translates a set of external identifiers into an
// index-ordered boolean vector of length NodeCount. Identifiers absent
// from the graph are silently dropped: an unknown target id is an
// intentional no-op, not an error.
func (g *TemporalGraph) VectorFromIDs(ids map[string]struct{}) []bool {
	sel := make([]bool, g.nodeCount)
	for id := range ids {
		if n, ok := g.indexOf[id]; ok {
			sel[n] = true
		}
	}

	return sel
}

// IDsFromVector translates a boolean vector back into the identifiers
// of its selected nodes, in ascending index order. Selected nodes
// without a registered identifier are skipped.
func (g *TemporalGraph) IDsFromVector(sel []bool) []string {
	ids := make([]string, 0, len(sel))
	for n := 0; n < g.nodeCount && n < len(sel); n++ {
		if !sel[n] {
			continue
		}
		if id, ok := g.idOf[n]; ok {
			ids = append(ids, id)
		}
	}

	return ids
}
