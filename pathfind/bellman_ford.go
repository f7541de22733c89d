package pathfind

// indexedEdge is an Edge with endpoints resolved to node-slice indices.
type indexedEdge struct {
	u, v int
	w    float64
}

// indexNodes assigns each node label a dense index and resolves the edge
// list against it. Edges touching labels outside the node set are dropped:
// the engine's contract is defined over the supplied node set only.
func indexNodes(nodes []string, edges []Edge) (map[string]int, []indexedEdge) {
	idx := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if _, dup := idx[n]; !dup {
			idx[n] = i
		}
	}

	resolved := make([]indexedEdge, 0, len(edges))
	for _, e := range edges {
		u, okU := idx[e.From]
		v, okV := idx[e.To]
		if !okU || !okV {
			continue
		}
		resolved = append(resolved, indexedEdge{u: u, v: v, w: e.Weight})
	}

	return idx, resolved
}

// ShortestPath computes the minimum-cost path from source to target with
// Bellman-Ford, tolerating negative edge weights as long as no negative
// cycle is reachable from the source.
//
// Returns the node sequence from source to target inclusive and the total
// path cost. On failure the path is nil, the cost is zero, and the error is
// one of the package sentinels (see doc.go); the early relaxation exit is an
// optimization only and never changes the result.
//
// Complexity: O(V·E) time, O(V) space.
func ShortestPath(nodes []string, edges []Edge, source, target string) ([]string, float64, error) {
	// 1) Resolve labels to dense indices; unknown endpoints fail fast.
	idx, es := indexNodes(nodes, edges)
	src, okSrc := idx[source]
	dst, okDst := idx[target]
	if !okSrc || !okDst {
		return nil, 0, ErrNodeNotFound
	}

	// 2) Initialize: source at distance 0, everything else unreachable.
	//    Reachability is an explicit flag, never an infinity sentinel.
	n := len(nodes)
	dist := make([]float64, n)
	reach := make([]bool, n)
	pred := make([]int, n)
	for i := range pred {
		pred[i] = -1
	}
	reach[src] = true

	// 3) Relax every edge up to |V|−1 times, exiting early once a full pass
	//    changes nothing.
	for pass := 0; pass < n-1; pass++ {
		changed := false
		for _, e := range es {
			if !reach[e.u] {
				continue
			}
			if d := dist[e.u] + e.w; !reach[e.v] || d < dist[e.v] {
				dist[e.v] = d
				reach[e.v] = true
				pred[e.v] = e.u
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// 4) Verification pass: any edge that still relaxes proves a negative
	//    cycle reachable from the source. No reconstruction is attempted.
	for _, e := range es {
		if !reach[e.u] {
			continue
		}
		if d := dist[e.u] + e.w; !reach[e.v] || d < dist[e.v] {
			return nil, 0, ErrNegativeCycle
		}
	}

	// 5) Unreachable target.
	if !reach[dst] {
		return nil, 0, ErrUnreachable
	}

	// 6) Reconstruct by walking predecessor links target→source. The visited
	//    guard keeps a corrupted predecessor map from looping forever.
	rev := make([]int, 0, n)
	visited := make([]bool, n)
	for cur := dst; cur != -1; cur = pred[cur] {
		if visited[cur] {
			return nil, 0, ErrReconstructCycle
		}
		visited[cur] = true
		rev = append(rev, cur)
	}
	if rev[len(rev)-1] != src {
		return nil, 0, ErrReconstructFailed
	}

	// 7) Reverse indices back into labels, source first.
	path := make([]string, len(rev))
	for i, node := range rev {
		path[len(rev)-1-i] = nodes[node]
	}

	return path, dist[dst], nil
}

// HasNegativeCycle reports whether the graph contains a negative cycle
// anywhere, not merely one reachable from a particular source.
//
// It is equivalent to running Bellman-Ford from a synthetic super source
// with a zero-weight edge to every node: seeding every real node at
// distance zero makes all of them simultaneously "reachable", so a cycle in
// any component is exposed. The super source exists only implicitly and can
// never collide with a real node label.
//
// Complexity: O(V·E) time, O(V) space.
func HasNegativeCycle(nodes []string, edges []Edge) bool {
	_, es := indexNodes(nodes, edges)

	// Seed: distance 0 everywhere, as if relaxed once from the super source.
	dist := make([]float64, len(nodes))

	// Relax |V|−1 times over the real edges.
	for pass := 0; pass < len(nodes)-1; pass++ {
		for _, e := range es {
			if d := dist[e.u] + e.w; d < dist[e.v] {
				dist[e.v] = d
			}
		}
	}

	// One more pass: any further relaxation proves a negative cycle.
	for _, e := range es {
		if dist[e.u]+e.w < dist[e.v] {
			return true
		}
	}

	return false
}
