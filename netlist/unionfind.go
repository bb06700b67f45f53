package netlist

// netUnionFind is a disjoint-set structure over net ids, used once during
// ingestion to fold NOR-input equivalences into classes. Unlike a
// standard union-by-rank DSU (which lets an arbitrary element become the
// root), this one always attaches the larger id under the smaller, so a
// class's root is always its minimum net id — exactly the canonical
// representative NOR folding requires.
//
// Adapted from the disjoint-set closures in prim_kruskal's Kruskal's-MST
// implementation (path compression, iterative find); the union rule is
// changed from union-by-rank to union-by-minimum-id to match the
// representative-selection rule this domain needs.
type netUnionFind struct {
	parent map[int]int
}

func newNetUnionFind() *netUnionFind {
	return &netUnionFind{parent: make(map[int]int)}
}

// find returns the canonical representative of net's class, creating a
// new singleton class for net if it has not been seen before. Path
// compression flattens the tree on the way up.
func (u *netUnionFind) find(net int) int {
	if _, ok := u.parent[net]; !ok {
		u.parent[net] = net
		return net
	}

	root := net
	for u.parent[root] != root {
		root = u.parent[root]
	}

	// Path compression: repoint every visited node directly at root.
	for u.parent[net] != root {
		next := u.parent[net]
		u.parent[net] = root
		net = next
	}

	return root
}

// union merges the classes of a and b. The resulting class's root is
// always the smaller of the two class roots, so repeated union keeps the
// minimum-id-as-representative invariant.
func (u *netUnionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if ra < rb {
		u.parent[rb] = ra
	} else {
		u.parent[ra] = rb
	}
}
