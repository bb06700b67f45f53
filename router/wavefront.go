package router

import "github.com/katalvlaran/roadblock/geom"

// wavefrontItem is one entry in a net's expansion priority queue.
// Grounded on the teacher's dijkstra.nodeItem/nodePQ (container/heap).
// A cell is pushed at most once per wavefront (RouteNet skips a neighbor
// that is already enqueued), so its cost is never decreased later; seq
// breaks cost ties deterministically since loc/Pred carry no natural
// order of their own (REDESIGN FLAGS: "store (cost, monotonic_seq, loc,
// pred) tuples so ties break deterministically").
type wavefrontItem struct {
	loc  geom.Point3
	cost int
	pred Pred
	seq  int
}

// wavefrontPQ is a min-heap of *wavefrontItem ordered by (cost, seq).
type wavefrontPQ []*wavefrontItem

func (pq wavefrontPQ) Len() int { return len(pq) }

func (pq wavefrontPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq wavefrontPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *wavefrontPQ) Push(x any) { *pq = append(*pq, x.(*wavefrontItem)) }

func (pq *wavefrontPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
