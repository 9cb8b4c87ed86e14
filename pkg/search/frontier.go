package search

import "container/heap"

// nodeHeap is a max-heap over *Node by Score, mirroring the ordering
// teacher's movelist.go builds over board.Move priorities.
type nodeHeap []*Node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[j].Less(h[i]) }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*Node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// topK returns the k highest-Score nodes in nodes, highest first. If
// len(nodes) <= k, all of nodes are returned in descending Score order.
func topK(nodes []*Node, k int) []*Node {
	h := make(nodeHeap, len(nodes))
	copy(h, nodes)
	heap.Init(&h)

	if k <= 0 || k > len(nodes) {
		k = len(nodes)
	}
	out := make([]*Node, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, heap.Pop(&h).(*Node))
	}
	return out
}

// best returns the single highest-Score node, or nil if nodes is empty.
func best(nodes []*Node) *Node {
	if len(nodes) == 0 {
		return nil
	}
	top := nodes[0]
	for _, n := range nodes[1:] {
		if top.Less(n) {
			top = n
		}
	}
	return top
}
