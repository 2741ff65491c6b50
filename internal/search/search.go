// Package search is a minimal best-first search driver over a
// lattice.Environment, used by the module's own tests and demo CLI to
// exercise the core end-to-end. It is not part of the core's public
// contract: the lattice only implements the successor/heuristic graph
// interface, and any search algorithm may consume it. The node/heap
// plumbing (container/heap, an index field for heap.Fix/Pop bookkeeping)
// is the standard Go priority-queue idiom applied to lattice state ids.
package search

import (
	"container/heap"

	"github.com/edaniels/golog"
)

// Core is the subset of lattice.Environment the driver needs. Declared
// here rather than imported from collab so the driver depends only on
// what it calls.
type Core interface {
	StartStateID() int
	GoalStateID() int
	GetSuccs(id int) ([]int, []int)
	GoalHeuristic(id int) int
}

// node is one entry in the open list: a lattice state id plus the
// accumulated cost g, the priority f = g + h, and the parent pointer
// used to reconstruct the path on success.
type node struct {
	id     int
	g      int
	f      int
	parent *node
	index  int
}

type openHeap []*node

func (h openHeap) Len() int           { return len(h) }
func (h openHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *openHeap) Push(x any) {
	n := x.(*node)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// Result is the outcome of a Run call.
type Result struct {
	Path       []int
	Cost       int
	Expansions int
	Found      bool
}

// Run performs an A* search from env's start state to its goal state,
// relying on GoalHeuristic being admissible, and expands at most
// maxExpansions states before giving up.
func Run(env Core, logger golog.Logger, maxExpansions int) Result {
	start := &node{id: env.StartStateID(), g: 0, f: env.GoalHeuristic(env.StartStateID())}

	open := &openHeap{}
	heap.Init(open)
	heap.Push(open, start)

	bestG := map[int]int{start.id: 0}
	expansions := 0

	for open.Len() > 0 {
		if expansions >= maxExpansions {
			break
		}
		current := heap.Pop(open).(*node)
		expansions++

		if current.id == env.GoalStateID() {
			if logger != nil {
				logger.Infow("search found goal", "expansions", expansions, "cost", current.g)
			}
			return Result{Path: reconstruct(current), Cost: current.g, Expansions: expansions, Found: true}
		}

		ids, costs := env.GetSuccs(current.id)
		for i, succID := range ids {
			g := current.g + costs[i]
			if prevBest, ok := bestG[succID]; ok && g >= prevBest {
				continue
			}
			bestG[succID] = g
			heap.Push(open, &node{
				id:     succID,
				g:      g,
				f:      g + env.GoalHeuristic(succID),
				parent: current,
			})
		}
	}

	if logger != nil {
		logger.Warnw("search exhausted without reaching goal", "expansions", expansions)
	}
	return Result{Expansions: expansions, Found: false}
}

func reconstruct(n *node) []int {
	var path []int
	for cur := n; cur != nil; cur = cur.parent {
		path = append([]int{cur.id}, path...)
	}
	return path
}
