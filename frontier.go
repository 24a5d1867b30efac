package main

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"
)

const noNode = -1

// Node is the per-cell search record kept in a nodePool
type Node struct {
	Pos    Position
	G      int     // Steps from start
	H      int     // Squared distance to target
	F      float64 // 0.9*G + 0.1*H
	Parent int     // Index of the predecessor in the pool, noNode for the start
	Index  int     // Index in the heap, noNode when not queued
	seq    uint64
}

// nodePool owns every Node created during one search.
// byCell maps a grid cell to its node, so each position has at most one record.
type nodePool struct {
	nodes   []Node
	byCell  []int
	width   int
	nextSeq uint64
}

func newNodePool(grid *Grid) *nodePool {
	byCell := make([]int, grid.height*grid.width)
	for i := range byCell {
		byCell[i] = noNode
	}
	return &nodePool{byCell: byCell, width: grid.width}
}

func (p *nodePool) lookup(pos Position) int {
	return p.byCell[pos.Row*p.width+pos.Col]
}

func (p *nodePool) add(pos Position, g, h int, f float64, parent int) int {
	id := len(p.nodes)
	p.nodes = append(p.nodes, Node{Pos: pos, G: g, H: h, F: f, Parent: parent, Index: noNode})
	p.byCell[pos.Row*p.width+pos.Col] = id
	return id
}

func (p *nodePool) stamp(id int) {
	p.nodes[id].seq = p.nextSeq
	p.nextSeq++
}

// path follows parent links from id back to the start node
func (p *nodePool) path(id int) []Position {
	path := []Position{}
	for ; id != noNode; id = p.nodes[id].Parent {
		path = append(path, p.nodes[id].Pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PriorityQueue implements heap.Interface over node indices.
// Equal scores pop in insertion order.
type PriorityQueue struct {
	items []int
	pool  *nodePool
}

func (pq PriorityQueue) Len() int { return len(pq.items) }

func (pq PriorityQueue) Less(i, j int) bool {
	a, b := &pq.pool.nodes[pq.items[i]], &pq.pool.nodes[pq.items[j]]
	if a.F != b.F {
		return a.F < b.F
	}
	return a.seq < b.seq
}

func (pq PriorityQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.pool.nodes[pq.items[i]].Index = i
	pq.pool.nodes[pq.items[j]].Index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	id := x.(int)
	pq.pool.nodes[id].Index = len(pq.items)
	pq.items = append(pq.items, id)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := pq.items
	n := len(old)
	id := old[n-1]
	pq.items = old[0 : n-1]
	pq.pool.nodes[id].Index = noNode
	return id
}

// openSet is the search frontier: a heap plus the pool's position index
type openSet struct {
	pool  *nodePool
	queue PriorityQueue
}

func newOpenSet(pool *nodePool) *openSet {
	o := &openSet{pool: pool, queue: PriorityQueue{pool: pool}}
	heap.Init(&o.queue)
	return o
}

func (o *openSet) Len() int { return o.queue.Len() }

// Insert queues an existing pool node as the newest entry
func (o *openSet) Insert(id int) {
	o.pool.stamp(id)
	heap.Push(&o.queue, id)
}

// ExtractMin removes and returns the node with the lowest F
func (o *openSet) ExtractMin() int {
	return heap.Pop(&o.queue).(int)
}

// Get returns the queued node at pos
func (o *openSet) Get(pos Position) (int, bool) {
	id := o.pool.lookup(pos)
	if id == noNode || o.pool.nodes[id].Index == noNode {
		return noNode, false
	}
	return id, true
}

func (o *openSet) Contains(pos Position) bool {
	_, ok := o.Get(pos)
	return ok
}

// Replace overwrites a queued node's cost and parent. The node is ordered
// as if it had just been inserted.
func (o *openSet) Replace(id, g int, f float64, parent int) {
	node := &o.pool.nodes[id]
	node.G = g
	node.F = f
	node.Parent = parent
	o.pool.stamp(id)
	heap.Fix(&o.queue, node.Index)
}

// closedSet holds positions whose cost is final
type closedSet struct {
	set mapset.Set[Position]
}

func newClosedSet() closedSet {
	return closedSet{set: mapset.New[Position]()}
}

func (cs closedSet) Insert(pos Position)        { cs.set.Put(pos) }
func (cs closedSet) Contains(pos Position) bool { return cs.set.Has(pos) }
func (cs closedSet) Remove(pos Position)        { cs.set.Remove(pos) }
func (cs closedSet) Len() int                   { return cs.set.Size() }
