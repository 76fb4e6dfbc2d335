package core

import "sort"

// BVHNode is either a Leaf (holding an index into the bounded-primitive
// array) or an Inner node (holding two child indices). Every node stores
// the bounding box of everything beneath it.
type BVHNode struct {
	Box   AABB
	Leaf  bool
	Prim  int // valid when Leaf
	Left  int // valid when !Leaf
	Right int // valid when !Leaf
}

// BVH is a flat array of nodes with the root at the final position. Leaf
// indices refer to positions in the bounded-primitive array that produced
// this tree and remain stable as long as that array is never reordered.
// Once built, a BVH is immutable.
type BVH struct {
	Nodes []BVHNode
}

// LeafBox pairs a bounded-primitive index with its bounding box, the input
// BuildBVH consumes.
type LeafBox struct {
	Index int
	Box   AABB
}

// BuildBVH constructs a BVH from the given (index, box) pairs. The
// resulting root is Nodes[len(Nodes)-1]; an empty input yields an empty
// tree (Nodes == nil).
func BuildBVH(leaves []LeafBox) *BVH {
	if len(leaves) == 0 {
		return &BVH{}
	}

	nodes := make([]BVHNode, len(leaves))
	for i, lb := range leaves {
		nodes[i] = BVHNode{Box: lb.Box, Leaf: true, Prim: lb.Index}
	}

	build(&nodes, 0, len(nodes))
	return &BVH{Nodes: nodes}
}

// build recursively builds the range nodes[lo:hi], appending any new inner
// nodes to the end of *nodes, and returns the index of the node covering
// that range.
//
// The split axis is the longest axis of the range's bounding box; nodes are
// sorted by that axis's min-corner coordinate (a stable sort, so ties keep
// the order the range already had and the result is deterministic) and
// split at the
// midpoint *count*, not the midpoint coordinate. This resolves the
// non-total "min.partial_cmp(&max)" comparator of the original
// implementation with the teacher's own longest-axis median-split strategy.
func build(nodes *[]BVHNode, lo, hi int) int {
	if hi-lo == 1 {
		return lo
	}

	slice := (*nodes)[lo:hi]
	box := slice[0].Box
	for i := 1; i < len(slice); i++ {
		box = box.Union(slice[i].Box)
	}
	axis := box.LongestAxis()

	sort.SliceStable(slice, func(i, j int) bool {
		minI, _ := slice[i].Box.Axis(axis)
		minJ, _ := slice[j].Box.Axis(axis)
		return minI < minJ
	})

	mid := lo + (hi-lo)/2
	left := build(nodes, lo, mid)
	right := build(nodes, mid, hi)

	node := BVHNode{
		Box:   (*nodes)[left].Box.Union((*nodes)[right].Box),
		Leaf:  false,
		Left:  left,
		Right: right,
	}
	*nodes = append(*nodes, node)
	return len(*nodes) - 1
}

// QueryLeaves performs a depth-first, pruned traversal of the tree using
// scratch as the DFS stack (cleared and reused, never allocated per call),
// appending the primitive index of every leaf reached to dst and returning
// it. prune(node) returning true skips that entire subtree. Visit order is
// unspecified; callers that need the nearest hit must sort by distance
// themselves.
func (bvh *BVH) QueryLeaves(prune func(AABB) bool, scratch []int, dst []int) ([]int, []int) {
	scratch = scratch[:0]
	if len(bvh.Nodes) == 0 {
		return dst, scratch
	}

	root := len(bvh.Nodes) - 1
	if !prune(bvh.Nodes[root].Box) {
		scratch = append(scratch, root)
	}

	for len(scratch) > 0 {
		i := scratch[len(scratch)-1]
		scratch = scratch[:len(scratch)-1]

		node := &bvh.Nodes[i]
		if node.Leaf {
			dst = append(dst, node.Prim)
			continue
		}

		if !prune(bvh.Nodes[node.Right].Box) {
			scratch = append(scratch, node.Right)
		}
		if !prune(bvh.Nodes[node.Left].Box) {
			scratch = append(scratch, node.Left)
		}
	}

	return dst, scratch
}
