// Package kdtree implements a 2-dimensional tree over colored seed points
// for nearest-neighbor lookups.
package kdtree

import "sort"

// Point is a seed position with the color captured at it.
type Point struct {
	X, Y    int
	R, G, B uint8
}

// Node is a tree node. Dim is the split dimension: 0 for x, 1 for y.
// A node exclusively owns its children.
type Node struct {
	Point Point
	Dim   int
	Left  *Node
	Right *Node
}

// coord returns the node's coordinate along its split dimension.
func (n *Node) coord() int {
	if n.Dim == 0 {
		return n.Point.X
	}
	return n.Point.Y
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is a built 2d-tree.
type Tree struct {
	Root *Node
	size int
}

// Build constructs a balanced tree from points. The input slice is not modified.
func Build(points []Point) *Tree {
	list := make([]Point, len(points))
	copy(list, points)
	return &Tree{Root: build(list, 0), size: len(points)}
}

// Len returns the number of points in the tree.
func (t *Tree) Len() int {
	return t.size
}

func build(points []Point, dim int) *Node {
	next := (dim + 1) % 2

	switch len(points) {
	case 0:
		return nil
	case 1:
		return &Node{Point: points[0], Dim: dim}
	case 2:
		sortByDim(points, dim)
		return &Node{
			Point: points[1],
			Dim:   dim,
			Left:  &Node{Point: points[0], Dim: next},
		}
	}

	sortByDim(points, dim)
	mid := (len(points) - 1) / 2

	// Sub-slices of the sorted list; sorting deeper levels reorders each half in place
	// and never touches the median or the other half.
	return &Node{
		Point: points[mid],
		Dim:   dim,
		Left:  build(points[:mid], next),
		Right: build(points[mid+1:], next),
	}
}

func sortByDim(points []Point, dim int) {
	sort.SliceStable(points, func(i, j int) bool {
		if dim == 0 {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})
}

// squaredDist is the squared euclidean distance. Only relative order matters,
// so no square root is taken.
func squaredDist(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// Nearest returns the point closest to (x, y). ok is false for an empty tree.
func (t *Tree) Nearest(x, y int) (p Point, ok bool) {
	if t == nil || t.Root == nil {
		return Point{}, false
	}
	best := t.Root.Point
	minDist := squaredDist(best.X, best.Y, x, y)
	nearest(t.Root, x, y, &best, &minDist)
	return best, true
}

func nearest(n *Node, x, y int, best *Point, minDist *int) {
	if n == nil {
		return
	}

	if d := squaredDist(n.Point.X, n.Point.Y, x, y); d < *minDist {
		*best = n.Point
		*minDist = d
	}

	if n.IsLeaf() {
		return
	}

	// Single child: always descend.
	if n.Left == nil || n.Right == nil {
		child := n.Left
		if child == nil {
			child = n.Right
		}
		nearest(child, x, y, best, minDist)
		return
	}

	q := x
	if n.Dim == 1 {
		q = y
	}

	first, second := n.Left, n.Right
	if q > n.coord() {
		first, second = n.Right, n.Left
	}

	nearest(first, x, y, best, minDist)

	// The far side can only hold a closer point if the splitting line is
	// nearer than the current best.
	diff := q - n.coord()
	if diff*diff < *minDist {
		nearest(second, x, y, best, minDist)
	}
}

// InOrder returns the tree's points in in-order traversal.
func (t *Tree) InOrder() []Point {
	var out []Point
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Point)
		walk(n.Right)
	}
	if t != nil {
		walk(t.Root)
	}
	return out
}

// Release tears the tree down in post-order, detaching every node, and
// returns the number of nodes released. The tree is empty afterwards.
func (t *Tree) Release() int {
	if t == nil {
		return 0
	}
	n := release(t.Root)
	t.Root = nil
	t.size = 0
	return n
}

func release(n *Node) int {
	if n == nil {
		return 0
	}
	count := release(n.Left) + release(n.Right) + 1
	n.Left = nil
	n.Right = nil
	return count
}
