package entity

import (
	"fmt"
	"math"
)

// NodeID is a stable handle to a node in a Tree arena.
type NodeID int

// NoNode is the zero handle: no parent, empty root, not found.
const NoNode NodeID = -1

// RatioTolerance is the allowed drift when checking that sibling ratios sum to 1.0.
const RatioTolerance = 1e-9

// node is one arena slot. A node holding a pane is a leaf; any other live node
// is a container.
type node struct {
	alive    bool
	parent   NodeID
	pane     *Pane
	axis     Axis
	children []NodeID
	ratio    float64
}

// Tree is the pane layout tree of a single workspace.
//
// Nodes live in an arena and refer to each other by NodeID, so parent
// back-references do not create pointer cycles. A Tree is not safe for
// concurrent use; it belongs to exactly one workspace.
//
// The read methods accept a nil *Tree and treat it as empty.
type Tree struct {
	nodes []node
	free  []NodeID
	root  NodeID
	index map[PaneID]NodeID
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{
		root:  NoNode,
		index: make(map[PaneID]NodeID),
	}
}

func (t *Tree) alloc(n node) NodeID {
	n.alive = true
	if len(t.free) > 0 {
		id := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) valid(id NodeID) bool {
	return t != nil && id >= 0 && int(id) < len(t.nodes) && t.nodes[id].alive
}

// Root returns the root handle, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	if t == nil {
		return NoNode
	}
	return t.root
}

// Empty reports whether the tree holds no panes.
func (t *Tree) Empty() bool {
	return t.Root() == NoNode
}

// PaneCount returns the number of live panes.
func (t *Tree) PaneCount() int {
	if t == nil {
		return 0
	}
	return len(t.index)
}

// FindPane returns the leaf node holding the given pane.
func (t *Tree) FindPane(id PaneID) (NodeID, bool) {
	if t == nil {
		return NoNode, false
	}
	n, ok := t.index[id]
	return n, ok
}

// IsPane reports whether id is a live leaf.
func (t *Tree) IsPane(id NodeID) bool {
	return t.valid(id) && t.nodes[id].pane != nil
}

// IsContainer reports whether id is a live container.
func (t *Tree) IsContainer(id NodeID) bool {
	return t.valid(id) && t.nodes[id].pane == nil
}

// Pane returns the pane held by a leaf, or nil.
func (t *Tree) Pane(id NodeID) *Pane {
	if !t.valid(id) {
		return nil
	}
	return t.nodes[id].pane
}

// Axis returns the axis of a container.
func (t *Tree) Axis(id NodeID) Axis {
	return t.nodes[id].axis
}

// Parent returns the parent handle, NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.valid(id) {
		return NoNode
	}
	return t.nodes[id].parent
}

// Children returns a copy of a container's children in order.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.valid(id) {
		return nil
	}
	out := make([]NodeID, len(t.nodes[id].children))
	copy(out, t.nodes[id].children)
	return out
}

// ChildCount returns the number of children of a container.
func (t *Tree) ChildCount(id NodeID) int {
	if !t.valid(id) {
		return 0
	}
	return len(t.nodes[id].children)
}

// ChildAt returns the i-th child of a container.
func (t *Tree) ChildAt(id NodeID, i int) NodeID {
	return t.nodes[id].children[i]
}

// IndexOf returns the position of child inside parent, or -1.
func (t *Tree) IndexOf(parent, child NodeID) int {
	if !t.valid(parent) {
		return -1
	}
	for i, c := range t.nodes[parent].children {
		if c == child {
			return i
		}
	}
	return -1
}

// Ratio returns the node's share of its parent container.
func (t *Tree) Ratio(id NodeID) float64 {
	return t.nodes[id].ratio
}

// SetRatio sets the node's share of its parent container.
func (t *Tree) SetRatio(id NodeID, ratio float64) {
	t.nodes[id].ratio = ratio
}

// NewPaneNode allocates a detached leaf for p.
func (t *Tree) NewPaneNode(p *Pane) NodeID {
	id := t.alloc(node{parent: NoNode, pane: p, ratio: 1})
	t.index[p.ID] = id
	return id
}

// NewContainer allocates a detached, childless container.
func (t *Tree) NewContainer(axis Axis) NodeID {
	return t.alloc(node{parent: NoNode, axis: axis, ratio: 1})
}

// SetRoot makes id the root of the tree. NoNode empties the tree.
func (t *Tree) SetRoot(id NodeID) {
	t.root = id
	if id != NoNode {
		t.nodes[id].parent = NoNode
		t.nodes[id].ratio = 1
	}
}

// InsertChild places child at position i of parent.
func (t *Tree) InsertChild(parent NodeID, i int, child NodeID) {
	p := &t.nodes[parent]
	p.children = append(p.children, NoNode)
	copy(p.children[i+1:], p.children[i:])
	p.children[i] = child
	t.nodes[child].parent = parent
}

// RemoveChild detaches child from parent and returns its former position.
func (t *Tree) RemoveChild(parent, child NodeID) int {
	i := t.IndexOf(parent, child)
	if i < 0 {
		return -1
	}
	p := &t.nodes[parent]
	p.children = append(p.children[:i], p.children[i+1:]...)
	t.nodes[child].parent = NoNode
	return i
}

// Replace puts replacement in old's slot (parent position or root) and gives
// it old's ratio. old is left detached.
func (t *Tree) Replace(old, replacement NodeID) {
	parent := t.nodes[old].parent
	ratio := t.nodes[old].ratio
	if parent == NoNode {
		t.SetRoot(replacement)
	} else {
		i := t.IndexOf(parent, old)
		t.nodes[parent].children[i] = replacement
		t.nodes[replacement].parent = parent
		t.nodes[replacement].ratio = ratio
	}
	t.nodes[old].parent = NoNode
}

// Free releases a detached node. Freeing a leaf also drops its pane from the index.
func (t *Tree) Free(id NodeID) {
	if !t.valid(id) {
		return
	}
	if p := t.nodes[id].pane; p != nil {
		delete(t.index, p.ID)
	}
	t.nodes[id] = node{parent: NoNode}
	t.free = append(t.free, id)
}

// Panes returns every pane under from in depth-first, child order.
// A container with fewer than two children yields ErrInvalidTreeState.
func (t *Tree) Panes(from NodeID) ([]PaneID, error) {
	var out []PaneID
	if t == nil || from == NoNode {
		return out, nil
	}
	err := t.walk(from, func(id NodeID) {
		if p := t.nodes[id].pane; p != nil {
			out = append(out, p.ID)
		}
	})
	return out, err
}

// LinearOrder returns every pane of the tree in depth-first, child order.
func (t *Tree) LinearOrder() ([]PaneID, error) {
	return t.Panes(t.Root())
}

func (t *Tree) walk(id NodeID, fn func(NodeID)) error {
	if !t.valid(id) {
		return fmt.Errorf("%w: dangling node %d", ErrInvalidTreeState, id)
	}
	fn(id)
	n := t.nodes[id]
	if n.pane != nil {
		return nil
	}
	if len(n.children) < 2 {
		return fmt.Errorf("%w: container %d has %d children", ErrInvalidTreeState, id, len(n.children))
	}
	for _, c := range n.children {
		if err := t.walk(c, fn); err != nil {
			return err
		}
	}
	return nil
}

// FirstPane descends through first children until it reaches a leaf.
func (t *Tree) FirstPane(id NodeID) NodeID {
	for t.IsContainer(id) && len(t.nodes[id].children) > 0 {
		id = t.nodes[id].children[0]
	}
	return id
}

// LastPane descends through last children until it reaches a leaf.
func (t *Tree) LastPane(id NodeID) NodeID {
	for t.IsContainer(id) && len(t.nodes[id].children) > 0 {
		c := t.nodes[id].children
		id = c[len(c)-1]
	}
	return id
}

// Validate checks every structural invariant: parent links, container arity,
// sibling ratio sums and the pane index.
func (t *Tree) Validate() error {
	if t == nil {
		return nil
	}
	if t.root == NoNode {
		if len(t.index) != 0 {
			return fmt.Errorf("%w: empty tree indexes %d panes", ErrInvalidTreeState, len(t.index))
		}
		return nil
	}
	if t.nodes[t.root].parent != NoNode {
		return fmt.Errorf("%w: root has a parent", ErrInvalidTreeState)
	}
	seen := 0
	var check func(id NodeID) error
	check = func(id NodeID) error {
		if !t.valid(id) {
			return fmt.Errorf("%w: dangling node %d", ErrInvalidTreeState, id)
		}
		n := t.nodes[id]
		if n.pane != nil {
			seen++
			if idx, ok := t.index[n.pane.ID]; !ok || idx != id {
				return fmt.Errorf("%w: pane %s not indexed", ErrInvalidTreeState, n.pane.ID)
			}
			return nil
		}
		if len(n.children) < 2 {
			return fmt.Errorf("%w: container %d has %d children", ErrInvalidTreeState, id, len(n.children))
		}
		sum := 0.0
		for _, c := range n.children {
			if !t.valid(c) || t.nodes[c].parent != id {
				return fmt.Errorf("%w: node %d has a stale parent link", ErrInvalidTreeState, c)
			}
			sum += t.nodes[c].ratio
			if err := check(c); err != nil {
				return err
			}
		}
		if math.Abs(sum-1) > RatioTolerance {
			return fmt.Errorf("%w: container %d ratios sum to %v", ErrInvalidTreeState, id, sum)
		}
		return nil
	}
	if err := check(t.root); err != nil {
		return err
	}
	if seen != len(t.index) {
		return fmt.Errorf("%w: %d reachable panes, %d indexed", ErrInvalidTreeState, seen, len(t.index))
	}
	return nil
}

// Normalize rescales a container's children so their ratios sum to exactly 1.0.
// The last child absorbs the rounding remainder.
func (t *Tree) Normalize(container NodeID) {
	children := t.nodes[container].children
	if len(children) == 0 {
		return
	}
	sum := 0.0
	for _, c := range children {
		sum += t.nodes[c].ratio
	}
	if sum <= 0 {
		for _, c := range children {
			t.nodes[c].ratio = 1 / float64(len(children))
		}
		sum = 1
	}
	acc := 0.0
	for i, c := range children {
		if i == len(children)-1 {
			t.nodes[c].ratio = 1 - acc
			break
		}
		t.nodes[c].ratio /= sum
		acc += t.nodes[c].ratio
	}
}
