package dom

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// NodeId indexes a node in the arena. The root is always 0.
type NodeId uint32

// nodeRef is NodeId+1, so that the zero value means "no node".
type nodeRef uint32

func ref(id NodeId) nodeRef { return nodeRef(id + 1) }

func (r nodeRef) get() (NodeId, bool) {
	if r == 0 {
		return 0, false
	}
	return NodeId(r - 1), true
}

// Node holds the structural links of one arena node.
type Node struct {
	parent          nodeRef
	previousSibling nodeRef
	nextSibling     nodeRef
	firstChild      nodeRef
	lastChild       nodeRef
}

// Parent returns the parent node, or false for the root.
func (n Node) Parent() (NodeId, bool) { return n.parent.get() }

// PreviousSibling returns the previous sibling, if any.
func (n Node) PreviousSibling() (NodeId, bool) { return n.previousSibling.get() }

// NextSibling returns the next sibling, if any.
func (n Node) NextSibling() (NodeId, bool) { return n.nextSibling.get() }

// FirstChild returns the first child, if any.
func (n Node) FirstChild() (NodeId, bool) { return n.firstChild.get() }

// LastChild returns the last child, if any.
func (n Node) LastChild() (NodeId, bool) { return n.lastChild.get() }

// NodeHierarchy is the structural half of the arena.
type NodeHierarchy struct {
	nodes []Node
}

// ErrInvalidHierarchy is returned by Validate when the tree invariant is broken.
var ErrInvalidHierarchy = errors.New("invalid node hierarchy")

// Len returns the number of nodes.
func (h *NodeHierarchy) Len() int { return len(h.nodes) }

// Node returns the links of id.
func (h *NodeHierarchy) Node(id NodeId) Node { return h.nodes[id] }

// Children iterates the direct children of id in document order.
func (h *NodeHierarchy) Children(id NodeId) iter.Seq[NodeId] {
	return func(yield func(NodeId) bool) {
		cur, ok := h.nodes[id].FirstChild()
		for ok {
			if !yield(cur) {
				return
			}
			cur, ok = h.nodes[cur].NextSibling()
		}
	}
}

// ChildIds returns the direct children of id in document order.
func (h *NodeHierarchy) ChildIds(id NodeId) []NodeId {
	return slices.Collect(h.Children(id))
}

// HasChildren reports whether id has at least one child.
func (h *NodeHierarchy) HasChildren(id NodeId) bool {
	_, ok := h.nodes[id].FirstChild()
	return ok
}

// ParentWithDepth is a node that has children, with its depth from the root.
type ParentWithDepth struct {
	Depth int
	Node  NodeId
}

// ParentsByDepth returns every node with children, sorted by depth (root
// first) and by document order within a depth.
func (h *NodeHierarchy) ParentsByDepth() []ParentWithDepth {
	if len(h.nodes) == 0 {
		return nil
	}
	depths := make([]int, len(h.nodes))
	var out []ParentWithDepth
	for i := range h.nodes {
		id := NodeId(i)
		if p, ok := h.nodes[i].Parent(); ok {
			depths[i] = depths[p] + 1
		}
		if h.HasChildren(id) {
			out = append(out, ParentWithDepth{Depth: depths[i], Node: id})
		}
	}
	slices.SortStableFunc(out, func(a, b ParentWithDepth) int { return a.Depth - b.Depth })
	return out
}

// Validate checks the tree invariant: exactly one root at index 0, parents
// precede children, first/last child are both set or both unset, and every
// sibling chain terminates at last child.
func (h *NodeHierarchy) Validate() error {
	for i, n := range h.nodes {
		p, hasParent := n.Parent()
		if i == 0 && hasParent {
			return fmt.Errorf("root has a parent: %w", ErrInvalidHierarchy)
		}
		if i > 0 && !hasParent {
			return fmt.Errorf("node %d has no parent: %w", i, ErrInvalidHierarchy)
		}
		if hasParent && int(p) >= i {
			return fmt.Errorf("node %d has later parent %d: %w", i, p, ErrInvalidHierarchy)
		}
		first, hasFirst := n.FirstChild()
		last, hasLast := n.LastChild()
		if hasFirst != hasLast {
			return fmt.Errorf("node %d has mismatched first/last child: %w", i, ErrInvalidHierarchy)
		}
		if !hasFirst {
			continue
		}
		cur, steps := first, 0
		for {
			if int(cur) >= len(h.nodes) || steps > len(h.nodes) {
				return fmt.Errorf("node %d has a broken sibling chain: %w", i, ErrInvalidHierarchy)
			}
			if cp, _ := h.nodes[cur].Parent(); cp != NodeId(i) {
				return fmt.Errorf("child %d of %d points at parent %d: %w", cur, i, cp, ErrInvalidHierarchy)
			}
			next, ok := h.nodes[cur].NextSibling()
			if !ok {
				break
			}
			cur = next
			steps++
		}
		if cur != last {
			return fmt.Errorf("node %d sibling chain ends at %d, not last child %d: %w", i, cur, last, ErrInvalidHierarchy)
		}
	}
	return nil
}
