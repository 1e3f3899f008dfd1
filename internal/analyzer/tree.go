package analyzer

import "fmt"

// TreeNode represents a node in an ordered, rooted, labeled tree. Child
// insertion order is semantically significant and preserved. The profiling
// code only reads labels and child order; it never mutates the tree.
type TreeNode struct {
	Label    string
	Children []*TreeNode
}

// NewTreeNode creates a leaf node with the given label.
func NewTreeNode(label string) *TreeNode {
	return &TreeNode{
		Label:    label,
		Children: []*TreeNode{},
	}
}

// AddKid appends the child to this node's ordered children and returns the
// node itself, enabling fluent tree construction:
//
//	root := NewTreeNode("a").
//		AddKid(NewTreeNode("b")).
//		AddKid(NewTreeNode("c"))
func (t *TreeNode) AddKid(child *TreeNode) *TreeNode {
	if child != nil {
		t.Children = append(t.Children, child)
	}
	return t
}

// IsLeaf returns true if this node has no children.
func (t *TreeNode) IsLeaf() bool {
	return len(t.Children) == 0
}

// Size returns the number of nodes in the subtree rooted at this node.
func (t *TreeNode) Size() int {
	size := 1
	for _, child := range t.Children {
		size += child.Size()
	}
	return size
}

// Height returns the height of the subtree rooted at this node. A leaf has
// height 0.
func (t *TreeNode) Height() int {
	if t.IsLeaf() {
		return 0
	}

	maxHeight := 0
	for _, child := range t.Children {
		if h := child.Height(); h > maxHeight {
			maxHeight = h
		}
	}
	return maxHeight + 1
}

// String returns a string representation of the node.
func (t *TreeNode) String() string {
	return fmt.Sprintf("Node{Label: %s, Children: %d}", t.Label, len(t.Children))
}
