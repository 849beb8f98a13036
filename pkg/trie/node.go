package trie

// Node is one character position in the trie. Nodes are owned by their
// parent; callers outside this package only ever read them.
type Node struct {
	count      int
	terminal   bool
	children   []*Node
	childCount int
}

func newNode(size int) *Node {
	return &Node{children: make([]*Node, size)}
}

// Terminal reports whether a stored word ends at n.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Count is the number of times a word ending at n was inserted.
func (n *Node) Count() int {
	return n.count
}

// ChildCount is the number of present children.
func (n *Node) ChildCount() int {
	return n.childCount
}

// Child returns the child in slot i, or nil.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// release frees the subtree rooted at n, children before parent, and
// returns how many nodes it released. n must already be detached.
func release(n *Node) int {
	if n == nil {
		return 0
	}
	freed := 0
	for i := 0; i < len(n.children) && n.childCount > 0; i++ {
		if n.children[i] == nil {
			continue
		}
		freed += release(n.children[i])
		n.children[i] = nil
		n.childCount--
	}
	n.children = nil
	n.count = 0
	n.terminal = false
	return freed + 1
}
