/*
Package trie implements a prefix tree over a small fixed alphabet.

Every node carries one child slot per alphabet symbol, so child lookup is a
single index. Words are stored by marking the node reached after their last
symbol as terminal and counting how often they were inserted.

Removal prunes in one step: the walk remembers the deepest node that is
still needed by another word (the anchor) and detaches the branch below it
once the removed word turns out to be a leaf.

A Trie is not safe for concurrent use. Callers serialise access.
*/
package trie

// Trie stores words over an Alphabet.
type Trie struct {
	root     *Node
	alphabet *Alphabet
	size     int
	nodes    int
}

// New creates an empty trie over DefaultAlphabet.
func New() *Trie {
	return NewWithAlphabet(DefaultAlphabet)
}

// NewWithAlphabet creates an empty trie over a.
func NewWithAlphabet(a *Alphabet) *Trie {
	if a == nil {
		a = DefaultAlphabet
	}
	return &Trie{
		root:     newNode(a.Size()),
		alphabet: a,
		nodes:    1,
	}
}

// Root returns the root node. It is never nil.
func (t *Trie) Root() *Node {
	return t.root
}

// Alphabet returns the alphabet the trie was built with.
func (t *Trie) Alphabet() *Alphabet {
	return t.alphabet
}

// Len is the number of live insertions.
func (t *Trie) Len() int {
	return t.size
}

// Nodes is the number of allocated nodes, root included.
func (t *Trie) Nodes() int {
	return t.nodes
}

// Insert stores word. Inserting the same word again bumps its count.
func (t *Trie) Insert(word string) error {
	if err := t.alphabet.check(word); err != nil {
		return err
	}

	current := t.root
	for i := 0; i < len(word); i++ {
		letter, _ := t.alphabet.Index(word[i])
		if current.children[letter] == nil {
			current.children[letter] = newNode(t.alphabet.Size())
			current.childCount++
			t.nodes++
		}
		current = current.children[letter]
	}
	current.count++
	current.terminal = true
	t.size++
	return nil
}

// Remove deletes word. Words that are not stored are ignored.
func (t *Trie) Remove(word string) error {
	if err := t.alphabet.check(word); err != nil {
		return err
	}
	if len(word) == 0 {
		if t.root.terminal {
			t.unmark(t.root)
		}
		return nil
	}

	current := t.root
	anchor := t.root
	anchorLetter, _ := t.alphabet.Index(word[0])
	for i := 0; i < len(word); i++ {
		letter, _ := t.alphabet.Index(word[i])
		if current.children[letter] == nil {
			return nil
		}
		if current.childCount > 1 || current.terminal {
			anchor = current
			anchorLetter = letter
		}
		current = current.children[letter]
	}
	if !current.terminal {
		return nil
	}
	t.unmark(current)

	if current.childCount == 0 {
		branch := anchor.children[anchorLetter]
		anchor.children[anchorLetter] = nil
		anchor.childCount--
		t.nodes -= release(branch)
	}
	return nil
}

func (t *Trie) unmark(n *Node) {
	if n.count > 0 {
		n.count--
	}
	n.terminal = false
	t.size--
}

// Lookup returns the node reached by walking word, or nil when the path
// does not exist. The node need not be terminal.
func (t *Trie) Lookup(word string) *Node {
	current := t.root
	for i := 0; i < len(word); i++ {
		letter, ok := t.alphabet.Index(word[i])
		if !ok {
			return nil
		}
		current = current.children[letter]
		if current == nil {
			return nil
		}
	}
	return current
}

// Contains reports whether word is stored.
func (t *Trie) Contains(word string) bool {
	n := t.Lookup(word)
	return n != nil && n.terminal
}

// Clear releases every node and leaves the trie empty. It returns the
// number of nodes released, the old root included.
func (t *Trie) Clear() int {
	freed := release(t.root)
	t.root = newNode(t.alphabet.Size())
	t.size = 0
	t.nodes = 1
	return freed
}
