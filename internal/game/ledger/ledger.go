// Package ledger keeps the clues a player has collected in a binary search
// tree ordered by byte-wise string comparison. Equal clues are stored once.
package ledger

import (
	"iter"

	"detectivequest/internal/game"
)

type Node struct {
	Value string
	Left  *Node
	Right *Node
}

// Insert places clue in the tree rooted at root and returns the root to
// rebind. An empty root yields a new single node; a clue already present
// leaves the tree untouched. Empty clue text is ignored.
func Insert(root *Node, clue string) *Node {
	root, _ = insert(root, game.TruncateClue(clue))
	return root
}

func insert(root *Node, clue string) (*Node, bool) {
	if clue == "" {
		return root, false
	}
	if root == nil {
		return &Node{Value: clue}, true
	}

	var added bool
	switch {
	case clue < root.Value:
		root.Left, added = insert(root.Left, clue)
	case clue > root.Value:
		root.Right, added = insert(root.Right, clue)
	}
	return root, added
}

// InOrder yields the values under root in ascending order.
func InOrder(root *Node) iter.Seq[string] {
	return func(yield func(string) bool) {
		inorder(root, yield)
	}
}

func inorder(n *Node, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.Left, yield) && yield(n.Value) && inorder(n.Right, yield)
}

// Release frees the tree post-order and returns how many nodes it released.
func Release(root *Node, onRelease func(*Node)) int {
	if root == nil {
		return 0
	}
	n := Release(root.Left, onRelease)
	n += Release(root.Right, onRelease)
	root.Left = nil
	root.Right = nil
	if onRelease != nil {
		onRelease(root)
	}
	return n + 1
}

// Ledger owns a clue tree and tracks its size.
type Ledger struct {
	root *Node
	size int
}

func New() *Ledger {
	return &Ledger{}
}

// Add records clue and reports whether it was not already in the ledger.
func (l *Ledger) Add(clue string) bool {
	var added bool
	l.root, added = insert(l.root, game.TruncateClue(clue))
	if added {
		l.size++
	}
	return added
}

func (l *Ledger) Contains(clue string) bool {
	clue = game.TruncateClue(clue)
	n := l.root
	for n != nil {
		switch {
		case clue < n.Value:
			n = n.Left
		case clue > n.Value:
			n = n.Right
		default:
			return true
		}
	}
	return false
}

func (l *Ledger) Len() int {
	return l.size
}

func (l *Ledger) Root() *Node {
	return l.root
}

// All yields every clue in ascending order. The sequence can be ranged over
// any number of times.
func (l *Ledger) All() iter.Seq[string] {
	return InOrder(l.root)
}

func (l *Ledger) Slice() []string {
	out := make([]string, 0, l.size)
	for clue := range l.All() {
		out = append(out, clue)
	}
	return out
}

// Release empties the ledger, releasing every node once.
func (l *Ledger) Release(onRelease func(*Node)) int {
	n := Release(l.root, onRelease)
	l.root = nil
	l.size = 0
	return n
}
