// Package mansion holds the fixed binary tree of rooms the player walks.
// The tree is assembled once with NewLocation and Link and is read-only
// once an investigation starts.
package mansion

import (
	"errors"
	"fmt"

	"detectivequest/internal/game"
)

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

var (
	ErrNilLocation  = errors.New("nil location")
	ErrUnknownSide  = errors.New("unknown side")
	ErrSlotOccupied = errors.New("child slot already occupied")
	ErrSelfLink     = errors.New("location cannot be its own child")
)

// Location is one room. A parent exclusively owns its children.
type Location struct {
	Name string
	Clue string

	left  *Location
	right *Location
}

// NewLocation returns a childless room. Name and clue are truncated to
// their storage limits; an empty clue means the room holds nothing.
func NewLocation(name, clue string) *Location {
	return &Location{
		Name: game.TruncateName(name),
		Clue: game.TruncateClue(clue),
	}
}

// Link attaches child under parent on the given side. It is only meant for
// assembling the graph before navigation begins.
func Link(parent *Location, side Side, child *Location) error {
	if parent == nil || child == nil {
		return ErrNilLocation
	}
	if parent == child {
		return fmt.Errorf("%w: %s", ErrSelfLink, parent.Name)
	}

	var slot **Location
	switch side {
	case Left:
		slot = &parent.left
	case Right:
		slot = &parent.right
	default:
		return fmt.Errorf("%w: %v", ErrUnknownSide, side)
	}

	if *slot != nil {
		return fmt.Errorf("%w: %s already has a %s child (%s)", ErrSlotOccupied, parent.Name, side, (*slot).Name)
	}
	*slot = child
	return nil
}

func (l *Location) Children() (left, right *Location) {
	return l.left, l.right
}

// Child returns the child on side, or nil when absent.
func (l *Location) Child(side Side) *Location {
	switch side {
	case Left:
		return l.left
	case Right:
		return l.right
	default:
		return nil
	}
}

func (l *Location) IsLeaf() bool {
	return l.left == nil && l.right == nil
}

func (l *Location) HasClue() bool {
	return l.Clue != ""
}

// Walk visits root and its descendants in pre-order with their depth.
func Walk(root *Location, fn func(loc *Location, depth int)) {
	walk(root, 0, fn)
}

func walk(loc *Location, depth int, fn func(*Location, int)) {
	if loc == nil {
		return
	}
	fn(loc, depth)
	walk(loc.left, depth+1, fn)
	walk(loc.right, depth+1, fn)
}

// Count returns the number of rooms reachable from root.
func Count(root *Location) int {
	n := 0
	Walk(root, func(*Location, int) { n++ })
	return n
}

// Release tears the tree down post-order (left subtree, right subtree, then
// the node itself), clearing every link so no room stays reachable through
// another. onRelease, when set, sees each room exactly once after its
// children are gone. It returns the number of rooms released.
func Release(root *Location, onRelease func(*Location)) int {
	if root == nil {
		return 0
	}
	n := Release(root.left, onRelease)
	n += Release(root.right, onRelease)
	root.left = nil
	root.right = nil
	if onRelease != nil {
		onRelease(root)
	}
	return n + 1
}
