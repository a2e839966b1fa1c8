package game

import (
	"fmt"
	"strings"
)

// History is the bounded trail of what happened during one investigation,
// oldest entry first.
type History struct {
	entries []string
	maxSize int
}

func NewHistory(maxSize int) *History {
	if maxSize < 1 {
		maxSize = 1
	}
	return &History{
		entries: make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (h *History) AddMove(direction, location string) {
	h.add(fmt.Sprintf("%s -> %s", direction, location))
}

func (h *History) AddDiscovery(location, clue string) {
	h.add(fmt.Sprintf("clue at %s: %s", location, clue))
}

func (h *History) AddRejected(input string, err error) {
	h.add(fmt.Sprintf("rejected %q: %v", input, err))
}

func (h *History) AddNote(note string) {
	h.add(note)
}

func (h *History) add(entry string) {
	h.entries = append(h.entries, entry)

	if len(h.entries) > h.maxSize {
		h.entries = h.entries[len(h.entries)-h.maxSize:]
	}
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) GetEntries() []string {
	result := make([]string, len(h.entries))
	copy(result, h.entries)
	return result
}

// String joins the trail into one line per entry, as stored in the case journal.
func (h *History) String() string {
	return strings.Join(h.entries, "\n")
}
