// Package suspects maps clue text to the suspect it points at, using a
// fixed-capacity hash table with separate chaining.
package suspects

import (
	"errors"
	"fmt"
	"sort"

	"detectivequest/internal/game"
)

// DefaultCapacity is the bucket count used when none is configured.
const DefaultCapacity = 101

// NotFound is returned by Get for a clue with no suspect.
const NotFound = ""

var ErrInvalidCapacity = errors.New("index capacity must be positive")

type Entry struct {
	Clue    string
	Suspect string
	next    *Entry
}

func (e *Entry) Next() *Entry {
	return e.next
}

type Index struct {
	buckets []*Entry
	size    int
}

func New(capacity int) (*Index, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Index{buckets: make([]*Entry, capacity)}, nil
}

// Hash is djb2: seeded with 5381, each byte folded in as h*33 + b.
func Hash(key string) uint64 {
	h := uint64(5381)
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}
	return h
}

func (ix *Index) bucket(key string) int {
	return int(Hash(key) % uint64(len(ix.buckets)))
}

// Put associates clue with suspect. An existing clue has its suspect
// replaced in place; a new clue goes to the head of its bucket's chain.
func (ix *Index) Put(clue, suspect string) {
	clue = game.TruncateClue(clue)
	suspect = game.TruncateSuspect(suspect)

	b := ix.bucket(clue)
	for e := ix.buckets[b]; e != nil; e = e.next {
		if e.Clue == clue {
			e.Suspect = suspect
			return
		}
	}

	ix.buckets[b] = &Entry{Clue: clue, Suspect: suspect, next: ix.buckets[b]}
	ix.size++
}

// Get returns the suspect for clue, or NotFound.
func (ix *Index) Get(clue string) string {
	suspect, _ := ix.Lookup(clue)
	return suspect
}

func (ix *Index) Lookup(clue string) (string, bool) {
	clue = game.TruncateClue(clue)
	for e := ix.buckets[ix.bucket(clue)]; e != nil; e = e.next {
		if e.Clue == clue {
			return e.Suspect, true
		}
	}
	return NotFound, false
}

func (ix *Index) Len() int {
	return ix.size
}

func (ix *Index) Capacity() int {
	return len(ix.buckets)
}

// Chain returns the head of the bucket that clue hashes to.
func (ix *Index) Chain(clue string) *Entry {
	return ix.buckets[ix.bucket(game.TruncateClue(clue))]
}

// Suspects lists every distinct suspect in the index, sorted.
func (ix *Index) Suspects() []string {
	seen := make(map[string]struct{})
	for _, head := range ix.buckets {
		for e := head; e != nil; e = e.next {
			seen[e.Suspect] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Release unlinks every chain entry once and empties the buckets. The
// bucket count is kept so the index stays usable.
func (ix *Index) Release(onRelease func(*Entry)) int {
	n := 0
	for i, head := range ix.buckets {
		for e := head; e != nil; {
			next := e.next
			e.next = nil
			if onRelease != nil {
				onRelease(e)
			}
			n++
			e = next
		}
		ix.buckets[i] = nil
	}
	ix.size = 0
	return n
}
