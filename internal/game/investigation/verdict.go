package investigation

import (
	"iter"

	"detectivequest/internal/game/suspects"
)

// SustainThreshold is how many corroborating clues an accusation needs.
const SustainThreshold = 2

type Verdict struct {
	Accused   string
	Count     int
	Sustained bool
}

// SuspectLookup is the read side of the suspect index.
type SuspectLookup interface {
	Lookup(clue string) (string, bool)
}

var _ SuspectLookup = (*suspects.Index)(nil)

// Judge counts the clues whose suspect matches accused, ignoring ASCII
// case. Clues with no suspect never count.
func Judge(clues iter.Seq[string], index SuspectLookup, accused string) (sustained bool, count int) {
	for clue := range clues {
		suspect, ok := index.Lookup(clue)
		if ok && equalFoldASCII(suspect, accused) {
			count++
		}
	}
	return count >= SustainThreshold, count
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
