package investigation

import (
	"fmt"
	"strings"
)

// Token is one discrete player input.
type Token int

const (
	TokenUnknown Token = iota
	TokenLeft
	TokenRight
	TokenEnd
)

func (t Token) String() string {
	switch t {
	case TokenLeft:
		return "left"
	case TokenRight:
		return "right"
	case TokenEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ParseToken reads a direction or end command, ignoring case and
// surrounding space.
func ParseToken(input string) (Token, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "left", "l":
		return TokenLeft, nil
	case "right", "r":
		return TokenRight, nil
	case "end", "e", "quit", "q":
		return TokenEnd, nil
	default:
		return TokenUnknown, fmt.Errorf("%w: unrecognized command %q", ErrInvalidInput, input)
	}
}
