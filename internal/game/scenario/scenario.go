// Package scenario loads the static content of an investigation: the
// mansion layout, the clue in each room and which suspect each clue points
// at. It replaces hardcoded tables with a value handed to the controller.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"detectivequest/internal/game/mansion"
	"detectivequest/internal/game/suspects"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	ErrNoRooms       = errors.New("scenario has no rooms")
	ErrDuplicateRoom = errors.New("duplicate room id")
	ErrUnknownRoom   = errors.New("unknown room id")
	ErrSharedRoom    = errors.New("room reachable from more than one parent")
	ErrUnreachable   = errors.New("room not reachable from root")
	ErrEmptyField    = errors.New("required field is empty")
)

type Room struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Clue  string `yaml:"clue,omitempty"`
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`
}

type Association struct {
	Clue    string `yaml:"clue"`
	Suspect string `yaml:"suspect"`
}

type Scenario struct {
	Title        string        `yaml:"title"`
	Root         string        `yaml:"root"`
	Rooms        []Room        `yaml:"rooms"`
	Associations []Association `yaml:"associations"`
}

// Default returns the built-in seven-room mansion.
func Default() *Scenario {
	s, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded scenario is invalid: %v", err))
	}
	return s
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the rooms form a single tree hanging from Root:
// every reference resolves, no room has two parents and every room is
// reachable. A root defaults to the first room when unset.
func (s *Scenario) Validate() error {
	if len(s.Rooms) == 0 {
		return ErrNoRooms
	}
	if s.Root == "" {
		s.Root = s.Rooms[0].ID
	}

	byID := make(map[string]Room, len(s.Rooms))
	for _, r := range s.Rooms {
		if r.ID == "" {
			return fmt.Errorf("%w: room id", ErrEmptyField)
		}
		if r.Name == "" {
			return fmt.Errorf("%w: name of room %q", ErrEmptyField, r.ID)
		}
		if _, dup := byID[r.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateRoom, r.ID)
		}
		byID[r.ID] = r
	}
	if _, ok := byID[s.Root]; !ok {
		return fmt.Errorf("%w: root %q", ErrUnknownRoom, s.Root)
	}

	parent := make(map[string]string, len(s.Rooms))
	for _, r := range s.Rooms {
		for _, child := range []string{r.Left, r.Right} {
			if child == "" {
				continue
			}
			if _, ok := byID[child]; !ok {
				return fmt.Errorf("%w: %q referenced by %q", ErrUnknownRoom, child, r.ID)
			}
			if child == s.Root {
				return fmt.Errorf("%w: root %q is a child of %q", ErrSharedRoom, child, r.ID)
			}
			if p, seen := parent[child]; seen {
				return fmt.Errorf("%w: %q under %q and %q", ErrSharedRoom, child, p, r.ID)
			}
			parent[child] = r.ID
		}
	}

	// With one parent per room and a parentless root, anything not reached
	// from the root must sit on a detached cycle.
	reached := 0
	stack := []string{s.Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached++
		r := byID[id]
		for _, child := range []string{r.Left, r.Right} {
			if child != "" {
				stack = append(stack, child)
			}
		}
	}
	if reached != len(s.Rooms) {
		for _, r := range s.Rooms {
			if r.ID != s.Root {
				if _, ok := parent[r.ID]; !ok {
					return fmt.Errorf("%w: %q", ErrUnreachable, r.ID)
				}
			}
		}
		return fmt.Errorf("%w: %d of %d rooms", ErrUnreachable, len(s.Rooms)-reached, len(s.Rooms))
	}

	for i, a := range s.Associations {
		if a.Clue == "" || a.Suspect == "" {
			return fmt.Errorf("%w: association %d", ErrEmptyField, i)
		}
	}
	return nil
}

// BuildMansion assembles the room tree and returns its root.
func (s *Scenario) BuildMansion() (*mansion.Location, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	nodes := make(map[string]*mansion.Location, len(s.Rooms))
	for _, r := range s.Rooms {
		nodes[r.ID] = mansion.NewLocation(r.Name, r.Clue)
	}
	for _, r := range s.Rooms {
		if r.Left != "" {
			if err := mansion.Link(nodes[r.ID], mansion.Left, nodes[r.Left]); err != nil {
				return nil, fmt.Errorf("failed to link %s: %w", r.ID, err)
			}
		}
		if r.Right != "" {
			if err := mansion.Link(nodes[r.ID], mansion.Right, nodes[r.Right]); err != nil {
				return nil, fmt.Errorf("failed to link %s: %w", r.ID, err)
			}
		}
	}
	return nodes[s.Root], nil
}

// BuildIndex loads every association into a new index of the given capacity.
func (s *Scenario) BuildIndex(capacity int) (*suspects.Index, error) {
	ix, err := suspects.New(capacity)
	if err != nil {
		return nil, err
	}
	for _, a := range s.Associations {
		ix.Put(a.Clue, a.Suspect)
	}
	return ix, nil
}

// ClueFor returns the clue of the room with the given display name.
func (s *Scenario) ClueFor(name string) string {
	for _, r := range s.Rooms {
		if r.Name == name {
			return r.Clue
		}
	}
	return ""
}
