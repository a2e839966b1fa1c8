// Package investigation runs one play session: it moves the player through
// the mansion, files each clue found into the ledger and judges the final
// accusation against the suspect index.
package investigation

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"detectivequest/internal/debug"
	"detectivequest/internal/game"
	"detectivequest/internal/game/ledger"
	"detectivequest/internal/game/mansion"
	"detectivequest/internal/game/scenario"
	"detectivequest/internal/game/suspects"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrSessionEnded = errors.New("investigation has ended")
	ErrNoMansion    = errors.New("investigation needs a starting location")
	ErrNoIndex      = errors.New("investigation needs a suspect index")
)

// State is what the presentation layer shows after each transition.
// NewClue is set when Clue was added to the ledger on this entry. Leaf only
// informs; the session still ends on an explicit end.
type State struct {
	Location string
	Clue     string
	NewClue  bool
	Left     string
	Right    string
	Leaf     bool
	Ended    bool
}

// Directions lists the moves available from the current location.
func (s State) Directions() []string {
	var dirs []string
	if s.Left != "" {
		dirs = append(dirs, "left")
	}
	if s.Right != "" {
		dirs = append(dirs, "right")
	}
	return dirs
}

type Controller struct {
	root    *mansion.Location
	current *mansion.Location
	ledger  *ledger.Ledger
	index   *suspects.Index
	ended   bool
	closed  bool
	newClue bool

	debug   *debug.Logger
	tracer  trace.Tracer
	history *game.History
	hooks   ReleaseHooks
}

// ReleaseHooks observe teardown; each hook sees every node of its
// structure once.
type ReleaseHooks struct {
	Room  func(*mansion.Location)
	Clue  func(*ledger.Node)
	Entry func(*suspects.Entry)
}

type Option func(*Controller)

func WithLogger(l *debug.Logger) Option {
	return func(c *Controller) { c.debug = l }
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) { c.tracer = t }
}

func WithHistory(h *game.History) Option {
	return func(c *Controller) { c.history = h }
}

func WithReleaseHooks(h ReleaseHooks) Option {
	return func(c *Controller) { c.hooks = h }
}

// New starts a session at root. The controller takes ownership of the
// graph and the index and releases both in Close. Entering root files its
// clue straight away.
func New(root *mansion.Location, index *suspects.Index, opts ...Option) (*Controller, error) {
	if root == nil {
		return nil, ErrNoMansion
	}
	if index == nil {
		return nil, ErrNoIndex
	}

	c := &Controller{
		root:    root,
		ledger:  ledger.New(),
		index:   index,
		tracer:  otel.Tracer("investigation"),
		history: game.NewHistory(64),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.enter(root)
	return c, nil
}

// NewFromScenario builds the mansion and the suspect index from s.
func NewFromScenario(s *scenario.Scenario, capacity int, opts ...Option) (*Controller, error) {
	root, err := s.BuildMansion()
	if err != nil {
		return nil, fmt.Errorf("failed to build mansion: %w", err)
	}
	index, err := s.BuildIndex(capacity)
	if err != nil {
		mansion.Release(root, nil)
		return nil, fmt.Errorf("failed to build suspect index: %w", err)
	}
	return New(root, index, opts...)
}

func (c *Controller) enter(loc *mansion.Location) {
	c.current = loc
	c.newClue = false
	if loc.HasClue() {
		c.newClue = c.ledger.Add(loc.Clue)
		if c.newClue {
			c.debug.Printf("clue filed at %s: %q (%d collected)", loc.Name, loc.Clue, c.ledger.Len())
			c.history.AddDiscovery(loc.Name, loc.Clue)
		}
	}
}

// Step applies one transition. A move with no matching child, or an
// unknown token, is rejected with ErrInvalidInput and leaves the state
// as it was. End is always accepted.
func (c *Controller) Step(ctx context.Context, tok Token) (State, error) {
	_, span := c.tracer.Start(ctx, "investigation.step",
		trace.WithAttributes(
			attribute.String("token", tok.String()),
			attribute.String("from", c.current.Name),
		),
	)
	defer span.End()

	if tok == TokenEnd {
		if !c.ended {
			c.ended = true
			c.debug.Printf("investigation ended at %s", c.current.Name)
			c.history.AddNote("ended at " + c.current.Name)
		}
		c.newClue = false
		return c.Look(), nil
	}

	if c.ended {
		span.SetAttributes(attribute.String("error_type", "session_ended"))
		return c.Look(), ErrSessionEnded
	}

	var next *mansion.Location
	switch tok {
	case TokenLeft:
		next = c.current.Child(mansion.Left)
	case TokenRight:
		next = c.current.Child(mansion.Right)
	default:
		err := fmt.Errorf("%w: unknown token", ErrInvalidInput)
		c.reject(span, tok, err)
		return c.Look(), err
	}

	if next == nil {
		err := fmt.Errorf("%w: no way %s from %s", ErrInvalidInput, tok, c.current.Name)
		c.reject(span, tok, err)
		return c.Look(), err
	}

	c.history.AddMove(tok.String(), next.Name)
	c.debug.Printf("moved %s: %s -> %s", tok, c.current.Name, next.Name)
	c.enter(next)

	st := c.Look()
	span.SetAttributes(
		attribute.String("to", st.Location),
		attribute.Bool("new_clue", st.NewClue),
	)
	return st, nil
}

func (c *Controller) reject(span trace.Span, tok Token, err error) {
	span.SetAttributes(attribute.String("error_type", "invalid_input"))
	span.RecordError(err)
	c.debug.Printf("rejected %s at %s: %v", tok, c.current.Name, err)
	c.history.AddRejected(tok.String(), err)
}

// Look reports the current state without changing it.
func (c *Controller) Look() State {
	st := State{
		Location: c.current.Name,
		Clue:     c.current.Clue,
		NewClue:  c.newClue,
		Leaf:     c.current.IsLeaf(),
		Ended:    c.ended,
	}
	left, right := c.current.Children()
	if left != nil {
		st.Left = left.Name
	}
	if right != nil {
		st.Right = right.Name
	}
	return st
}

func (c *Controller) Ended() bool {
	return c.ended
}

// Clues yields the collected clues in ascending order.
func (c *Controller) Clues() iter.Seq[string] {
	return c.ledger.All()
}

// Report lists the collected clues in ascending order.
func (c *Controller) Report() []string {
	return c.ledger.Slice()
}

// Suspects lists everyone a clue can point at.
func (c *Controller) Suspects() []string {
	return c.index.Suspects()
}

func (c *Controller) History() *game.History {
	return c.history
}

// Judge weighs an accusation against the collected clues.
func (c *Controller) Judge(ctx context.Context, accused string) Verdict {
	accused = game.TruncateSuspect(strings.TrimSpace(accused))

	_, span := c.tracer.Start(ctx, "investigation.judge",
		trace.WithAttributes(
			attribute.String("accused", accused),
			attribute.Int("clues_collected", c.ledger.Len()),
		),
	)
	defer span.End()

	sustained, count := Judge(c.ledger.All(), c.index, accused)
	span.SetAttributes(
		attribute.Int("corroborating_clues", count),
		attribute.Bool("sustained", sustained),
	)
	c.debug.Printf("accused %q: %d corroborating clue(s), sustained=%t", accused, count, sustained)

	return Verdict{Accused: accused, Count: count, Sustained: sustained}
}

// Close releases the ledger, the suspect index and the whole mansion.
// The controller must not be used afterwards; a second Close is a no-op.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true

	clues := c.ledger.Release(c.hooks.Clue)
	entries := c.index.Release(c.hooks.Entry)
	rooms := mansion.Release(c.root, c.hooks.Room)
	c.debug.Printf("released %d clue(s), %d index entries, %d room(s)", clues, entries, rooms)
}
