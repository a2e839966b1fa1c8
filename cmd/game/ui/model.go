package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"detectivequest/internal/debug"
	"detectivequest/internal/game/investigation"
	"detectivequest/internal/logging"
)

type Phase int

const (
	Exploring Phase = iota
	Accusing
	Closed
)

type GameLoggers struct {
	Debug   *debug.Logger
	Journal *logging.CaseLogger
}

// CaseInfo identifies the session in the journal and in traces.
type CaseInfo struct {
	SessionID string
	Scenario  string
}

type Model struct {
	messages   []string
	input      string
	width      int
	height     int
	phase      Phase
	controller *investigation.Controller
	loggers    GameLoggers
	info       CaseInfo
	ctx        context.Context
	verdict    *investigation.Verdict
	logPending bool
}

func NewModel(ctx context.Context, controller *investigation.Controller, loggers GameLoggers, info CaseInfo) Model {
	messages := []string{
		fmt.Sprintf("=== %s ===", info.Scenario),
		"Commands: left (l), right (r), end (e). Esc also ends the exploration.",
		"",
	}
	if loggers.Debug.IsEnabled() {
		messages = append(messages, "[DEBUG] session "+info.SessionID)
		messages = append(messages, "")
	}

	m := Model{
		messages:   messages,
		controller: controller,
		loggers:    loggers,
		info:       info,
		ctx:        ctx,
	}
	m.messages = append(m.messages, Describe(controller.Look())...)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Phase() Phase {
	return m.phase
}

func (m Model) Verdict() *investigation.Verdict {
	return m.verdict
}

func (m Model) Messages() []string {
	out := make([]string, len(m.messages))
	copy(out, m.messages)
	return out
}

type verdictLoggedMsg struct {
	err error
}

// Describe renders a display state as chat lines.
func Describe(st investigation.State) []string {
	lines := []string{"You are in: " + st.Location}
	switch {
	case st.Clue != "" && st.NewClue:
		lines = append(lines, "CLUE: "+st.Clue)
	case st.Clue != "":
		lines = append(lines, "Already noted here: "+st.Clue)
	default:
		lines = append(lines, "Nothing of interest here.")
	}

	if st.Left != "" {
		lines = append(lines, "  (l) left  -> "+st.Left)
	}
	if st.Right != "" {
		lines = append(lines, "  (r) right -> "+st.Right)
	}
	if st.Leaf {
		lines = append(lines, "  This room leads nowhere else.")
	}
	lines = append(lines, "  (e) end the exploration", "")
	return lines
}

// ReportLines lists the collected clues and the suspects before the accusation.
func ReportLines(c *investigation.Controller) []string {
	lines := []string{"--- Clues collected (A-Z) ---"}
	clues := c.Report()
	if len(clues) == 0 {
		lines = append(lines, "(no clues collected)")
	}
	for _, clue := range clues {
		lines = append(lines, "- "+clue)
	}
	lines = append(lines, "",
		"Possible suspects: "+strings.Join(c.Suspects(), ", "),
		"Who do you accuse?",
	)
	return lines
}

func VerdictLine(v investigation.Verdict) string {
	if v.Sustained {
		return fmt.Sprintf("SUSTAINED: the accusation of %q is backed by %d clues. Case closed!", v.Accused, v.Count)
	}
	return fmt.Sprintf("NOT SUSTAINED: only %d clue(s) point at %q. Keep investigating!", v.Count, v.Accused)
}
