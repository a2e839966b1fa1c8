package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"detectivequest/internal/game/investigation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case verdictLoggedMsg:
		return m.handleVerdictLogged(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

func (m Model) handleVerdictLogged(msg verdictLoggedMsg) (tea.Model, tea.Cmd) {
	m.logPending = false
	if msg.err != nil {
		m.loggers.Debug.Printf("Failed to log verdict: %v", msg.err)
		if m.loggers.Debug.IsEnabled() {
			m.messages = append(m.messages, "[DEBUG] journal write failed: "+msg.err.Error())
		}
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.phase == Exploring {
			m.endExploration()
		}
		return m, tea.Quit

	case tea.KeyEsc, tea.KeyCtrlD:
		// End of input counts as the end command.
		if m.phase == Exploring {
			m.endExploration()
			return m, nil
		}
		if m.phase == Closed && !m.logPending {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}
		return m, nil

	case tea.KeySpace:
		m.input += " "
		return m, nil

	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	userInput := strings.TrimSpace(m.input)
	m.input = ""

	switch m.phase {
	case Exploring:
		if userInput == "" {
			return m, nil
		}
		m.messages = append(m.messages, "> "+userInput)
		return m.explore(userInput)

	case Accusing:
		if userInput == "" {
			return m, nil
		}
		m.messages = append(m.messages, "> "+userInput)
		v := m.controller.Judge(m.ctx, userInput)
		m.verdict = &v
		m.phase = Closed
		m.messages = append(m.messages, "", VerdictLine(v), "", "Press Enter or Esc to leave.")
		cmd := logVerdictCmd(m.loggers, m.info, m.controller, v)
		m.logPending = cmd != nil
		return m, cmd

	default:
		// Leaving waits for the journal write.
		if m.logPending {
			return m, nil
		}
		return m, tea.Quit
	}
}

func (m Model) explore(userInput string) (tea.Model, tea.Cmd) {
	tok, err := investigation.ParseToken(userInput)
	if err != nil {
		m.messages = append(m.messages, "Invalid option, try again.", "")
		return m, nil
	}

	if tok == investigation.TokenEnd {
		m.endExploration()
		return m, nil
	}

	st, err := m.controller.Step(m.ctx, tok)
	if errors.Is(err, investigation.ErrInvalidInput) {
		m.messages = append(m.messages, "You cannot go "+tok.String()+" from "+st.Location+".", "")
		return m, nil
	}
	if err != nil {
		m.messages = append(m.messages, "Error: "+err.Error(), "")
		return m, nil
	}

	m.messages = append(m.messages, "")
	m.messages = append(m.messages, Describe(st)...)
	return m, nil
}

func (m *Model) endExploration() {
	st, _ := m.controller.Step(m.ctx, investigation.TokenEnd)
	m.phase = Accusing
	m.messages = append(m.messages, "", "You end the exploration in "+st.Location+".", "")
	m.messages = append(m.messages, ReportLines(m.controller)...)
}
