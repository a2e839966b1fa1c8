package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"detectivequest/internal/game/investigation"
	"detectivequest/internal/logging"
)

// VerdictEntry builds the journal record for a judged accusation.
func VerdictEntry(info CaseInfo, c *investigation.Controller, v investigation.Verdict) logging.CaseLog {
	return logging.CaseLog{
		SessionID: info.SessionID,
		Scenario:  info.Scenario,
		Accused:   v.Accused,
		Count:     v.Count,
		Sustained: v.Sustained,
		Clues:     c.Report(),
		Trail:     c.History().GetEntries(),
	}
}

// logVerdictCmd writes the verdict to the journal off the update loop.
// The entry is built before the command runs so the controller is only
// read from Update.
func logVerdictCmd(loggers GameLoggers, info CaseInfo, c *investigation.Controller, v investigation.Verdict) tea.Cmd {
	if loggers.Journal == nil {
		return nil
	}
	entry := VerdictEntry(info, c, v)
	journal := loggers.Journal
	return func() tea.Msg {
		return verdictLoggedMsg{err: journal.LogVerdict(entry)}
	}
}
