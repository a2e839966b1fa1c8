package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detectivequest/cmd/game/ui"
	"detectivequest/internal/game/scenario"
	"detectivequest/internal/game/suspects"
	"detectivequest/internal/logging"
)

func newTestJournal(t *testing.T) *logging.CaseLogger {
	t.Helper()
	journal, err := logging.NewCaseLogger(filepath.Join(t.TempDir(), "cases.db"))
	require.NoError(t, err)
	t.Cleanup(func() { journal.Close() })
	return journal
}

func newTestApp(t *testing.T, journal *logging.CaseLogger) *app {
	t.Helper()
	a, err := newApp(context.Background(), scenario.Default(), suspects.DefaultCapacity,
		ui.GameLoggers{Journal: journal}, "test-session", nil)
	require.NoError(t, err)
	t.Cleanup(a.controller.Close)
	return a
}

func TestPlainSustainedCase(t *testing.T) {
	journal := newTestJournal(t)
	a := newTestApp(t, journal)

	var out bytes.Buffer
	in := strings.NewReader("l\nr\nr\nend\njardineiro\n")
	require.NoError(t, runPlain(a, in, &out))

	text := out.String()
	assert.Contains(t, text, "You are in: Sala de Estar")
	assert.Contains(t, text, "You are in: Jardim")
	assert.Contains(t, text, "You cannot go right from Jardim.")
	assert.Contains(t, text, "You end the exploration in Jardim.")
	assert.Contains(t, text, "- Copo quebrado no chão\n- Pegada com lama no tapete\n- Terra revirada junto ao canteiro\n")
	assert.Contains(t, text, "SUSTAINED: the accusation of \"jardineiro\" is backed by 2 clues.")
	assert.NotContains(t, text, "NOT SUSTAINED")

	cases, err := journal.GetRecentCases(1)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "test-session", cases[0].SessionID)
	assert.Equal(t, "Detective Quest", cases[0].Scenario)
	assert.Equal(t, 2, cases[0].Count)
	assert.True(t, cases[0].Sustained)
	assert.Len(t, cases[0].Clues, 3)
}

func TestPlainEOFEndsExploration(t *testing.T) {
	journal := newTestJournal(t)
	a := newTestApp(t, journal)

	var out bytes.Buffer
	require.NoError(t, runPlain(a, strings.NewReader("left\n"), &out))

	assert.True(t, a.controller.Ended())
	assert.Contains(t, out.String(), "You end the exploration in Sala de Estar.")
	assert.Contains(t, out.String(), "No accusation made.")

	cases, err := journal.GetRecentCases(1)
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestPlainInvalidInputKeepsPlaying(t *testing.T) {
	a := newTestApp(t, nil)

	var out bytes.Buffer
	require.NoError(t, runPlain(a, strings.NewReader("up\n\nR\nq\nMordomo\n"), &out))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Invalid option, try again."))
	assert.Contains(t, text, "You are in: Cozinha")
	assert.Contains(t, text, "NOT SUSTAINED: only 0 clue(s) point at \"Mordomo\".")
}

func TestReview(t *testing.T) {
	journal := newTestJournal(t)

	var out bytes.Buffer
	require.NoError(t, runReview(journal, 10, &out))
	assert.Contains(t, out.String(), "No cases found.")

	require.NoError(t, journal.LogVerdict(logging.CaseLog{
		SessionID: "abc",
		Scenario:  "Detective Quest",
		Accused:   "Mordomo",
		Count:     1,
		Clues:     []string{"Copo quebrado no chão"},
		Trail:     []string{"left -> Sala de Estar"},
	}))

	out.Reset()
	require.NoError(t, runReview(journal, 10, &out))
	text := out.String()
	assert.Contains(t, text, "Recent cases (1):")
	assert.Contains(t, text, "Accused: Mordomo (1 clue(s)) NOT SUSTAINED")
	assert.Contains(t, text, "Clues: Copo quebrado no chão")
	assert.Contains(t, text, "Trail: left -> Sala de Estar")
}

func TestPrintRooms(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printRooms(scenario.Default(), &out))

	text := out.String()
	for _, name := range []string{"Hall de Entrada", "Sala de Estar", "Biblioteca", "Jardim", "Cozinha", "Quarto", "Adega"} {
		assert.Contains(t, text, name)
	}
	assert.Contains(t, text, "Bibliotecária")
	assert.Contains(t, text, "7 room(s)")
}
