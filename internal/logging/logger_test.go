package logging

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *CaseLogger {
	t.Helper()
	logger, err := NewCaseLogger(filepath.Join(t.TempDir(), "cases.db"))
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })
	return logger
}

func TestLogAndReadBackVerdicts(t *testing.T) {
	logger := newTestLogger(t)
	session := uuid.NewString()

	require.NoError(t, logger.LogVerdict(CaseLog{
		SessionID: session,
		Scenario:  "Detective Quest",
		Accused:   "Mordomo",
		Count:     1,
		Sustained: false,
		Clues:     []string{"Copo quebrado no chão"},
		Trail:     []string{"left -> Sala de Estar"},
	}))
	require.NoError(t, logger.LogVerdict(CaseLog{
		SessionID: session,
		Scenario:  "Detective Quest",
		Accused:   "jardineiro",
		Count:     2,
		Sustained: true,
		Clues:     []string{"Pegada com lama no tapete", "Terra revirada junto ao canteiro"},
	}))

	cases, err := logger.GetRecentCases(10)
	require.NoError(t, err)
	require.Len(t, cases, 2)

	latest := cases[0]
	assert.Equal(t, "jardineiro", latest.Accused)
	assert.Equal(t, 2, latest.Count)
	assert.True(t, latest.Sustained)
	assert.Equal(t, session, latest.SessionID)
	assert.Equal(t, []string{"Pegada com lama no tapete", "Terra revirada junto ao canteiro"}, latest.Clues)
	assert.Empty(t, latest.Trail)
	assert.False(t, latest.Timestamp.IsZero())

	assert.Equal(t, "Mordomo", cases[1].Accused)
	assert.False(t, cases[1].Sustained)
	assert.Equal(t, []string{"left -> Sala de Estar"}, cases[1].Trail)
}

func TestGetRecentCasesLimit(t *testing.T) {
	logger := newTestLogger(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, logger.LogVerdict(CaseLog{SessionID: "s", Scenario: "x", Accused: "y"}))
	}

	cases, err := logger.GetRecentCases(3)
	require.NoError(t, err)
	assert.Len(t, cases, 3)
	assert.Greater(t, cases[0].ID, cases[2].ID)
}

func TestEmptyJournal(t *testing.T) {
	cases, err := newTestLogger(t).GetRecentCases(10)
	require.NoError(t, err)
	assert.Empty(t, cases)
}
