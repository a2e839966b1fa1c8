package game

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short text untouched", in: "Adega", max: 10, want: "Adega"},
		{name: "exact length untouched", in: "Quarto", max: 6, want: "Quarto"},
		{name: "ascii cut", in: "Biblioteca", max: 4, want: "Bibl"},
		{name: "does not split multibyte rune", in: "Bibliotecária", max: 10, want: "Bibliotec"},
		{name: "keeps whole multibyte rune", in: "Bibliotecária", max: 11, want: "Bibliotecá"},
		{name: "zero max", in: "Jardim", max: 0, want: ""},
		{name: "empty input", in: "", max: 5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestTruncateFieldLimits(t *testing.T) {
	long := strings.Repeat("x", 500)

	assert.Len(t, TruncateName(long), MaxNameLen)
	assert.Len(t, TruncateClue(long), MaxClueLen)
	assert.Len(t, TruncateSuspect(long), MaxSuspectLen)
}

func TestHistoryKeepsMostRecent(t *testing.T) {
	h := NewHistory(2)
	h.AddMove("left", "Sala de Estar")
	h.AddDiscovery("Sala de Estar", "Copo quebrado no chão")
	h.AddMove("right", "Jardim")

	entries := h.GetEntries()
	assert.Equal(t, []string{
		"clue at Sala de Estar: Copo quebrado no chão",
		"right -> Jardim",
	}, entries)
	assert.Equal(t, 2, h.Len())

	entries[0] = "mutated"
	assert.NotEqual(t, "mutated", h.GetEntries()[0])
}
