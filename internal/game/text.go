package game

import "unicode/utf8"

// Storage limits for text fields, in bytes.
const (
	MaxNameLen    = 63
	MaxClueLen    = 127
	MaxSuspectLen = 63
)

// Truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func TruncateName(s string) string    { return Truncate(s, MaxNameLen) }
func TruncateClue(s string) string    { return Truncate(s, MaxClueLen) }
func TruncateSuspect(s string) string { return Truncate(s, MaxSuspectLen) }
