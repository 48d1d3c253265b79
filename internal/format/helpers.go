package format

import (
	"strconv"
	"strings"
	"time"
)

// Truncate shortens s to max runes, appending "..." if truncated.
// Counting runes keeps CJK question text from being cut mid-character.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// FmtLines renders changing-line positions as "1,3"; "-" when the cast is static.
func FmtLines(lines []int) string {
	if len(lines) == 0 {
		return "-"
	}
	parts := make([]string, len(lines))
	for i, n := range lines {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// FmtTime formats a timestamp for table listings in the local zone.
func FmtTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
