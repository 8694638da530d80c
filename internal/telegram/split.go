package telegram

import (
	"strings"
	"unicode/utf8"
)

// Split breaks text into chunks of at most limit characters, preferring line
// boundaries. Lines are accumulated greedily; the buffer is flushed before a
// line that would overflow it. A single line longer than limit bypasses the
// buffer and is cut into fixed-size pieces. Buffered chunks are trimmed of
// surrounding whitespace and empty chunks are dropped.
//
// Lengths are counted in runes, so multi-byte text is never cut inside a
// character.
func Split(text string, limit int) []string {
	var parts []string
	var buf strings.Builder
	bufLen := 0 // runes currently buffered

	flush := func() {
		if s := strings.TrimSpace(buf.String()); s != "" {
			parts = append(parts, s)
		}
		buf.Reset()
		bufLen = 0
	}

	for _, line := range strings.Split(text, "\n") {
		lineLen := utf8.RuneCountInString(line)
		if bufLen+lineLen+1 > limit {
			flush()
			if lineLen > limit {
				parts = append(parts, chunk(line, limit)...)
				continue
			}
		}
		if bufLen > 0 {
			buf.WriteByte('\n')
			bufLen++
		}
		buf.WriteString(line)
		bufLen += lineLen
	}
	flush()
	return parts
}

// chunk cuts s into pieces of exactly size runes (the last may be shorter).
func chunk(s string, size int) []string {
	runes := []rune(s)
	parts := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}
