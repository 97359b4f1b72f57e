package core

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultMaxMessageBytes is the message size limit used when none is configured.
const DefaultMaxMessageBytes = 16 << 10

// SanitizeMessage replaces invalid UTF-8 with U+FFFD and cuts messages
// longer than limit bytes at a rune boundary, appending a marker with the
// number of bytes removed. A limit of zero or less disables the limit.
func SanitizeMessage(msg string, limit int) string {
	if !utf8.ValidString(msg) {
		msg = strings.ToValidUTF8(msg, "�")
	}
	if limit <= 0 || len(msg) <= limit {
		return msg
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	dropped := len(msg) - cut
	var b strings.Builder
	b.Grow(cut + 32)
	b.WriteString(msg[:cut])
	b.WriteString("... (truncated ")
	b.WriteString(strconv.Itoa(dropped))
	b.WriteString(" bytes)")
	return b.String()
}
