package session

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// splitEmojiName splits admin material input of the form "<emoji> <name>".
// The first whitespace-separated field counts as the emoji when it contains
// no letters or digits; otherwise the whole text is the name and the default
// box icon applies.
func splitEmojiName(text string) (emoji, name string) {
	fields := strings.Fields(text)
	if len(fields) >= 2 && !containsAlnum(fields[0]) {
		return fields[0], strings.Join(fields[1:], " ")
	}
	return domain.DefaultMaterialEmoji, strings.TrimSpace(text)
}

func containsAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// splitColorSpec splits color input of the form "Name #Code". The code is
// the last #-prefixed field; everything before it is the name.
func splitColorSpec(text string) (name, code string, ok bool) {
	idx := strings.LastIndex(text, "#")
	if idx < 0 {
		return "", "", false
	}

	name = strings.TrimSpace(text[:idx])
	code = strings.TrimSpace(text[idx:])
	if name == "" || len(code) < 2 {
		return "", "", false
	}
	return name, code, true
}
