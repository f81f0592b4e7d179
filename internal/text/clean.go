package text

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Reduces a line of free text to the letters A-Z the machine accepts.
// Accented letters are folded to their base letter ("é" becomes "E"); everything else is dropped
func Clean(line string) string {
	foldAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(foldAccents, strings.TrimSpace(line))
	if err != nil {
		folded = line
	}

	letters := lo.Filter([]rune(strings.ToUpper(folded)), func(r rune, _ int) bool {
		return 'A' <= r && r <= 'Z'
	})
	return string(letters)
}

// Splits text into space separated groups of size letters, e.g. "KSUBR KSUBR K".
// A non-positive size leaves the text untouched
func Group(text string, size int) string {
	if size <= 0 || text == "" {
		return text
	}
	return strings.Join(lo.ChunkString(text, size), " ")
}
