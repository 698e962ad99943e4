// Package voice turns recognized utterances into timer commands
package voice

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// synonyms folds spoken variants onto one canonical word. The table is only
// applied on the bulk command path so that names are never rewritten.
var synonyms = []struct {
	re   *regexp.Regexp
	word string
}{
	{regexp.MustCompile(`すべて|全部|ぜんぶ|みんな|みな|オール`), "すべて"},
	{regexp.MustCompile(`タイマー|たいまー|timer`), "タイマー"},
	{regexp.MustCompile(`停止|ストップ|止め|とめ|pause`), "停止"},
	{regexp.MustCompile(`終了|削除|消去|クリア|しゅうりょう|さくじょ|clear|delete`), "終了"},
}

// Normalize trims the utterance and folds character width: full-width
// digits and latin letters become ASCII and half-width katakana becomes
// full-width.
func Normalize(s string) string {
	return strings.TrimSpace(width.Fold.String(s))
}

// Compact removes every whitespace character, including the ideographic
// space.
func Compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Fold lowercases and compacts s, then replaces synonyms with their
// canonical word.
func Fold(s string) string {
	s = Compact(strings.ToLower(s))

	for _, syn := range synonyms {
		s = syn.re.ReplaceAllString(s, syn.word)
	}

	return s
}

// Utterance holds the forms of one utterance that the stages match against.
type Utterance struct {
	// Raw is the normalized text with its original spacing
	Raw string
	// Compact is Raw without whitespace
	Compact string
	// Folded is the synonym-folded form used for bulk commands only
	Folded string
}

// NewUtterance prepares text for routing.
func NewUtterance(text string) Utterance {
	raw := Normalize(text)

	return Utterance{
		Raw:     raw,
		Compact: Compact(raw),
		Folded:  Fold(raw),
	}
}
