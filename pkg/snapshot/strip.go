// File: pkg/snapshot/strip.go
package snapshot

import (
	"fmt"
	"regexp"
	"strings"
)

// Literal forms that must survive comment removal. The regex-literal pattern
// is a heuristic, not a lexer: a division expression can be mistaken for a
// regex literal in ambiguous syntax. That behavior is inherited and kept.
const (
	doubleQuoted = `"(?:\\.|[^"\\\n])*"`
	singleQuoted = `'(?:\\.|[^'\\\n])*'`
	backQuoted   = "`(?:\\\\.|[^`\\\\])*`"
	regexLiteral = `/(?:\\.|[^*/\\\n])(?:\\.|[^/\\\n])*/[gimsuy]*`
)

var (
	literalPattern      = regexp.MustCompile(doubleQuoted + "|" + singleQuoted + "|" + backQuoted + "|" + regexLiteral)
	lineCommentPattern  = regexp.MustCompile(`//[^\n]*`)
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
)

// StripComments removes line and block comments from source text while
// leaving string and regex literals untouched. Literals are swapped for
// unique placeholders before comment removal and restored afterwards, so a
// "//" or "/*" inside a literal is never treated as a comment.
func StripComments(source string) string {
	placeholders := make(map[string]string)
	count := 0

	protected := literalPattern.ReplaceAllStringFunc(source, func(literal string) string {
		key := fmt.Sprintf("\x00L%d\x00", count)
		count++
		placeholders[key] = literal
		return key
	})

	protected = lineCommentPattern.ReplaceAllString(protected, "")
	protected = blockCommentPattern.ReplaceAllString(protected, "")

	// Placeholders that sat inside a removed comment are gone; restoring is
	// a no-op for those.
	for key, literal := range placeholders {
		protected = strings.Replace(protected, key, literal, 1)
	}
	return protected
}

// CollapseWhitespace reduces every whitespace run to a single space and
// trims the result.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
