package hurl

import "strings"

// bodyScanner accumulates the lines of a JSON body, tracking brace depth
// so the parser knows when the body closes.
//
// The depth tracking is a character level tally of '{' and '}' on each
// trimmed line, not a JSON scan. A brace inside a quoted string value
// corrupts the count. The conformance suite's bodies are simple enough
// that this has never mattered, and the scanner is deliberately a single
// small type so a real JSON-aware version can replace it wholesale.
type bodyScanner struct {
	lines []string
	depth int
}

// consume appends line to the body verbatim and reports whether the body
// is still open after it.
func (b *bodyScanner) consume(line string) (open bool) {
	b.lines = append(b.lines, line)

	trimmed := strings.TrimSpace(line)
	b.depth += strings.Count(trimmed, "{")
	b.depth -= strings.Count(trimmed, "}")

	return b.depth > 0
}

// text returns the accumulated body.
func (b *bodyScanner) text() string {
	return strings.Join(b.lines, "\n")
}
