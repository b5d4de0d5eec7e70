package hurl

import (
	"regexp"
	"strconv"
	"strings"
)

// state is the parser's current line classification mode.
type state int

const (
	stateIdle     state = iota // Between blocks, or after a finished body
	stateHeaders               // After a method line, collecting headers
	stateBody                  // Inside a JSON body, collecting lines verbatim
	stateAsserts               // Inside an [Asserts] section
	stateCaptures              // Inside a [Captures] section
	stateResponse              // After an HTTP status line, waiting for a section header
)

var (
	methodRe  = regexp.MustCompile(`^(GET|POST|PUT|DELETE|PATCH)\s+(\S+)$`)
	statusRe  = regexp.MustCompile(`^HTTP\s+(\d{3})$`)
	headerRe  = regexp.MustCompile(`^([A-Za-z0-9-]+):\s*(.*)$`)
	captureRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*):\s*jsonpath\s+"([^"]+)"$`)
)

// Parser reads one Hurl file and extracts its request blocks.
//
// It is a single pass line classifier: each line either transitions the
// state machine or accumulates into the request currently being built.
// A Parser must not be reused across files.
type Parser struct {
	current  *Request
	body     *bodyScanner
	requests []Request
	state    state
}

// Parse reads src, the full text of one Hurl file, and returns the request
// blocks it contains in source order.
//
// Blocks that never acquire a method line are dropped. Parse does not
// return an error, unrecognized lines are ignored rather than rejected.
func Parse(src []byte) []Request {
	p := &Parser{}

	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	for line := range strings.Lines(text) {
		p.consume(strings.TrimSuffix(line, "\n"))
	}

	p.finalize()

	return p.requests
}

// consume classifies a single line and updates the parser state.
func (p *Parser) consume(line string) {
	// Body mode swallows everything, blanks included, until the brace
	// depth returns to zero.
	if p.state == stateBody {
		if open := p.body.consume(line); !open {
			p.current.Body = p.body.text()
			p.body = nil
			p.state = stateIdle
		}

		return
	}

	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		// Blank lines outside a body carry no meaning
	case strings.HasPrefix(trimmed, "#"):
		p.comment(trimmed)
	case methodRe.MatchString(trimmed):
		p.method(trimmed)
	case statusRe.MatchString(trimmed):
		p.status(trimmed)
	case trimmed == "[Asserts]":
		p.state = stateAsserts
	case trimmed == "[Captures]":
		p.state = stateCaptures
	default:
		p.accumulate(trimmed)
	}
}

// comment finalizes any open request and opens a new one tagged with the
// comment text.
func (p *Parser) comment(trimmed string) {
	p.finalize()
	p.current = &Request{
		Comment: strings.TrimSpace(strings.TrimLeft(trimmed, "#")),
	}
}

// method handles a method + URL line. If the open request already has a
// method this begins a new, untagged request. Back-to-back method lines
// with no intervening comment are therefore separate requests.
func (p *Parser) method(trimmed string) {
	if p.current == nil || p.current.Method != "" {
		p.finalize()
		p.current = &Request{}
	}

	match := methodRe.FindStringSubmatch(trimmed)
	p.current.Method = match[1]
	p.current.URL = match[2]
	p.state = stateHeaders
}

// status handles an expected status line like "HTTP 201".
func (p *Parser) status(trimmed string) {
	if p.current == nil {
		return
	}

	match := statusRe.FindStringSubmatch(trimmed)

	// \d{3} cannot overflow an int
	code, _ := strconv.Atoi(match[1])

	p.current.StatusCode = code
	p.state = stateResponse
}

// accumulate handles content lines whose meaning depends on the current
// state: headers, body opening braces, captures and asserts.
func (p *Parser) accumulate(trimmed string) {
	if p.current == nil {
		return
	}

	switch p.state {
	case stateHeaders, stateIdle:
		if trimmed == "{" {
			p.body = &bodyScanner{}
			p.body.consume(trimmed)
			p.state = stateBody

			return
		}

		if p.state == stateHeaders {
			if match := headerRe.FindStringSubmatch(trimmed); match != nil {
				p.current.setHeader(match[1], match[2])
			}
		}
	case stateCaptures:
		// Anything not shaped like `name: jsonpath "<path>"` is ignored
		if match := captureRe.FindStringSubmatch(trimmed); match != nil {
			p.current.Captures = append(p.current.Captures, Capture{
				Name: match[1],
				Path: match[2],
			})
		}
	case stateAsserts:
		// Raw, uninterpreted. Translation happens at generation time so
		// unknown predicates degrade to visible output, not errors.
		p.current.Asserts = append(p.current.Asserts, trimmed)
	case stateResponse:
		// Expected response content is not interpreted, only [Asserts]
		// and [Captures] sections matter after a status line
	case stateBody:
		// Handled before classification, unreachable
	}
}

// finalize closes the request currently being built, keeping it only if
// it acquired a method. A trailing unterminated body is kept as-is.
func (p *Parser) finalize() {
	if p.current == nil {
		return
	}

	if p.body != nil {
		p.current.Body = p.body.text()
		p.body = nil
	}

	if p.current.Method != "" {
		p.requests = append(p.requests, *p.current)
	}

	p.current = nil
	p.state = stateIdle
}
