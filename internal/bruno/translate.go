package bruno

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/realworld-conformance/hurl2bruno/internal/hurl"
)

var (
	assertRe  = regexp.MustCompile(`^jsonpath\s+"([^"]+)"\s+(.+)$`)
	bareVarRe = regexp.MustCompile(`^\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}$`)
	intRe     = regexp.MustCompile(`^-?\d+$`)
	decimalRe = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// pathExpr rewrites a jsonpath like "$.user.token" into the JavaScript
// expression Bruno scripts use to reach the same value, "res.body.user.token".
func pathExpr(path string) string {
	p := strings.TrimPrefix(path, "$")
	p = strings.TrimPrefix(p, ".")

	switch {
	case p == "":
		return "res.body"
	case strings.HasPrefix(p, "["):
		return "res.body" + p
	default:
		return "res.body." + p
	}
}

// splitLeaf splits a jsonpath into its parent path and final property
// name, used for "not exists" assertions which must target the parent.
func splitLeaf(path string) (parent, leaf string) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return "$", path
	}

	return path[:idx], path[idx+1:]
}

// TransformValue converts a raw Hurl value token into the equivalent
// JavaScript expression.
//
// Literals (null, booleans, numbers, plain quoted strings) pass through
// unchanged. A bare or quoted {{var}} placeholder becomes a bru.getVar
// lookup, and a quoted string mixing literal text with placeholders
// becomes a concatenation of the two.
//
// TransformValue is total: anything it doesn't recognize is returned
// unchanged so that odd input shows up in the generated text rather than
// aborting the conversion.
func TransformValue(raw string) string {
	value := strings.TrimSpace(raw)

	switch value {
	case "null", "true", "false":
		return value
	}

	if intRe.MatchString(value) || decimalRe.MatchString(value) {
		return value
	}

	if match := bareVarRe.FindStringSubmatch(value); match != nil {
		return fmt.Sprintf("bru.getVar(%q)", match[1])
	}

	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		inner := value[1 : len(value)-1]

		if match := bareVarRe.FindStringSubmatch(inner); match != nil {
			return fmt.Sprintf("bru.getVar(%q)", match[1])
		}

		if strings.Contains(inner, "{{") {
			return concatExpr(inner)
		}
	}

	return value
}

// concatExpr turns a string mixing literal text and {{var}} placeholders
// into a JavaScript concatenation, e.g. `auth_{{uid}}` becomes
// `"auth_" + bru.getVar("uid")`.
func concatExpr(s string) string {
	var parts []string

	for {
		start := strings.Index(s, "{{")
		if start < 0 {
			break
		}

		end := strings.Index(s[start:], "}}")
		if end < 0 {
			break
		}
		end += start

		if literal := s[:start]; literal != "" {
			parts = append(parts, strconv.Quote(literal))
		}

		parts = append(parts, fmt.Sprintf("bru.getVar(%q)", s[start+2:end]))
		s = s[end+2:]
	}

	if s != "" {
		parts = append(parts, strconv.Quote(s))
	}

	if len(parts) == 0 {
		return `""`
	}

	return strings.Join(parts, " + ")
}

// AssertToJS converts one raw Hurl assertion line into a Bruno
// post-response expectation statement.
//
// Unknown predicates are emitted as an inert comment carrying the
// original line. That is deliberate: a new predicate in the source files
// then shows up as a content change in check mode instead of crashing
// the conversion.
func AssertToJS(line string) string {
	match := assertRe.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return "// unhandled assert: " + line
	}

	path, predicate := match[1], strings.TrimSpace(match[2])
	expr := pathExpr(path)

	switch {
	case strings.HasPrefix(predicate, "count == "):
		count := strings.TrimPrefix(predicate, "count == ")
		return fmt.Sprintf("expect(%s.length).to.equal(%s);", expr, count)
	case strings.HasPrefix(predicate, "count >= "):
		count := strings.TrimPrefix(predicate, "count >= ")
		return fmt.Sprintf("expect(%s.length).to.be.at.least(%s);", expr, count)
	case predicate == "not exists":
		parent, leaf := splitLeaf(path)
		return fmt.Sprintf("expect(%s).to.not.have.property(%q);", pathExpr(parent), leaf)
	case predicate == "not isEmpty":
		return fmt.Sprintf(`expect(%s).to.not.equal("");`, expr)
	case predicate == "isString":
		return fmt.Sprintf(`expect(%s).to.be.a("string");`, expr)
	case predicate == "isInteger":
		return fmt.Sprintf(`expect(%s).to.be.a("number");`, expr)
	case predicate == "isCollection":
		return fmt.Sprintf(`expect(%s).to.be.an("array");`, expr)
	case strings.HasPrefix(predicate, "contains "):
		value := strings.TrimPrefix(predicate, "contains ")
		return fmt.Sprintf("expect(%s).to.include(%s);", expr, TransformValue(value))
	case strings.HasPrefix(predicate, "matches "):
		pattern := strings.TrimPrefix(predicate, "matches ")
		pattern = strings.TrimPrefix(pattern, `"`)
		pattern = strings.TrimSuffix(pattern, `"`)

		return fmt.Sprintf("expect(%s).to.match(/%s/);", expr, pattern)
	case strings.HasPrefix(predicate, "== "):
		value := strings.TrimPrefix(predicate, "== ")
		if strings.TrimSpace(value) == "null" {
			return fmt.Sprintf("expect(%s).to.be.null;", expr)
		}

		return fmt.Sprintf("expect(%s).to.equal(%s);", expr, TransformValue(value))
	case strings.HasPrefix(predicate, ">= "):
		value := strings.TrimPrefix(predicate, ">= ")
		return fmt.Sprintf("expect(%s).to.be.at.least(%s);", expr, TransformValue(value))
	default:
		return "// unhandled assert: " + line
	}
}

// CaptureToJS converts a capture into the bru.setVar statement that
// stores the response value for later requests in the same run.
func CaptureToJS(capture hurl.Capture) string {
	return fmt.Sprintf("bru.setVar(%q, %s);", capture.Name, pathExpr(capture.Path))
}
