// Package bruno generates Bruno collection files from parsed Hurl
// requests.
//
// One Hurl file becomes one collection folder, one request becomes one
// numbered .bru file inside it, and the collection as a whole gets three
// shared scaffolding files: the collection descriptor, a pre-request
// script seeding the run-scoped unique id, and a local environment.
package bruno

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/realworld-conformance/hurl2bruno/internal/hurl"
)

// Extension is the file extension for Bruno request files.
const Extension = ".bru"

var separators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s, collapses every run of non-alphanumeric
// characters to a single hyphen and trims hyphens from both ends.
func Slugify(s string) string {
	slug := separators.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// lastSegment returns the final path segment of a url, ignoring any query
// string and a trailing slash. Template placeholders are left intact.
func lastSegment(url string) string {
	url, _, _ = strings.Cut(url, "?")
	url = strings.TrimSuffix(url, "/")

	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		url = url[idx+1:]
	}

	return url
}

// DisplayName returns the human readable name for a request, the comment
// when it has one and a method + last path segment fallback otherwise.
func DisplayName(request hurl.Request) string {
	if request.Comment != "" {
		return request.Comment
	}

	return fmt.Sprintf("%s %s", request.Method, lastSegment(request.URL))
}

// FileName returns the name of the .bru file for a request, numbered by
// its 1-based position within its source file, e.g. "03-get-article.bru".
func FileName(request hurl.Request, seq int) string {
	return fmt.Sprintf("%02d-%s%s", seq, Slugify(DisplayName(request)), Extension)
}

// FolderName returns the collection folder for a source file: the base
// name with the extension stripped and underscores turned into hyphens,
// e.g. "auth_register.hurl" becomes "auth-register".
func FolderName(sourceFile string) string {
	base := sourceFile

	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}

	if idx := strings.LastIndexByte(base, '.'); idx > 0 {
		base = base[:idx]
	}

	return strings.ReplaceAll(base, "_", "-")
}

// Render serializes one request as the content of its .bru file. seq is
// the request's 1-based position within its source file.
func Render(request hurl.Request, seq int) string {
	builder := &strings.Builder{}

	fmt.Fprintf(builder, "meta {\n  name: %s\n  type: http\n  seq: %d\n}\n", DisplayName(request), seq)

	bodyKind := "none"
	if request.Body != "" {
		bodyKind = "json"
	}

	fmt.Fprintf(
		builder,
		"\n%s {\n  url: %s\n  body: %s\n  auth: none\n}\n",
		strings.ToLower(request.Method),
		request.URL,
		bodyKind,
	)

	if len(request.Headers) > 0 {
		builder.WriteString("\nheaders {\n")

		for _, header := range request.Headers {
			fmt.Fprintf(builder, "  %s: %s\n", header.Key, header.Value)
		}

		builder.WriteString("}\n")
	}

	if request.Body != "" {
		builder.WriteString("\nbody:json {\n")

		// Indent by one level so the body's own closing braces never sit
		// at column zero, where Bruno would read them as the end of the
		// body:json block itself.
		for line := range strings.Lines(request.Body) {
			line = strings.TrimSuffix(line, "\n")
			if strings.TrimSpace(line) == "" {
				continue
			}

			fmt.Fprintf(builder, "  %s\n", line)
		}

		builder.WriteString("}\n")
	}

	if request.StatusCode != 0 {
		fmt.Fprintf(builder, "\nassert {\n  res.status: eq %d\n}\n", request.StatusCode)
	}

	// Captures run before assertions so an assertion may rely on a
	// variable captured from the same response.
	var script []string
	for _, capture := range request.Captures {
		script = append(script, CaptureToJS(capture))
	}

	for _, assert := range request.Asserts {
		script = append(script, AssertToJS(assert))
	}

	if len(script) > 0 {
		builder.WriteString("\nscript:post-response {\n")

		for _, line := range script {
			fmt.Fprintf(builder, "  %s\n", line)
		}

		builder.WriteString("}\n")
	}

	return builder.String()
}
