// Package hurl implements a reader for Hurl test files.
//
// The subset of Hurl understood here is the one the conformance suite
// actually uses: request blocks made of a method and URL, headers, an
// optional JSON body, an expected status, and [Captures] and [Asserts]
// sections. Assertions are carried as raw lines, interpretation happens
// at generation time in package bruno.
//
// The parser never rejects input. Lines that don't match any known shape
// in the current state are ignored, and a block that never acquires a
// method is silently dropped. Drift in the source format is meant to
// surface as a content diff downstream, not as a parse error here.
package hurl

// Header is a single request header. Headers are kept as a slice rather
// than a map so that insertion order survives into the generated output.
type Header struct {
	Key   string
	Value string
}

// Capture is an instruction to extract the value at Path from a response
// body and store it under Name for use by later requests in the same run.
type Capture struct {
	Name string
	Path string
}

// Request is one HTTP request block parsed from a Hurl file.
type Request struct {
	// Comment is the human readable label from the comment line preceding
	// the block, empty if the block was untagged.
	Comment string

	// Method is the HTTP method, one of GET, POST, PUT, DELETE or PATCH.
	Method string

	// URL is the literal request URL, which may contain {{var}} placeholders.
	URL string

	// Headers are the request headers in source order. Setting a key twice
	// overwrites the earlier value in place.
	Headers []Header

	// Body is the raw JSON body text exactly as written, empty if the
	// request has no body. It is never parsed as JSON.
	Body string

	// StatusCode is the expected HTTP status, 0 if none was declared.
	StatusCode int

	// Captures are the [Captures] entries in source order.
	Captures []Capture

	// Asserts are the raw [Asserts] lines in source order, uninterpreted.
	Asserts []string
}

// setHeader records a header, overwriting any existing value for the same
// key while preserving its original position.
func (r *Request) setHeader(key, value string) {
	for i := range r.Headers {
		if r.Headers[i].Key == key {
			r.Headers[i].Value = value
			return
		}
	}

	r.Headers = append(r.Headers, Header{Key: key, Value: value})
}
