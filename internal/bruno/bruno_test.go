package bruno_test

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/realworld-conformance/hurl2bruno/internal/bruno"
	"github.com/realworld-conformance/hurl2bruno/internal/hurl"
	"go.followtheprocess.codes/snapshot"
	"go.followtheprocess.codes/test"
	"go.followtheprocess.codes/txtar"
	"go.uber.org/goleak"
)

var (
	update = flag.Bool("update", false, "Update snapshots and the expected .bru files in the txtar archives")
	clean  = flag.Bool("clean", false, "Clean all snapshots and recreate")
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		in   string // Input label
		want string // Expected slug
	}{
		{name: "simple", in: "Register a new user", want: "register-a-new-user"},
		{name: "already slug", in: "login", want: "login"},
		{name: "punctuation", in: "Can't favorite!", want: "can-t-favorite"},
		{name: "template placeholder", in: "GET {{username}}", want: "get-username"},
		{name: "leading and trailing junk", in: "  ??weird??  ", want: "weird"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, bruno.Slugify(tt.in), tt.want)
		})
	}
}

func TestDisplayName(t *testing.T) {
	tagged := hurl.Request{Comment: "Register a new user", Method: "POST", URL: "{{host}}/api/users"}
	test.Equal(t, bruno.DisplayName(tagged), "Register a new user")

	untagged := hurl.Request{Method: "POST", URL: "{{host}}/articles/{{slug}}/comments"}
	test.Equal(t, bruno.DisplayName(untagged), "POST comments")

	withQuery := hurl.Request{Method: "GET", URL: "{{host}}/api/articles?limit=10"}
	test.Equal(t, bruno.DisplayName(withQuery), "GET articles")
}

func TestFileName(t *testing.T) {
	tagged := hurl.Request{Comment: "Register a new user", Method: "POST", URL: "{{host}}/api/users"}
	test.Equal(t, bruno.FileName(tagged, 1), "01-register-a-new-user.bru")

	untagged := hurl.Request{Method: "POST", URL: "{{host}}/articles/{{slug}}/comments"}
	test.Equal(t, bruno.FileName(untagged, 12), "12-post-comments.bru")
}

func TestFolderName(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		in   string // Source file name
		want string // Expected folder name
	}{
		{name: "underscores", in: "auth_register.hurl", want: "auth-register"},
		{name: "plain", in: "tags.hurl", want: "tags"},
		{name: "with directory", in: "api/hurl/article_comments.hurl", want: "article-comments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, bruno.FolderName(tt.in), tt.want)
		})
	}
}

// TestRender parses the src.hurl in each testdata archive and compares
// every rendered request against the expected .bru file of the same name
// stored alongside it in the archive.
func TestRender(t *testing.T) {
	pattern := filepath.Join("testdata", "render", "*.txtar")
	files, err := filepath.Glob(pattern)
	test.Ok(t, err)

	for _, file := range files {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			archive, err := txtar.ParseFile(file)
			test.Ok(t, err)

			src, ok := archive.Read("src.hurl")
			test.True(t, ok, test.Context("%s missing src.hurl", file))

			requests := hurl.Parse([]byte(src))
			test.True(t, len(requests) > 0, test.Context("%s produced no requests", file))

			for i, request := range requests {
				seq := i + 1
				got := bruno.Render(request, seq)
				bruName := bruno.FileName(request, seq)

				if *update {
					test.Ok(t, archive.Write(bruName, got))
					continue
				}

				want, ok := archive.Read(bruName)
				test.True(t, ok, test.Context("%s missing expected file %s", file, bruName))

				test.Diff(t, got, want)
			}

			if *update {
				test.Ok(t, txtar.DumpFile(file, archive))
			}
		})
	}
}

func TestScaffolding(t *testing.T) {
	files := bruno.Scaffolding("conduit-conformance", "http://localhost:3000")

	test.Equal(t, len(files), 3)

	descriptor, ok := files[bruno.DescriptorFile]
	test.True(t, ok, test.Context("missing %s", bruno.DescriptorFile))
	test.True(t, strings.Contains(descriptor, `"name": "conduit-conformance"`), test.Context("descriptor missing name"))
	test.True(t, strings.Contains(descriptor, `"type": "collection"`), test.Context("descriptor missing type"))

	collection, ok := files[bruno.CollectionFile]
	test.True(t, ok, test.Context("missing %s", bruno.CollectionFile))
	test.True(t, strings.Contains(collection, "script:pre-request"), test.Context("collection missing pre-request script"))
	test.True(t, strings.Contains(collection, `bru.getVar("uniqueid")`), test.Context("seeding must be idempotent"))

	environment, ok := files[bruno.EnvironmentFile]
	test.True(t, ok, test.Context("missing %s", bruno.EnvironmentFile))
	test.Diff(t, environment, "vars {\n  host: http://localhost:3000\n}\n")

	// Scaffolding depends only on its inputs, two calls must agree
	again := bruno.Scaffolding("conduit-conformance", "http://localhost:3000")
	for name, content := range files {
		test.Diff(t, again[name], content)
	}
}

// TestSnapshotFullFile renders every request in the benchmark source and
// snapshots the whole thing, a quick regression net over the serializer
// as a whole.
func TestSnapshotFullFile(t *testing.T) {
	defer goleak.VerifyNone(t)

	snap := snapshot.New(
		t,
		snapshot.Update(*update),
		snapshot.Clean(*clean),
		snapshot.Color(os.Getenv("CI") == ""),
	)

	src, err := os.ReadFile(filepath.Join("testdata", "bench.hurl"))
	test.Ok(t, err)

	combined := &strings.Builder{}
	for i, request := range hurl.Parse(src) {
		seq := i + 1
		fmt.Fprintf(combined, "== %s ==\n", bruno.FileName(request, seq))
		combined.WriteString(bruno.Render(request, seq))
		combined.WriteString("\n")
	}

	snap.Snap(combined.String())
}

func BenchmarkRender(b *testing.B) {
	src, err := os.ReadFile(filepath.Join("testdata", "bench.hurl"))
	test.Ok(b, err)

	requests := hurl.Parse(src)

	for b.Loop() {
		for i, request := range requests {
			_ = bruno.Render(request, i+1)
		}
	}
}

func FuzzRenderNeverPanics(f *testing.F) {
	f.Add("# c\nGET {{host}}/api/tags\nHTTP 200\n[Asserts]\njsonpath \"$.tags\" isCollection\n")
	f.Add("POST {{host}}/x\n{\n \"a\": {\n } }\n")

	f.Fuzz(func(t *testing.T, src string) {
		for i, request := range hurl.Parse([]byte(src)) {
			out := bruno.Render(request, i+1)
			if out == "" {
				t.Errorf("Render returned empty output for %q", fmt.Sprintf("%+v", request))
			}
		}
	})
}
