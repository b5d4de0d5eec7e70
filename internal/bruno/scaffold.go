package bruno

import "fmt"

// Scaffolding file names, relative to the collection root.
const (
	DescriptorFile  = "bruno.json"
	CollectionFile  = "collection.bru"
	EnvironmentFile = "environments/Local.bru"
)

// Scaffolding returns the three shared collection files keyed by their
// path relative to the collection root.
//
// These depend only on the collection name and default host, never on the
// parsed requests, and are byte-identical from one regeneration to the
// next so that check mode can diff them like any other file.
func Scaffolding(collection, host string) map[string]string {
	return map[string]string{
		DescriptorFile:  descriptor(collection),
		CollectionFile:  collectionScript(),
		EnvironmentFile: environment(host),
	}
}

// descriptor returns the bruno.json collection descriptor.
//
// Rendered as a literal rather than via encoding/json so the key order
// and indentation are stable across Go versions.
func descriptor(collection string) string {
	return fmt.Sprintf(`{
  "version": "1",
  "name": %q,
  "type": "collection",
  "ignore": ["node_modules", ".git"]
}
`, collection)
}

// collectionScript returns the collection-level pre-request script.
//
// Every request in a run shares one execution-scoped unique id, seeded
// from the current time plus random characters the first time any request
// runs and left alone afterwards. Hurl runs get the same variable from
// the shell wrapper, so generated data never collides across runs.
func collectionScript() string {
	return `script:pre-request {
  if (!bru.getVar("uniqueid")) {
    bru.setVar("uniqueid", Date.now().toString(36) + Math.random().toString(36).substring(2, 8));
  }
}
`
}

// environment returns the Local environment declaring the default host.
func environment(host string) string {
	return fmt.Sprintf(`vars {
  host: %s
}
`, host)
}
