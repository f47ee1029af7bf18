// Package protokit is an in-memory toolkit for two object-identity
// mechanisms: prototype cloning and flyweight sharing.
//
// What is inside?
//
//	clone/     - the Cloneable contract, Shallow vs. Deep depth and value-tree copying
//	prototype/ - a name-keyed Registry that issues patched clones of templates
//	flyweight/ - a concurrency-safe cache holding one shared instance per key
//	config/    - map-backed configuration prototypes with YAML templates
//	document/  - a typed document prototype with an explicit clone policy
//	editor/    - a text buffer whose characters share flyweight glyphs
//
// Guarantees
//
//   - A clone is never its source; a Deep clone shares nothing with it.
//   - Registry operations never mutate a registered template.
//   - A flyweight key maps to exactly one instance until Reset.
//   - No package-level mutable state: registries and caches are values you
//     construct and pass around.
//
// Quick example:
//
//	reg := prototype.New()
//	_ = reg.Register("db", config.Database("localhost", 5432, "app", "admin", "pw"))
//	dev, _ := reg.Create("db", clone.Deep, prototype.Overrides{"host": "dev-server"})
//
//	go get github.com/katalvlaran/protokit
package protokit
