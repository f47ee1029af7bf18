package prototype_test

import (
	"fmt"

	"github.com/katalvlaran/protokit/clone"
	"github.com/katalvlaran/protokit/prototype"
)

// ExampleRegistry registers a database template and derives an environment
// specific configuration from it.
func ExampleRegistry() {
	r := prototype.New()
	_ = r.Register("db", newServer())

	dev, err := r.Create("db", clone.Deep, prototype.Overrides{"host": "dev-server"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	base, _ := r.Create("db", clone.Deep, nil)

	fmt.Println(dev.(*server).Host)
	fmt.Println(base.(*server).Host)
	fmt.Println(r.Names())

	_, err = r.Create("missing", clone.Deep, nil)
	fmt.Println(err)

	// Output:
	// dev-server
	// localhost
	// [db]
	// prototype: no prototype registered with name "missing"
}
