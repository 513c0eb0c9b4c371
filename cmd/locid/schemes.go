package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/fwojciec/locid"
)

// Run executes the concept-schemes command.
func (c *ConceptSchemesCmd) Run(deps *Dependencies) error {
	schemes := locid.ConceptSchemes()
	if c.Live {
		discovered, err := deps.Schemes.DiscoverSchemes(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", locid.ErrorMessage(err))
			return err
		}
		schemes = discovered
	}

	for _, name := range slices.Sorted(maps.Keys(schemes)) {
		fmt.Fprintf(deps.Stdout, "%s: <%s>\n", name, schemes[name])
	}

	return nil
}
