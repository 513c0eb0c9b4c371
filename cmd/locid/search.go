package main

import (
	"fmt"

	"github.com/fwojciec/locid"
	locidhttp "github.com/fwojciec/locid/http"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	uris, err := locid.ResolveSchemes(c.ConceptScheme)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locid.ErrorMessage(err))
		return err
	}

	opts := locid.SearchOptions{
		SchemeURIs: uris,
		Limit:      c.Limit,
		PageDelay:  locidhttp.DefaultPageDelay,
	}

	for result, err := range deps.Searches.Search(deps.Ctx, c.Query, opts) {
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", locid.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s\n<%s>\n\n", result.Title, result.URI)
	}

	return nil
}
