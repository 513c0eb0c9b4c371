package main

import (
	"fmt"

	"github.com/fwojciec/locid"
	locidhttp "github.com/fwojciec/locid/http"
)

// firstMatch resolves the scheme names and returns the first search hit,
// or nil when the search produces nothing.
func firstMatch(deps *Dependencies, query string, schemeNames []string) (*locid.SearchResult, error) {
	uris, err := locid.ResolveSchemes(schemeNames)
	if err != nil {
		return nil, err
	}

	opts := locid.SearchOptions{
		SchemeURIs: uris,
		Limit:      1,
		PageDelay:  locidhttp.DefaultPageDelay,
	}

	for result, err := range deps.Searches.Search(deps.Ctx, query, opts) {
		if err != nil {
			return nil, err
		}
		return &result, nil
	}

	return nil, nil
}

// Run executes the lucky command.
func (c *LuckyCmd) Run(deps *Dependencies) error {
	match, err := firstMatch(deps, c.Query, c.ConceptScheme)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locid.ErrorMessage(err))
		return err
	}
	if match == nil {
		fmt.Fprintf(deps.Stdout, "Alas, there was no match found for %q\n", c.Query)
		return nil
	}

	entity, err := deps.Entities.FetchEntity(deps.Ctx, match.URI)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locid.ErrorMessage(err))
		return err
	}

	return printEntity(deps, entity)
}
