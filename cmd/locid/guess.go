package main

import (
	"fmt"

	"github.com/fwojciec/locid"
)

// Run executes the guess command.
func (c *GuessCmd) Run(deps *Dependencies) error {
	match, err := firstMatch(deps, c.Query, c.ConceptScheme)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locid.ErrorMessage(err))
		return err
	}
	if match == nil {
		fmt.Fprintf(deps.Stdout, "Alas, there was no match found for %q\n", c.Query)
		return nil
	}

	fmt.Fprintln(deps.Stdout, match.URI)
	return nil
}
