package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/locid"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	entity, err := deps.Entities.FetchEntity(deps.Ctx, c.URI)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locid.ErrorMessage(err))
		return err
	}

	return printEntity(deps, entity)
}

// printEntity writes an entity to stdout as indented JSON.
func printEntity(deps *Dependencies, entity locid.Entity) error {
	out, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
