package main

import (
	"context"
	"io"

	"github.com/fwojciec/locid"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Entities locid.EntityService
	Searches locid.SearchService
	Schemes  locid.SchemeService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log operations to stderr"`

	Get            GetCmd            `cmd:"" help:"Get an id.loc.gov entity by URI and print it as JSON-LD"`
	Search         SearchCmd         `cmd:"" help:"Search for entities in id.loc.gov"`
	Lucky          LuckyCmd          `cmd:"" help:"Print the first matching entity as JSON-LD"`
	Guess          GuessCmd          `cmd:"" help:"Print the URI of the first matching entity"`
	ConceptSchemes ConceptSchemesCmd `cmd:"" name:"concept-schemes" help:"List available concept scheme names and their URIs"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	URI string `arg:"" help:"Entity URI"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query         string   `arg:"" help:"Word or phrase to search for"`
	ConceptScheme []string `name:"concept-scheme" help:"A concept scheme to limit to (repeatable)"`
	Limit         int      `default:"20" help:"Number of records to limit results to (0 is all)"`
}

// LuckyCmd is the "lucky" subcommand.
type LuckyCmd struct {
	Query         string   `arg:"" help:"Word or phrase to search for"`
	ConceptScheme []string `name:"concept-scheme" help:"A concept scheme to limit to (repeatable)"`
}

// GuessCmd is the "guess" subcommand.
type GuessCmd struct {
	Query         string   `arg:"" help:"Word or phrase to search for"`
	ConceptScheme []string `name:"concept-scheme" help:"A concept scheme to limit to (repeatable)"`
}

// ConceptSchemesCmd is the "concept-schemes" subcommand.
type ConceptSchemesCmd struct {
	Live bool `help:"Rederive the schemes from the live search page instead of the built-in table"`
}
