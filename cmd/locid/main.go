package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/locid"
	locidhttp "github.com/fwojciec/locid/http"
	"github.com/fwojciec/locid/jsongold"
	locidslog "github.com/fwojciec/locid/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service overrides for end-to-end testing. When nil, Run wires the
	// live id.loc.gov implementations.
	Entities locid.EntityService
	Searches locid.SearchService
	Schemes  locid.SchemeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("locid"),
		kong.Description("Query the Library of Congress Linked Data Service (id.loc.gov)."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'locid --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Entities: m.Entities,
		Searches: m.Searches,
		Schemes:  m.Schemes,
	}

	if deps.Entities == nil {
		deps.Entities = locidhttp.NewEntityService(jsongold.NewFramer())
	}
	if deps.Searches == nil {
		deps.Searches = locidhttp.NewSearchService()
	}
	if deps.Schemes == nil {
		deps.Schemes = locidhttp.NewSchemeService()
	}

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Entities = locidslog.NewLoggingEntityService(deps.Entities, logger)
		deps.Searches = locidslog.NewLoggingSearchService(deps.Searches, logger)
		deps.Schemes = locidslog.NewLoggingSchemeService(deps.Schemes, logger)
	}

	return kongCtx.Run(deps)
}
