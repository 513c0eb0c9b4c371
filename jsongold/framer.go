// Package jsongold provides a locid.Framer backed by the json-gold
// JSON-LD processor.
package jsongold

import (
	"github.com/fwojciec/locid"
	"github.com/piprate/json-gold/ld"
)

// Ensure Framer implements locid.Framer at compile time.
var _ locid.Framer = (*Framer)(nil)

// framingContext abbreviates the vocabularies id.loc.gov entities use, so
// the framed output carries prefixed keys ("skos:prefLabel") instead of
// full IRIs.
var framingContext = map[string]any{
	"mads":        "http://www.loc.gov/mads/rdf/v1#",
	"skos":        "http://www.w3.org/2004/02/skos/core#",
	"skosxl":      "http://www.w3.org/2008/05/skos-xl#",
	"recordinfo":  "http://id.loc.gov/ontologies/RecordInfo#",
	"identifiers": "http://id.loc.gov/vocabulary/identifiers/",
	"bflc":        "http://id.loc.gov/ontologies/bflc/",
	"iso6392":     "http://id.loc.gov/vocabulary/iso639-2/",
	"changeset":   "http://purl.org/vocab/changeset/schema#",
	"bibframe":    "http://id.loc.gov/ontologies/bibframe/",
}

// Framer reshapes raw JSON-LD graphs into trees rooted at a requested URI.
type Framer struct {
	proc *ld.JsonLdProcessor
	opts *ld.JsonLdOptions
}

// NewFramer creates a new Framer.
func NewFramer() *Framer {
	opts := ld.NewJsonLdOptions("")
	opts.ProcessingMode = ld.JsonLd_1_1
	// Return the root node directly rather than wrapped in @graph.
	opts.OmitGraph = true

	return &Framer{
		proc: ld.NewJsonLdProcessor(),
		opts: opts,
	}
}

// Frame anchors doc at uri and embeds every node reachable by reference
// from the root, so linked SKOS Concepts and MADS Authorities appear
// inline instead of as bare @id references.
//
// Returns EFRAMING if the graph contains no node for uri.
func (f *Framer) Frame(doc any, uri string) (locid.Entity, error) {
	frame := map[string]any{
		"@context": framingContext,
		"@id":      uri,
		"@embed":   "@always",
	}

	framed, err := f.proc.Frame(doc, frame, f.opts)
	if err != nil {
		return nil, locid.Errorf(locid.EFRAMING, "framing %s failed: %v", uri, err)
	}

	if _, ok := framed["@id"].(string); !ok {
		return nil, locid.Errorf(locid.EFRAMING, "no node for %s in fetched document", uri)
	}

	return locid.Entity(framed), nil
}
