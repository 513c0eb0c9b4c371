package locid

import (
	"context"
	"strings"
)

// Entity is a framed JSON-LD document returned for a single id.loc.gov URI.
// Its "@id" member equals the normalized form of the requested URI; linked
// authority and concept nodes are embedded inline rather than left as bare
// references. The inner shape otherwise mirrors whatever vocabulary the
// service used (MADS, SKOS, BIBFRAME, etc.) and is not constrained here.
type Entity map[string]any

// EntityService retrieves single entities from the linked data service.
type EntityService interface {
	// FetchEntity retrieves the entity at uri and returns it as an embedded,
	// framed JSON-LD document. The URI is normalized to http:// before the
	// request (the service's canonical form).
	//
	// Returns EUNAVAILABLE on transport failure, a non-2xx response, or a
	// non-JSON body, and EFRAMING if the fetched graph contains no node for
	// the requested URI. Exactly one request is issued per call; there are
	// no retries.
	FetchEntity(ctx context.Context, uri string) (Entity, error)
}

// Framer reshapes a raw JSON-LD document into a tree rooted at uri, with
// linked nodes embedded inline.
type Framer interface {
	// Frame returns the framed form of doc anchored at uri.
	// Returns EFRAMING if doc contains no node with that @id.
	Frame(doc any, uri string) (Entity, error)
}

// NormalizeURI coerces an https:// URI to its http:// form. id.loc.gov
// documents http:// as the canonical scheme for entity URIs; requesting
// https:// can yield a different representation that fails framing.
func NormalizeURI(uri string) string {
	return strings.Replace(uri, "https://", "http://", 1)
}
