package apiversion

import (
	"context"
)

// StaticFetcher is an implementation of the Fetcher that maintains a static
// mapping of controller identifiers to Controller instances. Identifiers are
// expected to carry their version namespace, for example
// `Widgets\V2\Rest\Widget\Controller`, so that every version of a resource
// is registered under its own key.
//
// Updates to, additions of, and removals of Controllers must be accomplished
// by generating a new build and redeploying the runtime. There is no
// "live update" feature.
type StaticFetcher struct {
	// Controllers is the underlying static map of identifiers to executable
	// controllers.
	Controllers map[string]Controller
}

// Fetch resolves the identifier using the internal mapping.
func (f *StaticFetcher) Fetch(ctx context.Context, identifier string) (Controller, error) {
	c, ok := f.Controllers[identifier]
	if !ok {
		return nil, NotFoundError{ID: identifier}
	}
	return c, nil
}
