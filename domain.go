package apiversion

//go:generate mockgen -destination mocks_test.go -package apiversion github.com/asecurityteam/apiversion Fetcher,Controller,ConfigListener

import (
	"context"
	"fmt"

	"github.com/asecurityteam/runhttp"
	"github.com/aws/aws-lambda-go/lambda"
)

// Logger is an alias for the chosen project logging library
// which is, currently, logevent. All references in the project
// should be to this name rather than logevent directly.
type Logger = runhttp.Logger

// LogFn extracts a logger from the context.
type LogFn = runhttp.LogFn

// Stat is an alias for the chosen project metrics library
// which is, currently, xstats. All references in the project
// should be to this name rather than xstats directly.
type Stat = runhttp.Stat

// StatFn extracts a metrics client from the context.
type StatFn = runhttp.StatFn

// Config is a raw configuration tree. Nested mappings are
// map[string]interface{} and sequences are []interface{}, which is
// the shape produced by yaml.v3 when decoding into an interface.
type Config = map[string]interface{}

// Controller is the executable target of a matched route. This extends
// the official lambda SDK concept of a Handler in order to also provide
// the underlying function signature which is usually masked when
// converting any function to a lambda.Handler.
type Controller interface {
	lambda.Handler
	Source() interface{}
}

// URLParamFn should be accepted by HTTP handlers that need
// to interface with the mux in use in order to extract request
// parameters from the URL. This defines the contract between
// any given mux and a handler so that the two do not need to
// be coupled.
type URLParamFn func(ctx context.Context, name string) string

// Fetcher is a pluggable component that enables different
// loading strategies for controllers.
type Fetcher interface {
	// Fetch uses some implementation of a loading strategy to fetch the
	// Controller with the given identifier. If a matching Controller
	// cannot be found then this component must emit a NotFoundError.
	Fetch(ctx context.Context, identifier string) (Controller, error)
}

// ConfigListener exposes the configuration being assembled to merge
// listeners. Listeners read the current tree and replace it when they
// need to alter it.
type ConfigListener interface {
	MergedConfig() Config
	SetMergedConfig(Config)
}

// ConfigMergeListener is notified once per configuration build after all
// fragments have been merged.
type ConfigMergeListener interface {
	OnMergeConfig(ctx context.Context, l ConfigListener)
}

// RouteListener is notified once per request after the route is matched
// and before the controller is fetched. A non-nil return value replaces
// the match seen by later listeners and by dispatch.
type RouteListener interface {
	OnRoute(ctx context.Context, match *RouteMatch) *RouteMatch
	// Priority orders listeners. Higher values run first.
	Priority() int
}

// NotFoundError represents a failed lookup for a resource.
type NotFoundError struct {
	// ID is the key used when looking for the resource.
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("resource (%s) not found", e.ID)
}

// RouteConfigError is emitted when the router section of the configuration
// cannot be compiled into routes.
type RouteConfigError struct {
	// Route is the full name of the offending route.
	Route string
	// Reason describes what was wrong with the definition.
	Reason string
}

func (e RouteConfigError) Error() string {
	return fmt.Sprintf("route (%s) is invalid: %s", e.Route, e.Reason)
}
