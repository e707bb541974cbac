package apiversion

import (
	"context"
	"fmt"
	"net/http"

	"github.com/asecurityteam/runhttp"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var (
	defaultLogFn  LogFn  = runhttp.LoggerFromContext
	defaultStatFn StatFn = runhttp.StatFromContext
)

// RouterConfig is used to alter the behavior of the default router
// and the HTTP endpoint handlers that it manages.
type RouterConfig struct {
	// HealthCheck defines the route on which the service will respond
	// with automatic 200s. This is here to integrate with systems that
	// poll for liveliness. The default value is /healthcheck
	HealthCheck string

	// Config is the merged configuration tree. Routes are compiled from
	// its router section. It should already have passed through
	// BuildConfig so that the version prototype is chained.
	Config Config

	// Fetcher is the controller loader that will be used by the
	// runtime. There is no default for this value.
	Fetcher Fetcher

	// RouteListeners run once per request between route matching and
	// controller dispatch. The default value is a single VersionListener.
	RouteListeners []RouteListener

	// LogFn is used to extract the request logger from the request
	// context. The default value is runhttp.LoggerFromContext.
	LogFn LogFn
	// StatFn is used to extract the request stat client from the
	// request context. The default value is runhttp.StatFromContext.
	StatFn StatFn
	// URLParamFn is used to extract URL parameters from the request.
	// The default value is chi.URLParamFromCtx to match the usage of chi
	// as a mux in the default case.
	URLParamFn URLParamFn
}

func applyDefaults(conf *RouterConfig) *RouterConfig {
	if conf.HealthCheck == "" {
		conf.HealthCheck = "/healthcheck"
	}
	if conf.LogFn == nil {
		conf.LogFn = defaultLogFn
	}
	if conf.StatFn == nil {
		conf.StatFn = defaultStatFn
	}
	if conf.URLParamFn == nil {
		conf.URLParamFn = chi.URLParamFromCtx
	}
	if conf.RouteListeners == nil {
		conf.RouteListeners = []RouteListener{
			&VersionListener{LogFn: conf.LogFn, StatFn: conf.StatFn},
		}
	}
	return conf
}

// NewRouter generates a mux with every configured route bound to a
// dispatcher. This version returns a mux from the chi project as a
// convenience for cases where custom middleware or additional routes
// need to be configured.
func NewRouter(conf *RouterConfig) (*chi.Mux, error) {
	conf = applyDefaults(conf)
	routes, err := CompileRoutes(conf.Config)
	if err != nil {
		return nil, err
	}
	router := chi.NewMux()
	router.Use(middleware.Heartbeat(conf.HealthCheck))
	// chi only builds the middleware chain once a route is mounted.
	router.Get(conf.HealthCheck, healthCheck)

	fetcher := &statFetcher{
		StatFn:  conf.StatFn,
		Fetcher: &loggingFetcher{LogFn: conf.LogFn, Fetcher: conf.Fetcher},
	}
	listeners := NewRouteListeners(conf.RouteListeners...)
	for _, route := range routes {
		router.Handle(route.Pattern, &Dispatch{
			Route:      route,
			Listeners:  listeners,
			Fetcher:    fetcher,
			LogFn:      conf.LogFn,
			StatFn:     conf.StatFn,
			URLParamFn: conf.URLParamFn,
		})
	}
	return router, nil
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// RouterSettings are the operator supplied values used to build a Router.
type RouterSettings struct {
	HealthCheck string `description:"Route on which the service responds with automatic 200s."`
	ConfigFile  string `description:"YAML or JSON file holding the router and api-versioning configuration."`
}

// Name of the configuration root.
func (*RouterSettings) Name() string {
	return "router"
}

// Router is the http.Handler produced by the RouterComponent.
type Router struct {
	http.Handler
}

// RouterComponent builds a Router from settings. Fragments are merged
// before the file named by the settings, which therefore takes precedence.
type RouterComponent struct {
	Fetcher        Fetcher
	Fragments      []Config
	MergeListeners []ConfigMergeListener
	RouteListeners []RouteListener
	// LogFn and StatFn default to the runhttp context extractors.
	LogFn  LogFn
	StatFn StatFn
}

// Settings generates the default configuration.
func (*RouterComponent) Settings() *RouterSettings {
	return &RouterSettings{
		HealthCheck: "/healthcheck",
	}
}

// New loads, merges and compiles the route configuration.
func (c *RouterComponent) New(ctx context.Context, conf *RouterSettings) (*Router, error) {
	fragments := append([]Config{}, c.Fragments...)
	if conf.ConfigFile != "" {
		fileConf, err := LoadConfigFile(conf.ConfigFile)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fileConf)
	}
	listeners := c.MergeListeners
	if listeners == nil {
		listeners = []ConfigMergeListener{&PrototypeRouteListener{LogFn: c.LogFn}}
	}
	merged := BuildConfig(ctx, listeners, fragments...)
	mux, err := NewRouter(&RouterConfig{
		HealthCheck:    conf.HealthCheck,
		Config:         merged,
		Fetcher:        c.Fetcher,
		RouteListeners: c.RouteListeners,
		LogFn:          c.LogFn,
		StatFn:         c.StatFn,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compile routes: %w", err)
	}
	return &Router{Handler: mux}, nil
}
