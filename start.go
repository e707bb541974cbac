package apiversion

import (
	"context"
	"fmt"
	"strings"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
)

const (
	// BuildModeHTTP is the standard mode of running an HTTP server
	// that dispatches versioned routes to controllers.
	BuildModeHTTP = "http"
	// BuildModeHTTPMock runs the HTTP server but with mocked versions
	// of the controllers loaded.
	BuildModeHTTPMock = "http_mock"

	settingsPrefix = "apiversion"
)

var (
	// BuildMode determines the behavior of the Start method. The
	// suggested way to set it is through build variables by adding
	// `-ldflags "-X github.com/asecurityteam/apiversion.BuildMode=<value>"`
	// to `go build` or `go run` commands.
	//
	// Alternatively, the StartMode() method may be used if you prefer to pass in
	// parameters via code rather than toggling the global setting.
	BuildMode = BuildModeHTTP
)

// Start runs the HTTP API using the global BuildMode. Fragments are merged
// ahead of any configuration file named in the settings.
func Start(ctx context.Context, s settings.Source, f Fetcher, fragments ...Config) error {
	return StartMode(ctx, s, f, BuildMode, fragments...)
}

// StartMode works just like Start but allows for explicit passing of the build
// mode.
func StartMode(ctx context.Context, s settings.Source, f Fetcher, mode string, fragments ...Config) error {
	switch {
	case strings.EqualFold(mode, BuildModeHTTP):
		return StartHTTP(ctx, s, f, fragments...)
	case strings.EqualFold(mode, BuildModeHTTPMock):
		return StartHTTPMock(ctx, s, f, fragments...)
	default:
		return fmt.Errorf("unknown build mode %s", mode)
	}
}

func newHTTPRuntime(ctx context.Context, s settings.Source, f Fetcher, fragments []Config) (*runhttp.Runtime, error) {
	s = &settings.PrefixSource{Source: s, Prefix: []string{settingsPrefix}}
	routerC := &RouterComponent{
		Fetcher:   f,
		Fragments: fragments,
	}
	router := new(Router)
	if err := settings.NewComponent(ctx, s, routerC, router); err != nil {
		return nil, err
	}
	rtC := &runhttp.Component{Handler: router}
	rt := new(runhttp.Runtime)
	err := settings.NewComponent(ctx, s, rtC, rt)
	return rt, err
}

// StartHTTP runs the HTTP API.
func StartHTTP(ctx context.Context, s settings.Source, f Fetcher, fragments ...Config) error {
	rt, err := newHTTPRuntime(ctx, s, f, fragments)
	if err != nil {
		return err
	}
	return rt.Run()
}

// StartHTTPMock runs the HTTP API with mocked out controllers.
func StartHTTPMock(ctx context.Context, s settings.Source, f Fetcher, fragments ...Config) error {
	return StartHTTP(ctx, s, &MockingFetcher{Fetcher: f}, fragments...)
}
