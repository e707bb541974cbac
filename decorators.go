package apiversion

import (
	"context"

	"github.com/asecurityteam/logevent/v2"
	"github.com/rs/xstats"
)

type loggingController struct {
	Controller
	Logger Logger
}

func (c *loggingController) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	ctx = logevent.NewContext(ctx, c.Logger.Copy())
	return c.Controller.Invoke(ctx, b)
}

// loggingFetcher wraps the controller in a decorator that injects a logger.
type loggingFetcher struct {
	LogFn   LogFn
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and adds log injection. The controller
// field is set on a copy of the request logger.
func (f *loggingFetcher) Fetch(ctx context.Context, identifier string) (Controller, error) {
	r, err := f.Fetcher.Fetch(ctx, identifier)
	if err != nil {
		return nil, err
	}
	logger := f.LogFn(ctx).Copy()
	logger.SetField("controller", identifier)
	return &loggingController{Logger: logger, Controller: r}, nil
}

type statController struct {
	Controller
	Stat Stat
}

func (c *statController) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	ctx = xstats.NewContext(ctx, c.Stat)
	return c.Controller.Invoke(ctx, b)
}

// statFetcher wraps the controller in a decorator that injects a stat client.
type statFetcher struct {
	StatFn  StatFn
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and adds stat client injection.
func (f *statFetcher) Fetch(ctx context.Context, identifier string) (Controller, error) {
	r, err := f.Fetcher.Fetch(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return &statController{Stat: f.StatFn(ctx), Controller: r}, nil
}
