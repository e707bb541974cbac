package apiversion

import (
	"context"
	"math"
	"sort"
	"strconv"
)

const (
	// ControllerParam is the route parameter naming the controller to
	// dispatch to.
	ControllerParam = "controller"
	// VersionListenerPriority places version resolution after route
	// matching and before the controller is fetched.
	VersionListenerPriority = -41
)

// RouteMatch is the result of a completed route match.
type RouteMatch struct {
	// Name is the full name of the matched route.
	Name string
	// Params holds route defaults overlaid with the values taken from
	// the URL.
	Params map[string]interface{}
}

// NewRouteMatch creates a match with a copy of the given parameters.
func NewRouteMatch(name string, params map[string]interface{}) *RouteMatch {
	p := make(map[string]interface{}, len(params))
	for k, v := range params {
		p[k] = v
	}
	return &RouteMatch{Name: name, Params: p}
}

// Param returns the named parameter and whether it is set.
func (m *RouteMatch) Param(name string) (interface{}, bool) {
	v, ok := m.Params[name]
	return v, ok
}

// SetParam sets the named parameter.
func (m *RouteMatch) SetParam(name string, value interface{}) {
	if m.Params == nil {
		m.Params = make(map[string]interface{})
	}
	m.Params[name] = value
}

// ResolveVersion points the controller of the match at the namespace of the
// requested version. Given version 2 and controller
// `Foo\V1\Rest\Bar\Controller` the controller becomes
// `Foo\V2\Rest\Bar\Controller`.
//
// The match is left untouched, and false returned, when there is no match,
// no usable version or controller parameter, no version segment in the
// controller, or when the segment already names the requested version.
func ResolveVersion(match *RouteMatch) (*RouteMatch, bool) {
	if match == nil {
		return match, false
	}
	raw, ok := match.Param(VersionParam)
	if !ok {
		return match, false
	}
	version, ok := parseVersion(raw)
	if !ok {
		return match, false
	}
	rawController, ok := match.Param(ControllerParam)
	if !ok {
		return match, false
	}
	controller, ok := rawController.(string)
	if !ok {
		return match, false
	}
	ns, ok := ParseVersionNamespace(controller, NamespaceSeparator)
	if !ok {
		return match, false
	}
	if ns.Version == version {
		return match, false
	}
	match.SetParam(ControllerParam, ns.WithVersion(version))
	return match, true
}

// parseVersion accepts integers, integral floats and digit strings. The
// float case covers configuration decoded as JSON numbers.
func parseVersion(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, t >= 0
	case int8:
		return int(t), t >= 0
	case int16:
		return int(t), t >= 0
	case int32:
		return int(t), t >= 0
	case int64:
		if t < 0 || t > math.MaxInt32 {
			return 0, false
		}
		return int(t), true
	case uint:
		if t > math.MaxInt32 {
			return 0, false
		}
		return int(t), true
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		if t > math.MaxInt32 {
			return 0, false
		}
		return int(t), true
	case uint64:
		if t > math.MaxInt32 {
			return 0, false
		}
		return int(t), true
	case float64:
		if t < 0 || t > math.MaxInt32 || t != math.Trunc(t) {
			return 0, false
		}
		return int(t), true
	case string:
		if !isDigits(t) {
			return 0, false
		}
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

type controllerVersionRewrite struct {
	Route   string `logevent:"route"`
	From    string `logevent:"from"`
	To      string `logevent:"to"`
	Version int    `logevent:"version"`
	Message string `logevent:"message,default=controller-version-rewrite"`
}

// VersionListener rewrites the matched controller to the namespace of the
// version extracted from the URL.
type VersionListener struct {
	// LogFn is used to extract the request logger. The default value is
	// runhttp.LoggerFromContext.
	LogFn LogFn
	// StatFn is used to extract the request stat client. The default value
	// is runhttp.StatFromContext.
	StatFn StatFn
}

// Priority returns VersionListenerPriority.
func (l *VersionListener) Priority() int {
	return VersionListenerPriority
}

// OnRoute returns the updated match when the controller was rewritten and
// nil otherwise.
func (l *VersionListener) OnRoute(ctx context.Context, match *RouteMatch) *RouteMatch {
	var from string
	if match != nil {
		from, _ = match.Params[ControllerParam].(string)
	}
	match, rewritten := ResolveVersion(match)
	if !rewritten {
		return nil
	}
	logFn, statFn := l.LogFn, l.StatFn
	if logFn == nil {
		logFn = defaultLogFn
	}
	if statFn == nil {
		statFn = defaultStatFn
	}
	to := match.Params[ControllerParam].(string)
	version, _ := parseVersion(match.Params[VersionParam])
	logFn(ctx).Debug(controllerVersionRewrite{
		Route:   match.Name,
		From:    from,
		To:      to,
		Version: version,
	})
	statFn(ctx).Count("apiversion.controller.rewrite", 1, "version:"+strconv.Itoa(version))
	return match
}

// RouteListeners is an ordered set of RouteListener. Use NewRouteListeners to
// build one.
type RouteListeners []RouteListener

// NewRouteListeners orders the listeners by descending priority. Listeners of
// equal priority keep their relative order.
func NewRouteListeners(listeners ...RouteListener) RouteListeners {
	ordered := make(RouteListeners, len(listeners))
	copy(ordered, listeners)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() > ordered[j].Priority()
	})
	return ordered
}

// Trigger notifies every listener once and returns the final match.
func (ls RouteListeners) Trigger(ctx context.Context, match *RouteMatch) *RouteMatch {
	for _, l := range ls {
		if next := l.OnRoute(ctx, match); next != nil {
			match = next
		}
	}
	return match
}
