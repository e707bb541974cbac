package apiversion

import (
	"context"
	"strings"
)

const (
	// VersioningKey is the top level configuration section that lists the
	// routes to version.
	VersioningKey = "api-versioning"
	// URIKey is the key, within the versioning section, of the sequence of
	// route names that receive the version segment.
	URIKey = "uri"
	// RouterKey is the top level router configuration section.
	RouterKey = "router"
	// RoutesKey holds the named route definitions within the router section.
	RoutesKey = "routes"
	// PrototypesKey holds the named route prototypes within the router section.
	PrototypesKey = "prototypes"
	// ChainRoutesKey is the per-route sequence of prototype names.
	ChainRoutesKey = "chain_routes"

	// VersionPrototypeName is the reserved name under which the version
	// segment is registered as a prototype. A user prototype of the same
	// name is overwritten.
	VersionPrototypeName = "api_ver_version"
	// VersionParam is the route parameter that carries the requested version.
	VersionParam = "version"
)

// VersionPrototype returns the segment definition chained onto versioned
// routes. Each call returns a fresh tree so the shared definition can never
// be altered by a caller.
func VersionPrototype() map[string]interface{} {
	return map[string]interface{}{
		"type": "segment",
		"options": map[string]interface{}{
			"route": "/v:version",
			"constraints": map[string]interface{}{
				VersionParam: `\d+`,
			},
			"defaults": map[string]interface{}{
				VersionParam: 1,
			},
		},
	}
}

type skipReason string

const (
	skipNoVersioning      skipReason = "versioning section missing"
	skipNoRouter          skipReason = "router section missing"
	skipNoURIs            skipReason = "no versioned routes listed"
	skipInvalidPrototypes skipReason = "router prototypes are not a mapping"
)

// mergeResult is either applied, with the new tree and the routes that were
// chained, or skipped with the reason.
type mergeResult struct {
	applied bool
	reason  skipReason
	config  Config
	chained []string
}

func skipped(conf Config, reason skipReason) mergeResult {
	return mergeResult{reason: reason, config: conf}
}

// InjectVersionPrototype registers the version prototype in the router
// configuration and appends it to the chain_routes of every route listed in
// the versioning section. When any required section is missing the input is
// returned unchanged. The input tree is never modified.
//
// A route whose chain_routes already names the version prototype is counted
// as chained but not appended to again.
func InjectVersionPrototype(conf Config) Config {
	return mergeVersionPrototype(conf).config
}

func mergeVersionPrototype(conf Config) mergeResult {
	versioning, ok := conf[VersioningKey].(map[string]interface{})
	if !ok {
		return skipped(conf, skipNoVersioning)
	}
	if _, ok := conf[RouterKey].(map[string]interface{}); !ok {
		return skipped(conf, skipNoRouter)
	}
	uris := sequence(versioning[URIKey])
	if len(uris) == 0 {
		return skipped(conf, skipNoURIs)
	}

	out := cloneConfig(conf)
	router := out[RouterKey].(map[string]interface{})

	var prototypes map[string]interface{}
	switch p := router[PrototypesKey].(type) {
	case nil:
		prototypes = map[string]interface{}{}
	case map[string]interface{}:
		prototypes = p
	default:
		return skipped(conf, skipInvalidPrototypes)
	}
	prototypes[VersionPrototypeName] = VersionPrototype()
	router[PrototypesKey] = prototypes

	routes, _ := router[RoutesKey].(map[string]interface{})
	var chained []string
	for _, name := range NormalizeRouteNames(uris) {
		route, ok := routes[name].(map[string]interface{})
		if !ok {
			continue
		}
		if chainsVersion(route[ChainRoutesKey]) {
			chained = append(chained, name)
			continue
		}
		switch chain := route[ChainRoutesKey].(type) {
		case nil:
			route[ChainRoutesKey] = []interface{}{VersionPrototypeName}
		case []interface{}:
			route[ChainRoutesKey] = append(chain, VersionPrototypeName)
		case []string:
			route[ChainRoutesKey] = append(chain, VersionPrototypeName)
		default:
			continue
		}
		chained = append(chained, name)
	}
	return mergeResult{applied: true, config: out, chained: chained}
}

func chainsVersion(chain interface{}) bool {
	for _, entry := range sequence(chain) {
		if entry == VersionPrototypeName {
			return true
		}
	}
	return false
}

// NormalizeRouteNames reduces a list of route names or sub-paths to the
// unique top level route names, in first-seen order. For an entry such as
// `status/list` only `status` is kept. Entries that are not strings are
// ignored.
func NormalizeRouteNames(names []interface{}) []string {
	filtered := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, entry := range names {
		name, ok := entry.(string)
		if !ok {
			continue
		}
		if i := strings.Index(name, "/"); i >= 0 {
			name = name[:i]
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		filtered = append(filtered, name)
	}
	return filtered
}

// sequence returns v as a sequence, or nil when it is not one.
func sequence(v interface{}) []interface{} {
	switch s := v.(type) {
	case []interface{}:
		return s
	case []string:
		return toInterfaces(s)
	default:
		return nil
	}
}

type prototypeSkipped struct {
	Reason  string `logevent:"reason"`
	Message string `logevent:"message,default=version-prototype-skipped"`
}

type prototypeInjected struct {
	Routes  string `logevent:"routes"`
	Message string `logevent:"message,default=version-prototype-injected"`
}

// PrototypeRouteListener injects the version prototype when the
// configuration merge completes.
type PrototypeRouteListener struct {
	// LogFn is used to extract the logger from the merge context. The
	// default value is runhttp.LoggerFromContext.
	LogFn LogFn
}

// OnMergeConfig reads the merged configuration and, if versioning applies,
// replaces it with the tree that carries the version prototype.
func (l *PrototypeRouteListener) OnMergeConfig(ctx context.Context, cl ConfigListener) {
	logFn := l.LogFn
	if logFn == nil {
		logFn = defaultLogFn
	}
	res := mergeVersionPrototype(cl.MergedConfig())
	if !res.applied {
		logFn(ctx).Debug(prototypeSkipped{Reason: string(res.reason)})
		return
	}
	logFn(ctx).Info(prototypeInjected{Routes: strings.Join(res.chained, ",")})
	cl.SetMergedConfig(res.config)
}
