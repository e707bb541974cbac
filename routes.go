package apiversion

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	routeTypeSegment = "segment"
	routeTypeLiteral = "literal"

	childRoutesKey  = "child_routes"
	mayTerminateKey = "may_terminate"
)

// CompiledRoute is one chi pattern derived from a named route definition. A
// single definition produces several CompiledRoutes when it has optional
// parts or chained prototypes.
type CompiledRoute struct {
	// Name is the full route name. Child routes are named parent/child.
	Name string
	// Pattern is the chi routing pattern.
	Pattern string
	// Params are the names of the URL parameters present in Pattern.
	Params []string
	// Defaults are the parameter values applied before URL parameters.
	Defaults map[string]interface{}
}

// variant is a partially built route: the pattern so far and the URL
// parameters it captures.
type variant struct {
	pattern string
	params  []string
}

// CompileRoutes converts the router section of the configuration into chi
// patterns. Route names are processed in sorted order so the output is
// stable. A configuration without a router section compiles to no routes.
//
// Routes chained with prototypes are served twice: once with every prototype
// pattern prepended, in chain order, and once without them. The latter
// carries the prototype defaults so that, for example, /widgets reports the
// default version while /v2/widgets reports version 2.
func CompileRoutes(conf Config) ([]CompiledRoute, error) {
	router, ok := conf[RouterKey].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	routes, _ := router[RoutesKey].(map[string]interface{})
	prototypes, _ := router[PrototypesKey].(map[string]interface{})
	c := &routeCompiler{prototypes: prototypes}
	for _, name := range sortedKeys(routes) {
		if err := c.compile(name, routes[name], []variant{{}}, nil); err != nil {
			return nil, err
		}
	}
	return c.compiled, nil
}

type routeCompiler struct {
	prototypes map[string]interface{}
	compiled   []CompiledRoute
}

func (c *routeCompiler) compile(name string, raw interface{}, parents []variant, parentDefaults map[string]interface{}) error {
	def, ok := raw.(map[string]interface{})
	if !ok {
		return RouteConfigError{Route: name, Reason: "definition is not a mapping"}
	}
	own, defaults, err := parseDefinition(name, def)
	if err != nil {
		return err
	}
	defaults = mergeDefaults(parentDefaults, defaults)

	chained, chainDefaults, err := c.chain(name, def[ChainRoutesKey])
	if err != nil {
		return err
	}

	type group struct {
		variants []variant
		defaults map[string]interface{}
	}
	groups := []group{{variants: joinVariants(parents, own), defaults: defaults}}
	if chained != nil {
		groups = append(groups, group{
			variants: joinVariants(joinVariants(chained, parents), own),
			defaults: defaults,
		})
		// the unprefixed form still reports the prototype defaults
		groups[0].defaults = mergeDefaults(defaults, chainDefaults)
	}

	children, hasChildren := def[childRoutesKey].(map[string]interface{})
	terminate, _ := def[mayTerminateKey].(bool)
	for _, g := range groups {
		if !hasChildren || terminate {
			if err := c.emit(name, g.variants, g.defaults); err != nil {
				return err
			}
		}
		for _, child := range sortedKeys(children) {
			if err := c.compile(name+"/"+child, children[child], g.variants, g.defaults); err != nil {
				return err
			}
		}
	}
	return nil
}

// chain compiles the prototypes named in chain_routes into prefix variants.
// It returns nil variants when the route has no chain.
func (c *routeCompiler) chain(name string, raw interface{}) ([]variant, map[string]interface{}, error) {
	if raw == nil {
		return nil, nil, nil
	}
	names := sequence(raw)
	if names == nil {
		return nil, nil, RouteConfigError{Route: name, Reason: "chain_routes is not a sequence"}
	}
	if len(names) == 0 {
		return nil, nil, nil
	}
	prefixes := []variant{{}}
	var defaults map[string]interface{}
	seen := make(map[string]bool, len(names))
	for _, entry := range names {
		protoName, ok := entry.(string)
		if !ok {
			return nil, nil, RouteConfigError{Route: name, Reason: "chain_routes entries must be strings"}
		}
		if seen[protoName] {
			return nil, nil, RouteConfigError{Route: name, Reason: fmt.Sprintf("prototype %q is chained more than once", protoName)}
		}
		seen[protoName] = true
		raw, ok := c.prototypes[protoName]
		if !ok {
			return nil, nil, RouteConfigError{Route: name, Reason: fmt.Sprintf("unknown prototype %q", protoName)}
		}
		proto, ok := raw.(map[string]interface{})
		if !ok {
			return nil, nil, RouteConfigError{Route: name, Reason: fmt.Sprintf("prototype %q is not a mapping", protoName)}
		}
		variants, protoDefaults, err := parseDefinition(name, proto)
		if err != nil {
			return nil, nil, err
		}
		prefixes = joinVariants(prefixes, variants)
		defaults = mergeDefaults(defaults, protoDefaults)
	}
	return prefixes, defaults, nil
}

func (c *routeCompiler) emit(name string, variants []variant, defaults map[string]interface{}) error {
	seen := make(map[string]bool, len(variants))
	for _, v := range variants {
		pattern := v.pattern
		if pattern == "" {
			pattern = "/"
		}
		if !strings.HasPrefix(pattern, "/") {
			return RouteConfigError{Route: name, Reason: fmt.Sprintf("pattern %q must begin with /", pattern)}
		}
		if seen[pattern] {
			continue
		}
		seen[pattern] = true
		if param, ok := duplicateParam(v.params); ok {
			return RouteConfigError{Route: name, Reason: fmt.Sprintf("pattern %q repeats parameter %q", pattern, param)}
		}
		c.compiled = append(c.compiled, CompiledRoute{
			Name:     name,
			Pattern:  pattern,
			Params:   v.params,
			Defaults: defaults,
		})
	}
	return nil
}

func duplicateParam(params []string) (string, bool) {
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if seen[p] {
			return p, true
		}
		seen[p] = true
	}
	return "", false
}

// parseDefinition reads the type and options of a route or prototype
// definition and returns its pattern variants and defaults.
func parseDefinition(name string, def map[string]interface{}) ([]variant, map[string]interface{}, error) {
	routeType := routeTypeSegment
	if t, ok := def["type"]; ok {
		s, ok := t.(string)
		if !ok {
			return nil, nil, RouteConfigError{Route: name, Reason: "type is not a string"}
		}
		routeType = strings.ToLower(s)
	}
	options, _ := def["options"].(map[string]interface{})
	route, _ := options["route"].(string)
	if route == "" {
		return nil, nil, RouteConfigError{Route: name, Reason: "options.route is required"}
	}
	defaults, _ := options["defaults"].(map[string]interface{})

	switch routeType {
	case routeTypeLiteral:
		return []variant{{pattern: route}}, defaults, nil
	case routeTypeSegment:
		constraints, err := parseConstraints(name, options["constraints"])
		if err != nil {
			return nil, nil, err
		}
		variants, err := expandSegment(name, route, constraints)
		if err != nil {
			return nil, nil, err
		}
		return variants, defaults, nil
	default:
		return nil, nil, RouteConfigError{Route: name, Reason: fmt.Sprintf("unsupported route type %q", routeType)}
	}
}

func parseConstraints(name string, raw interface{}) (map[string]string, error) {
	m, _ := raw.(map[string]interface{})
	constraints := make(map[string]string, len(m))
	for param, v := range m {
		expr, ok := v.(string)
		if !ok {
			return nil, RouteConfigError{Route: name, Reason: fmt.Sprintf("constraint for %q is not a string", param)}
		}
		if _, err := regexp.Compile(expr); err != nil {
			return nil, RouteConfigError{Route: name, Reason: fmt.Sprintf("constraint for %q: %s", param, err.Error())}
		}
		constraints[param] = expr
	}
	return constraints, nil
}

// expandSegment converts segment syntax, where :name is a parameter and
// [...] an optional part, into every chi pattern it can match.
func expandSegment(name string, route string, constraints map[string]string) ([]variant, error) {
	variants, rest, err := expandUntil(name, route, constraints, false)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, RouteConfigError{Route: name, Reason: "unbalanced ] in route"}
	}
	return variants, nil
}

// expandUntil consumes route up to the closing bracket of the current
// optional group, when inGroup is set, or to the end of the string.
func expandUntil(name string, route string, constraints map[string]string, inGroup bool) ([]variant, string, error) {
	out := []variant{{}}
	var literal strings.Builder
	flush := func() {
		if literal.Len() == 0 {
			return
		}
		out = joinVariants(out, []variant{{pattern: literal.String()}})
		literal.Reset()
	}
	for len(route) > 0 {
		ch := route[0]
		switch {
		case ch == '[':
			flush()
			inner, rest, err := expandUntil(name, route[1:], constraints, true)
			if err != nil {
				return nil, "", err
			}
			out = append(out, joinVariants(out, inner)...)
			route = rest
		case ch == ']':
			if !inGroup {
				return out, route, nil
			}
			flush()
			return out, route[1:], nil
		case ch == ':':
			flush()
			end := 1
			for end < len(route) && isParamChar(route[end]) {
				end++
			}
			param := route[1:end]
			if param == "" {
				return nil, "", RouteConfigError{Route: name, Reason: "empty parameter name"}
			}
			pattern := "{" + param + "}"
			if expr, ok := constraints[param]; ok {
				pattern = "{" + param + ":" + expr + "}"
			}
			out = joinVariants(out, []variant{{pattern: pattern, params: []string{param}}})
			route = route[end:]
		default:
			literal.WriteByte(ch)
			route = route[1:]
		}
	}
	if inGroup {
		return nil, "", RouteConfigError{Route: name, Reason: "unbalanced [ in route"}
	}
	flush()
	return out, "", nil
}

func isParamChar(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// joinVariants returns every concatenation of a prefix with a suffix.
func joinVariants(prefixes []variant, suffixes []variant) []variant {
	out := make([]variant, 0, len(prefixes)*len(suffixes))
	for _, p := range prefixes {
		for _, s := range suffixes {
			params := make([]string, 0, len(p.params)+len(s.params))
			params = append(params, p.params...)
			params = append(params, s.params...)
			out = append(out, variant{pattern: p.pattern + s.pattern, params: params})
		}
	}
	return out
}

// mergeDefaults returns a new map with the values of next overriding base.
func mergeDefaults(base map[string]interface{}, next map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(next))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range next {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
