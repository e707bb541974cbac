package apiversion

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfigFile decodes a YAML (or JSON) document into a configuration tree.
// An empty document produces an empty, non-nil tree.
func LoadConfigFile(path string) (Config, error) {
	// #nosec G304 -- the path comes from operator supplied settings
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	conf := Config{}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return conf, nil
}

// MergeConfigs deep merges the fragments from left to right. Mappings are
// merged key by key, sequences are concatenated, and any other value is
// replaced by the later fragment. None of the fragments are modified.
func MergeConfigs(fragments ...Config) Config {
	merged := Config{}
	for _, fragment := range fragments {
		for k, v := range fragment {
			merged[k] = mergeValue(merged[k], v)
		}
	}
	return merged
}

func mergeValue(current interface{}, next interface{}) interface{} {
	switch n := next.(type) {
	case map[string]interface{}:
		c, ok := current.(map[string]interface{})
		if !ok {
			return cloneValue(n)
		}
		for k, v := range n {
			c[k] = mergeValue(c[k], v)
		}
		return c
	case []interface{}, []string:
		tail := sequence(cloneValue(n))
		if c := sequence(current); c != nil {
			return append(c, tail...)
		}
		return tail
	default:
		return next
	}
}

// cloneConfig returns a deep copy of the tree. Values that are not mappings
// or sequences are shared, which is safe since they are immutable scalars.
func cloneConfig(conf Config) Config {
	if conf == nil {
		return nil
	}
	return cloneValue(conf).(map[string]interface{})
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	default:
		return v
	}
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

// MergedConfig is the ConfigListener handed to merge listeners while a
// configuration is being built.
type MergedConfig struct {
	config Config
}

// NewMergedConfig deep merges the given fragments into a new MergedConfig.
func NewMergedConfig(fragments ...Config) *MergedConfig {
	return &MergedConfig{config: MergeConfigs(fragments...)}
}

// MergedConfig returns the current tree.
func (m *MergedConfig) MergedConfig() Config {
	return m.config
}

// SetMergedConfig replaces the current tree.
func (m *MergedConfig) SetMergedConfig(conf Config) {
	m.config = conf
}

// BuildConfig merges the fragments and then notifies each listener exactly
// once, in order. The resulting tree is what the router should be compiled
// from.
func BuildConfig(ctx context.Context, listeners []ConfigMergeListener, fragments ...Config) Config {
	merged := NewMergedConfig(fragments...)
	for _, l := range listeners {
		l.OnMergeConfig(ctx, merged)
	}
	return merged.MergedConfig()
}
