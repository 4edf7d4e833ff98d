package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko"
)

// tomlConfig is an application configuration read from a TOML file. Nested
// tables are flattened to dotted keys, e.g.
//
//    [numlex]
//    bare-zero = true
//
// is available as key "numlex.bare-zero".
type tomlConfig map[string]interface{}

var _ schuko.Configuration = tomlConfig{}

// loadConfig reads a TOML configuration file. An empty file name results in
// the default configuration.
func loadConfig(filename string) (tomlConfig, error) {
	conf := tomlConfig{}
	if filename == "" {
		return conf, nil
	}
	var tree map[string]interface{}
	if _, err := toml.DecodeFile(filename, &tree); err != nil {
		return conf, fmt.Errorf("cannot read configuration %s: %w", filename, err)
	}
	conf.flatten("", tree)
	tracer().Debugf("loaded %d configuration keys from %s", len(conf), filename)
	return conf, nil
}

func (c tomlConfig) flatten(prefix string, tree map[string]interface{}) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]interface{}); ok {
			c.flatten(key, sub)
			continue
		}
		c[key] = v
	}
}

// InitDefaults is part of interface schuko.Configuration.
func (c tomlConfig) InitDefaults() {
	defaults := map[string]interface{}{
		"tracing":         "go",
		"tracingsyntax":   "Error",
		"numlex.scanmode": "auto",
		"numlex.kind":     "double",
	}
	for k, v := range defaults {
		if _, ok := c[k]; !ok {
			c[k] = v
		}
	}
}

// IsSet is part of interface schuko.Configuration.
func (c tomlConfig) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

// GetString is part of interface schuko.Configuration.
func (c tomlConfig) GetString(key string) string {
	v, ok := c[key]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// GetInt is part of interface schuko.Configuration.
func (c tomlConfig) GetInt(key string) int {
	switch x := c[key].(type) {
	case int64:
		return int(x)
	case int:
		return x
	case float64:
		return int(x)
	case string:
		n, _ := strconv.Atoi(x)
		return n
	}
	return 0
}

// GetBool is part of interface schuko.Configuration.
func (c tomlConfig) GetBool(key string) bool {
	switch x := c[key].(type) {
	case bool:
		return x
	case string:
		return strings.EqualFold(x, "true")
	}
	return false
}

// IsInteractive is part of interface schuko.Configuration.
func (c tomlConfig) IsInteractive() bool {
	return true
}
