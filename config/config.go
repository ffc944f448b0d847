/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration loading for whence.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/whence/classify"
	"bennypowers.dev/whence/manifest"
	"bennypowers.dev/whence/specifier"
	"bennypowers.dev/whence/tsconfig"
)

// Config represents the whence project configuration.
type Config struct {
	// BaseDirectory is the root alias and mapping targets are also
	// interpreted against.
	BaseDirectory string `yaml:"baseDirectory" json:"baseDirectory"`

	// Alias is the bundler alias table (prefix to target directory).
	Alias map[string]string `yaml:"alias" json:"alias"`

	// Manifest is the project-relative path of package.json.
	Manifest string `yaml:"manifest" json:"manifest"`

	// TSConfig is the project-relative path of the tsconfig to read.
	TSConfig TSConfigSpec `yaml:"tsconfig" json:"tsconfig"`

	// Builtins are module names the runtime supplies in addition to Node's.
	Builtins []string `yaml:"builtins" json:"builtins"`
}

// TSConfigSpec locates a tsconfig. It can be specified as a simple string
// path or as an object.
type TSConfigSpec struct {
	// Path is the project-relative tsconfig path.
	Path string `yaml:"path" json:"path"`

	// Disabled turns the typechecker resolver off.
	Disabled bool `yaml:"disabled" json:"disabled"`
}

// UnmarshalYAML handles both string and object forms for TSConfigSpec.
func (t *TSConfigSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		t.Path = node.Value
		return nil
	}

	type rawTSConfigSpec TSConfigSpec
	return node.Decode((*rawTSConfigSpec)(t))
}

// UnmarshalJSON handles both string and object forms for TSConfigSpec.
func (t *TSConfigSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Path = s
		return nil
	}

	type rawTSConfigSpec TSConfigSpec
	return json.Unmarshal(data, (*rawTSConfigSpec)(t))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Manifest: manifest.FileName,
		TSConfig: TSConfigSpec{Path: tsconfig.FileName},
	}
}

// applyDefaults fills the file locations a loaded config left empty.
func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Manifest == "" {
		c.Manifest = defaults.Manifest
	}
	if c.TSConfig.Path == "" {
		c.TSConfig.Path = defaults.TSConfig.Path
	}
}

// BuiltinRegistry returns Node's built-ins extended with the configured ones.
func (c *Config) BuiltinRegistry() *specifier.Builtins {
	return specifier.NodeBuiltins().With(c.Builtins...)
}

// ResolveOptions returns the classifier options this config describes.
func (c *Config) ResolveOptions() classify.ResolveOptions {
	return classify.ResolveOptions{
		BaseDirectory: c.BaseDirectory,
		Alias:         c.Alias,
		Builtins:      c.BuiltinRegistry(),
	}
}
