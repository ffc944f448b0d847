/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/whence/classify"
	"bennypowers.dev/whence/fs"
	"bennypowers.dev/whence/internal/logger"
	"bennypowers.dev/whence/manifest"
	"bennypowers.dev/whence/tsconfig"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "whence"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/whence.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem fs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		}

		cfg.applyDefaults()
		logger.Debug("loaded config %s", configPath)
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem fs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		logger.Warn("ignoring config: %v", err)
	}
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// Project is everything loaded from disk that a classification depends on.
type Project struct {
	Config   *Config
	Manifest *manifest.Manifest
	Mapping  *tsconfig.PathMapping
}

// LoadProject loads the manifest and tsconfig the config points at. Missing
// files leave the corresponding field nil.
func (c *Config) LoadProject(filesystem fs.FileSystem, rootDir string) (*Project, error) {
	manifestPath := filepath.Join(rootDir, c.Manifest)
	m, err := manifest.Load(filesystem, manifestPath)
	if err != nil {
		return nil, err
	}
	if m == nil {
		logger.Debug("no manifest at %s", manifestPath)
	}

	var mapping *tsconfig.PathMapping
	if !c.TSConfig.Disabled {
		mapping, err = tsconfig.Load(filesystem, rootDir, c.TSConfig.Path)
		if err != nil {
			return nil, err
		}
		if mapping == nil {
			logger.Debug("no tsconfig at %s", c.TSConfig.Path)
		}
	}

	return &Project{Config: c, Manifest: m, Mapping: mapping}, nil
}

// Classifier compiles the project's resolution settings.
func (p *Project) Classifier() (*classify.Classifier, error) {
	return classify.New(p.Config.ResolveOptions(), p.Manifest, p.Mapping)
}
