package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest lists the named windows to extract from one physical file.
type Manifest struct {
	Entries []Entry `yaml:"entries"`
}

// Entry is one window. A missing End means the window runs to the end of the file.
type Entry struct {
	Name  string `yaml:"name"`
	Start int64  `yaml:"start"`
	End   *int64 `yaml:"end,omitempty"`
}

// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	ext := filepath.Ext(path)
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("invalid manifest file: only .yaml and .yml files are allowed")
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes a YAML manifest and checks entry names.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML manifest: %w", err)
	}

	seen := make(map[string]bool, len(m.Entries))
	for i, e := range m.Entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: missing name", i)
		}
		// names become file names under the output directory
		if e.Name != filepath.Base(e.Name) || strings.ContainsAny(e.Name, `/\`) || e.Name == "." || e.Name == ".." {
			return nil, fmt.Errorf("entry %d: invalid name %q", i, e.Name)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("entry %d: duplicate name %q", i, e.Name)
		}
		seen[e.Name] = true
	}
	return &m, nil
}
