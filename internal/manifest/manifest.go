// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest reads accession list files and serializes batch reports.
// Lists come in two shapes: plain text with one accession per line, and YAML
// manifests that can carry per-entry output names and a molecule override.
package manifest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Entry is one accession to download, with an optional output base name.
type Entry struct {
	ID  string `yaml:"id"`
	Out string `yaml:"out,omitempty"`
}

// Manifest is a parsed accession list.
type Manifest struct {
	// Molecule optionally overrides the molecule kind for every entry.
	Molecule   string  `yaml:"molecule,omitempty"`
	Accessions []Entry `yaml:"accessions"`
}

// Read loads an accession list. Files ending in .yaml or .yml are parsed as
// YAML manifests; everything else is treated as plain text, one accession
// per line, with blank lines and #-comments ignored.
func Read(path string) (*Manifest, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return readYAML(path)
	}
	return readText(path)
}

func readText(path string) (*Manifest, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading accession list: %w", err)
	}
	defer fh.Close()

	m := &Manifest{}
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m.Accessions = append(m.Accessions, Entry{ID: line})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading accession list: %w", err)
	}
	if len(m.Accessions) == 0 {
		return nil, fmt.Errorf("accession list %s is empty", path)
	}
	return m, nil
}

func readYAML(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(m.Accessions) == 0 {
		return nil, fmt.Errorf("manifest %s lists no accessions", path)
	}
	for i, e := range m.Accessions {
		if e.ID == "" {
			return nil, fmt.Errorf("manifest %s: accession %d has no id", path, i+1)
		}
	}
	return &m, nil
}
