package chart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// LoadFromPath reads a request file (YAML or JSON) and returns the parsed Request.
// Format is detected by extension (.yaml/.yml → YAML, .json → JSON) or by content (first non-whitespace char).
func LoadFromPath(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses a request from bytes. ext is the file extension (e.g. ".json", ".yaml") for format hint; empty = detect from content.
func Load(data []byte, ext string) (*Request, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == ".yaml" {
		var r Request
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("parse request yaml: %w", err)
		}
		return &r, nil
	}
	if ext == ".json" {
		var r Request
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("parse request json: %w", err)
		}
		return &r, nil
	}
	// Detect: try JSON first (starts with {), else YAML
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var r Request
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("parse request json: %w", err)
		}
		return &r, nil
	}
	var r Request
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse request yaml: %w", err)
	}
	return &r, nil
}
