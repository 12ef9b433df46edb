// Package config loads the optional demo config file. Two formats are
// accepted, picked by extension: CUE (.cue) and YAML (.yaml, .yml).
//
//	configVersion: "1"
//	name:          "Gopher"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// File is the decoded config file.
type File struct {
	ConfigVersion string
	Name          string
	HasName       bool
}

var errUnsupportedFormat = errors.New("unsupported config format: expected .cue, .yaml or .yml")

// Load reads and validates the config file at path.
func Load(path string) (File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".cue" && ext != ".yaml" && ext != ".yml" {
		return File{}, errUnsupportedFormat
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read config: %w", err)
	}
	if ext == ".cue" {
		return parseCUE(data)
	}
	return parseYAML(data)
}

func parseCUE(data []byte) (File, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return File{}, fmt.Errorf("invalid config: %v", err)
	}

	var f File
	cv, err := requireStringField(v, "configVersion")
	if err != nil {
		return File{}, err
	}
	if err := cv.Decode(&f.ConfigVersion); err != nil {
		return File{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if err := checkConfigVersion(f.ConfigVersion); err != nil {
		return File{}, err
	}

	nv := v.LookupPath(cue.ParsePath("name"))
	if nv.Exists() {
		if nv.Kind() != cue.StringKind {
			return File{}, invalidType("name")
		}
		if err := nv.Decode(&f.Name); err != nil {
			return File{}, fmt.Errorf("invalid value for name: %v", err)
		}
		f.HasName = true
	}
	return f, nil
}

func requireStringField(v cue.Value, name string) (cue.Value, error) {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return f, fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return f, invalidType(name)
	}
	return f, nil
}

func parseYAML(data []byte) (File, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return File{}, fmt.Errorf("invalid config: %v", err)
	}

	var f File
	cv, ok := raw["configVersion"]
	if !ok {
		return File{}, errors.New("missing required field: configVersion")
	}
	if f.ConfigVersion, ok = cv.(string); !ok {
		return File{}, invalidType("configVersion")
	}
	if err := checkConfigVersion(f.ConfigVersion); err != nil {
		return File{}, err
	}

	if nv, exists := raw["name"]; exists {
		if f.Name, ok = nv.(string); !ok {
			return File{}, invalidType("name")
		}
		f.HasName = true
	}
	return f, nil
}

func invalidType(field string) error {
	return fmt.Errorf("invalid type for field: %s (expected string)", field)
}
