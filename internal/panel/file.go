package panel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSpec is the YAML panel file layout:
//
//	judges:
//	  - name: Sophia
//	    role: Market Judge
//	  - name: Ray
//	    role: Retail Judge
//	    goal: ...
//	    backstory: ...
type fileSpec struct {
	Judges []Spec `yaml:"judges"`
}

// LoadFile reads a judge panel definition from a YAML file and builds it.
func LoadFile(path string) ([]RoleProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read panel file: %w", err)
	}

	var fs fileSpec
	if err := yaml.Unmarshal(raw, &fs); err != nil {
		return nil, fmt.Errorf("parse panel file %s: %w", path, err)
	}

	return Build(fs.Judges)
}
