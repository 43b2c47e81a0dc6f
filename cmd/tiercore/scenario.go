package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the YAML input for the check command.
//
//	win:
//	  - [0, -1, 0.1]
//	  - [1, 0, -1]
//	  - [-0.1, 1, 0]
//	tiers:
//	  - [0, 1]
//	  - [2]
//
// win is the n×n pairwise utility matrix; tiers lists agent indices from
// the most favored position down. Structural validation (square matrix,
// exact partition) happens inside the stability checker.
type Scenario struct {
	Win   [][]float64 `yaml:"win"`
	Tiers [][]int     `yaml:"tiers"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	return &s, nil
}
