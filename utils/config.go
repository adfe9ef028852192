package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Config holds training configuration
type Config struct {
	Architecture []int
	DataPath     string
	Iterations   int
	Alpha        float64
	Step         int
	Verbose      bool
	GraphPath    string
	Seed         int64
	Normalize    bool
}

// ParseArchitecture parses a space or comma separated list of layer sizes
func ParseArchitecture(archStr string) ([]int, error) {
	archParts := strings.FieldsFunc(archStr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	arch := make([]int, len(archParts))
	for i, s := range archParts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i+1, err)
		}
		arch[i] = n
	}
	return arch, nil
}

// ValidateConfig validates training configuration
func ValidateConfig(config *Config) error {
	if len(config.Architecture) == 0 {
		return fmt.Errorf("architecture must have at least one layer")
	}
	for _, n := range config.Architecture {
		if n < 1 {
			return fmt.Errorf("layers must be a list of positive integers")
		}
	}
	if config.Architecture[len(config.Architecture)-1] != 1 {
		return fmt.Errorf("output layer must have exactly one node for binary classification")
	}

	if config.Iterations <= 0 {
		return fmt.Errorf("iterations must be a positive integer")
	}

	if config.Alpha <= 0 {
		return fmt.Errorf("alpha must be positive")
	}

	if config.Verbose || config.GraphPath != "" {
		if config.Step <= 0 || config.Step > config.Iterations {
			return fmt.Errorf("step must be positive and <= iterations")
		}
	}

	return nil
}
