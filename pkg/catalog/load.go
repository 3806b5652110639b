package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a building catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}

	return &cat, nil
}
