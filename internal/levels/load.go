package levels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile mirrors the on-disk catalog layout.
type catalogFile struct {
	Levels []Level `yaml:"levels"`
}

// LoadFile reads a YAML level catalog from path. The file carries a
// top-level "levels" list; every field of Level can be tuned without
// recompiling.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataError{Source: path, Err: err}
	}

	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DataError{Source: path, Err: fmt.Errorf("invalid YAML: %w", err)}
	}

	if err := validate(doc.Levels); err != nil {
		return nil, &DataError{Source: path, Err: err}
	}

	return build(doc.Levels), nil
}
