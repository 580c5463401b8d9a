package dataset

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a dataset file. The format is picked by file
// extension: .json, .yaml or .yml.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	doc := &Document{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(raw, doc); err != nil {
			return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, doc); err != nil {
			return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadOrSeed loads the dataset at path and falls back to the built-in
// sample data when the file is missing or malformed. A bad dataset file
// must never stop the server from starting.
func LoadOrSeed(path string) *Document {
	doc, err := Load(path)
	if err != nil {
		log.Printf("dataset: falling back to sample data: %v", err)
		return Sample()
	}
	return doc
}
