package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lutia-ai/lutia/internal/domain"
)

type modelsFile struct {
	Models []domain.ModelDescriptor `yaml:"models"`
}

// LoadModels reads model descriptors from a YAML file of the form
//
//	models:
//	  - name: gpt-4o
//	    provider: openai
//	    input_price_per_million: 2.5
//
// An empty path yields no models.
func LoadModels(path string) ([]domain.ModelDescriptor, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read models file: %w", err)
	}

	var file modelsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse models file %s: %w", path, err)
	}

	for i, m := range file.Models {
		if m.Name == "" || m.Provider == "" {
			return nil, fmt.Errorf("models file %s: entry %d needs a name and a provider", path, i)
		}
	}
	return file.Models, nil
}
