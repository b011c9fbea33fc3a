package categories

import (
	"fmt"
	"os"

	"vivek/budget-buddy/internal/logging"

	"gopkg.in/yaml.v3"
)

// overridesFile is the YAML structure of a category override file:
//
//	mappings:
//	  "campus cafe": food
//	  "gym": health_wellness
type overridesFile struct {
	Mappings map[string]string `yaml:"mappings"`
}

// LoadOverrides merges extra raw-to-canonical mappings from a YAML file into
// the mapper. A missing file is not an error; the built-in table is enough.
func (m *Mapper) LoadOverrides(path string, log logging.Logger) error {
	if log == nil {
		log = logging.GetLogger()
	}
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField(logging.FieldFile, path).Debug("No category override file found")
			return nil
		}
		return fmt.Errorf("error reading category overrides: %w", err)
	}

	var overrides overridesFile
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("error parsing category overrides: %w", err)
	}

	for raw, canonical := range overrides.Mappings {
		m.AddMapping(raw, canonical)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(overrides.Mappings)},
	).Debug("Loaded category overrides")
	return nil
}
