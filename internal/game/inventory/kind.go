package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// KindID is the stable identifier of an item kind.
type KindID string

// KindDef defines the static properties of an item kind loaded from YAML.
type KindDef struct {
	ID          KindID  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Weight      float64 `yaml:"weight"`
	MaxPerSlot  int     `yaml:"max_per_slot"`
	Value       int     `yaml:"value"`
}

// Validate checks that the KindDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *KindDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if d.MaxPerSlot < 1 {
		errs = append(errs, errors.New("MaxPerSlot must be >= 1"))
	}
	if d.Weight < 0 {
		errs = append(errs, errors.New("Weight must be >= 0"))
	}
	if d.Value < 0 {
		errs = append(errs, errors.New("Value must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("kind validation failed: %v", errs)
	}
	return nil
}

// LoadKinds reads all *.yaml and *.yml files from dir, parses each as a
// KindDef, validates it, and returns the collected slice sorted by file name.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid KindDefs or the first encountered error.
func LoadKinds(dir string) ([]*KindDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadKinds: cannot read directory %q: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	kinds := make([]*KindDef, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadKinds: cannot read file %q: %w", path, err)
		}
		var d KindDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("LoadKinds: cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadKinds: invalid kind in %q: %w", path, err)
		}
		kinds = append(kinds, &d)
	}
	return kinds, nil
}
