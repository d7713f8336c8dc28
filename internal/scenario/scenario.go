// Package scenario loads scripted inventory operations from YAML and replays
// them against a Container.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/slotstash/internal/game/inventory"
)

// Op names a scenario step operation.
type Op string

// Supported operations.
const (
	OpAdd      Op = "add"
	OpRemove   Op = "remove"
	OpTransfer Op = "transfer"
	OpLock     Op = "lock"
	OpUnlock   Op = "unlock"
	OpEquip    Op = "equip"
)

// DefaultSender is used for steps that do not name one.
const DefaultSender inventory.Sender = "scenario"

// ContainerSpec describes the container a scenario runs against. A zero
// Capacity means the caller supplies the container.
type ContainerSpec struct {
	ID           string `yaml:"id"`
	Capacity     int    `yaml:"capacity"`
	SlotCapacity int    `yaml:"slot_capacity"`
	LockedSlots  []int  `yaml:"locked_slots"`
}

// Step is one operation.
type Step struct {
	Op     Op               `yaml:"op"`
	Sender inventory.Sender `yaml:"sender"`
	Kind   inventory.KindID `yaml:"kind"`
	Amount int              `yaml:"amount"`
	From   int              `yaml:"from"`
	To     int              `yaml:"to"`
	Slot   int              `yaml:"slot"`
	// Unequip clears the equipped flag instead of setting it.
	Unequip bool `yaml:"unequip"`
}

// Scenario is a container description plus an ordered list of steps.
type Scenario struct {
	Name      string        `yaml:"name"`
	Container ContainerSpec `yaml:"container"`
	Steps     []Step        `yaml:"steps"`
}

// Validate checks every step and reports all problems at once.
//
// Postcondition: Returns nil if every step is well-formed.
func (s *Scenario) Validate() error {
	var errs []error
	if s.Container.Capacity < 0 {
		errs = append(errs, fmt.Errorf("container.capacity must be >= 0, got %d", s.Container.Capacity))
	}
	if s.Container.Capacity > 0 && s.Container.SlotCapacity < 1 {
		errs = append(errs, fmt.Errorf("container.slot_capacity must be >= 1, got %d", s.Container.SlotCapacity))
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d (%s): %w", i, st.Op, err))
		}
	}
	return errors.Join(errs...)
}

func (st Step) validate() error {
	switch st.Op {
	case OpAdd, OpRemove:
		if st.Kind == "" {
			return errors.New("kind must not be empty")
		}
		if st.Amount < 1 {
			return fmt.Errorf("amount must be >= 1, got %d", st.Amount)
		}
	case OpEquip:
		if st.Kind == "" {
			return errors.New("kind must not be empty")
		}
	case OpTransfer:
		if st.From < 0 || st.To < 0 {
			return fmt.Errorf("from and to must be >= 0, got %d and %d", st.From, st.To)
		}
	case OpLock, OpUnlock:
		if st.Slot < 0 {
			return fmt.Errorf("slot must be >= 0, got %d", st.Slot)
		}
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

// LoadFile reads and validates the scenario at path.
//
// Precondition: path must name a readable YAML file.
// Postcondition: Returns a validated Scenario or a non-nil error.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// NewContainer builds the container the scenario describes.
//
// Precondition: s.Container.Capacity > 0.
func (s *Scenario) NewContainer(kinds inventory.KindProvider, opts ...inventory.Option) (*inventory.Container, error) {
	spec := s.Container
	if spec.Capacity == 0 {
		return nil, errors.New("scenario does not describe a container")
	}
	if spec.ID != "" {
		opts = append(opts, inventory.WithID(spec.ID))
	}
	if len(spec.LockedSlots) > 0 {
		opts = append(opts, inventory.WithLockedSlots(spec.LockedSlots...))
	}
	return inventory.NewContainer(spec.Capacity, spec.SlotCapacity, kinds, opts...)
}
