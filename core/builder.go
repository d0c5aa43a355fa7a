package core

import (
	"github.com/sarchlab/akita/v4/sim"
)

// Builder can create new trackers.
type Builder struct {
	names       NameOptions
	baseline    BaselinePolicy
	minVariants int
}

// WithNameOptions sets how clone variants are spelled.
func (b Builder) WithNameOptions(names NameOptions) Builder {
	b.names = names
	return b
}

// WithBaseline sets the baseline selection policy.
func (b Builder) WithBaseline(policy BaselinePolicy) Builder {
	b.baseline = policy
	return b
}

// WithMinVariants sets how many variants a family collects before it is
// decided.
func (b Builder) WithMinVariants(n int) Builder {
	if n < 2 {
		panic("Need at least 2 variants to compare")
	}
	b.minVariants = n
	return b
}

func NewBuilder() Builder {
	return Builder{
		names:       DefaultNameOptions(),
		baseline:    BaselineDefault,
		minVariants: 2,
	}
}

// Build creates a tracker.
func (b Builder) Build(name string) *Tracker {
	if b.minVariants < 2 {
		b.minVariants = 2
	}
	if b.names.Separator == "" {
		b.names = DefaultNameOptions()
	}

	hooks := sim.NewHookableBase()

	return &Tracker{
		HookableBase: hooks,
		name:         name,
		names:        b.names,
		baseline:     b.baseline,
		minVariants:  b.minVariants,
		comparator:   NewComparator(hooks),
	}
}
