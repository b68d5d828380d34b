// Package scenario holds the chaos scenario archetypes and the logic binding
// them to a discovered cluster snapshot.
package scenario

import (
	"strings"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario/parameters"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
)

// Scenario is a single generated test case
type Scenario interface {
	// Name identifies the archetype for engine dispatch and reporting
	Name() string
	// Parameters returns the owned parameters in a stable archetype defined order
	Parameters() []parameters.Parameter
	// Mutate binds the scenario to the snapshot and randomizes its free parameters.
	// It runs exactly once, through New.
	Mutate(snapshot *types.ClusterComponents, r *rng.Source) error
}

// Constructor returns an unbound scenario with default parameters
type Constructor func() Scenario

// New builds a scenario and binds it to snapshot. A scenario is either
// returned fully bound or not at all.
func New(ctor Constructor, snapshot *types.ClusterComponents, r *rng.Source) (Scenario, error) {
	s := ctor()
	if err := s.Mutate(snapshot, r); err != nil {
		return nil, err
	}
	return s, nil
}

// Parameter returns the parameter of s with the given name.
// Names are compared case insensitively since config keys are lowercased.
func Parameter(s Scenario, name string) (parameters.Parameter, bool) {
	for _, p := range s.Parameters() {
		if strings.EqualFold(p.Name(), name) {
			return p, true
		}
	}
	return nil, false
}
