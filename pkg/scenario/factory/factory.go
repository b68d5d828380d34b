// Package factory picks an enabled archetype at random and builds it against
// the current cluster snapshot.
package factory

import (
	"context"
	"sort"

	"github.com/palantir/stacktrace"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/cerrors"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/config"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/log"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/telemetry"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
)

// Factory builds scenarios from a registry
type Factory struct {
	registry Registry
	rng      *rng.Source
}

// New returns a factory over registry drawing from r
func New(registry Registry, r *rng.Source) *Factory {
	return &Factory{registry: registry, rng: r}
}

// GenerateRandomScenario picks one of the enabled archetypes uniformly and
// builds it against snapshot, then applies the configured overrides
func (f *Factory) GenerateRandomScenario(ctx context.Context, cfg map[string]config.ScenarioConfig, snapshot *types.ClusterComponents) (scenario.Scenario, error) {
	ctx, span := telemetry.StartTracing(ctx, "GenerateRandomScenario")
	defer span.End()

	candidates, err := f.candidates(cfg)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	key := rng.Choice(f.rng, candidates)
	log.Debugf("[Factory]: selected %s out of %v", key, candidates)

	s, err := scenario.New(f.registry[key], snapshot, f.rng)
	if err != nil {
		err = &cerrors.ScenarioInitError{Scenario: key, Cause: err}
		span.RecordError(err)
		return nil, err
	}
	if err := applyOverrides(s, cfg[key].Params); err != nil {
		err = &cerrors.ScenarioInitError{Scenario: key, Cause: err}
		span.RecordError(err)
		return nil, err
	}

	telemetry.RecordScenarioGenerated(ctx, s.Name())
	return s, nil
}

// CreateDummyScenario returns the dummy scenario, it does not need a cluster
func (f *Factory) CreateDummyScenario() scenario.Scenario {
	s, err := scenario.New(scenario.NewDummyScenario, nil, f.rng)
	if err != nil {
		// the dummy scenario never binds to anything
		panic(stacktrace.Propagate(err, "dummy scenario construction failed"))
	}
	return s
}

// candidates returns the enabled keys sorted so that a seed replays the same pick
func (f *Factory) candidates(cfg map[string]config.ScenarioConfig) ([]string, error) {
	var keys []string
	for key, sc := range cfg {
		if _, ok := f.registry[key]; !ok {
			return nil, &cerrors.UnknownScenarioError{Key: key}
		}
		if sc.Enable {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil, &cerrors.MissingScenarioError{}
	}
	sort.Strings(keys)
	return keys, nil
}

func applyOverrides(s scenario.Scenario, params map[string]string) error {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p, ok := scenario.Parameter(s, name)
		if !ok {
			return cerrors.Error{
				ErrorCode: cerrors.ErrorTypeConfig,
				Target:    name,
				Reason:    "no such parameter in scenario " + s.Name(),
			}
		}
		if err := p.Set(params[name]); err != nil {
			return stacktrace.Propagate(err, "could not override %s", p.Name())
		}
		log.Debugf("[Factory]: %s overridden to %s", p.Name(), p.Render())
	}
	return nil
}
