// Package parameters holds the typed scenario parameters along with their
// bounded mutation rules and the string form handed to the chaos engine.
package parameters

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/math"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
)

const (
	// MinPercentage and MaxPercentage bound every percentage parameter
	MinPercentage = 20
	MaxPercentage = 100

	maxIncreaseStep = 35
	maxDecreaseStep = 25
)

// Parameter is a single named value of a scenario
type Parameter interface {
	// Name is the env key used by the hub runner
	Name() string
	// FlagName is the flag used by the cli runner
	FlagName() string
	// Render returns the value in the form the engine expects
	Render() string
	// Set parses the rendered form back into the value
	Set(text string) error
	// Mutate randomizes the value within its bounds, a no-op for static parameters
	Mutate(r *rng.Source)
}

type base struct {
	name string
	flag string
}

func newBase(name, flag string) base {
	if flag == "" {
		flag = strings.ToLower(strings.ReplaceAll(name, "_", "-"))
	}
	return base{name: name, flag: flag}
}

func (b base) Name() string     { return b.name }
func (b base) FlagName() string { return b.flag }

func (b base) invalid(text, reason string) error {
	return fmt.Errorf("invalid value '%s' for %s, %s", text, b.name, reason)
}

// String is a free form parameter, bound by the scenario or left at its default
type String struct {
	base
	Value string
}

// NewString returns a String parameter, an empty flag derives it from name
func NewString(name, flag, value string) *String {
	return &String{base: newBase(name, flag), Value: value}
}

func (p *String) Render() string { return p.Value }

func (p *String) Set(text string) error {
	p.Value = text
	return nil
}

func (p *String) Mutate(*rng.Source) {}

// Int is an integer parameter without randomization
type Int struct {
	base
	Value int
}

// NewInt returns an Int parameter, an empty flag derives it from name
func NewInt(name, flag string, value int) *Int {
	return &Int{base: newBase(name, flag), Value: value}
}

func (p *Int) Render() string { return strconv.Itoa(p.Value) }

func (p *Int) Set(text string) error {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return p.invalid(text, "expected an integer")
	}
	p.Value = v
	return nil
}

func (p *Int) Mutate(*rng.Source) {}

// Percentage is an integer percentage kept within [MinPercentage, MaxPercentage]
type Percentage struct {
	base
	Value int
	// Suffix renders the value with a trailing %
	Suffix bool
}

// NewPercentage returns a Percentage parameter
func NewPercentage(name, flag string, value int, suffix bool) *Percentage {
	return &Percentage{base: newBase(name, flag), Value: value, Suffix: suffix}
}

func (p *Percentage) Render() string {
	if p.Suffix {
		return strconv.Itoa(p.Value) + "%"
	}
	return strconv.Itoa(p.Value)
}

func (p *Percentage) Set(text string) error {
	v, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(text), "%"))
	if err != nil {
		return p.invalid(text, "expected an integer percentage")
	}
	if v < MinPercentage || v > MaxPercentage {
		return p.invalid(text, fmt.Sprintf("expected a value within [%d, %d]", MinPercentage, MaxPercentage))
	}
	p.Value = v
	return nil
}

// Mutate moves the value up by 1-35% or down by 1-25% of itself with equal
// probability, then clamps it. Downward steps are more likely to stick.
func (p *Percentage) Mutate(r *rng.Source) {
	if r.Bool(0.5) {
		p.Value = math.Adjustment(p.Value, r.IntRange(1, maxIncreaseStep))
	} else {
		p.Value = math.Adjustment(p.Value, -r.IntRange(1, maxDecreaseStep))
	}
	p.Value = math.Clamp(p.Value, MinPercentage, MaxPercentage)
}

// IntRange is an integer redrawn uniformly from [Min, Max] on each mutation
type IntRange struct {
	base
	Value int
	Min   int
	Max   int
}

// NewIntRange returns an IntRange parameter
func NewIntRange(name, flag string, value, min, max int) *IntRange {
	return &IntRange{base: newBase(name, flag), Value: value, Min: min, Max: max}
}

func (p *IntRange) Render() string { return strconv.Itoa(p.Value) }

func (p *IntRange) Set(text string) error {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return p.invalid(text, "expected an integer")
	}
	if v < p.Min || v > p.Max {
		return p.invalid(text, fmt.Sprintf("expected a value within [%d, %d]", p.Min, p.Max))
	}
	p.Value = v
	return nil
}

func (p *IntRange) Mutate(r *rng.Source) {
	p.Value = r.IntRange(p.Min, p.Max)
}

// Choice is a categorical parameter redrawn from Options on each mutation
type Choice struct {
	base
	Value   string
	Options []string
}

// NewChoice returns a Choice parameter
func NewChoice(name, flag, value string, options ...string) *Choice {
	return &Choice{base: newBase(name, flag), Value: value, Options: options}
}

func (p *Choice) Render() string { return p.Value }

func (p *Choice) Set(text string) error {
	for _, o := range p.Options {
		if o == text {
			p.Value = text
			return nil
		}
	}
	return p.invalid(text, fmt.Sprintf("expected one of %v", p.Options))
}

func (p *Choice) Mutate(r *rng.Source) {
	if len(p.Options) == 0 {
		return
	}
	p.Value = rng.Choice(r, p.Options)
}

// NetworkImpairment is the latency, loss and bandwidth triple of a network chaos
type NetworkImpairment struct {
	// Latency in ms
	Latency int
	// Loss as a fraction
	Loss float64
	// Bandwidth in mbit
	Bandwidth int
}

var networkRegex = regexp.MustCompile(`^\{\s*latency:\s*([0-9]+)ms\s*,\s*loss:\s*([0-9]*\.?[0-9]+)\s*,\s*bandwidth:\s*([0-9]+)mbit\s*\}$`)

const (
	minLatency   = 1
	maxLatency   = 10000
	minBandwidth = 100
	maxBandwidth = 10000
)

// Network is a structured network impairment parameter.
// Loss is drawn uniformly from [LossMin, LossMax), rounded to two decimals when Round is set.
type Network struct {
	base
	Value   NetworkImpairment
	LossMin float64
	LossMax float64
	Round   bool
}

// NewNetwork returns a Network parameter with the 50ms, 0.02, 100mbit default
func NewNetwork(name, flag string, lossMin, lossMax float64, round bool) *Network {
	return &Network{
		base:    newBase(name, flag),
		Value:   NetworkImpairment{Latency: 50, Loss: 0.02, Bandwidth: 100},
		LossMin: lossMin,
		LossMax: lossMax,
		Round:   round,
	}
}

func (p *Network) Render() string {
	return fmt.Sprintf("{latency: %dms,loss: %s,bandwidth: %dmbit}",
		p.Value.Latency, strconv.FormatFloat(p.Value.Loss, 'f', -1, 64), p.Value.Bandwidth)
}

func (p *Network) Set(text string) error {
	match := networkRegex.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return p.invalid(text, "expected {latency: <n>ms,loss: <f>,bandwidth: <n>mbit}")
	}
	latency, err := strconv.Atoi(match[1])
	if err != nil {
		return p.invalid(text, err.Error())
	}
	loss, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return p.invalid(text, err.Error())
	}
	bandwidth, err := strconv.Atoi(match[3])
	if err != nil {
		return p.invalid(text, err.Error())
	}
	p.Value = NetworkImpairment{Latency: latency, Loss: loss, Bandwidth: bandwidth}
	return nil
}

func (p *Network) Mutate(r *rng.Source) {
	p.Value.Latency = r.IntRange(minLatency, maxLatency)
	loss := r.Uniform(p.LossMin, p.LossMax)
	if p.Round {
		// rounding may land on LossMax, which is still within the inclusive bound
		loss, _ = strconv.ParseFloat(strconv.FormatFloat(loss, 'f', 2, 64), 64)
	}
	p.Value.Loss = loss
	p.Value.Bandwidth = r.IntRange(minBandwidth, maxBandwidth)
}
