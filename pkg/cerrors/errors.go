package cerrors

import "fmt"

// ParseError is returned for a malformed cpu or memory quantity
type ParseError struct {
	Resource string
	Input    string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse %s quantity '%s', %s", e.Resource, e.Input, e.Reason)
}

func (e *ParseError) UserFriendly() bool {
	return true
}

func (e *ParseError) ErrorType() ErrorType {
	return ErrorTypeParse
}

// DiscoveryError is returned when a cluster listing call fails outright
type DiscoveryError struct {
	Resource string
	Target   string
	Cause    error
}

func (e *DiscoveryError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("failed to list %s, %v", e.Resource, e.Cause)
	}
	return fmt.Sprintf("failed to list %s for %s, %v", e.Resource, e.Target, e.Cause)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Cause
}

func (e *DiscoveryError) UserFriendly() bool {
	return true
}

func (e *DiscoveryError) ErrorType() ErrorType {
	return ErrorTypeDiscovery
}

type TargetSelectionError struct {
	Target string
	Reason string
}

func (e *TargetSelectionError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("target selection failed, %s", e.Reason)
	}
	return fmt.Sprintf("target '%s' selection failed, %s", e.Target, e.Reason)
}

func (e *TargetSelectionError) UserFriendly() bool {
	return true
}

func (e *TargetSelectionError) ErrorType() ErrorType {
	return ErrorTypeTargetSelection
}

// MissingScenarioError is returned when no scenario is enabled in the configuration
type MissingScenarioError struct{}

func (e *MissingScenarioError) Error() string {
	return "no scenarios found, please enable at least one scenario"
}

func (e *MissingScenarioError) UserFriendly() bool {
	return true
}

func (e *MissingScenarioError) ErrorType() ErrorType {
	return ErrorTypeMissingScenario
}

// UnknownScenarioError is returned for a configuration key that has no registered scenario
type UnknownScenarioError struct {
	Key string
}

func (e *UnknownScenarioError) Error() string {
	return fmt.Sprintf("unknown scenario '%s' in configuration", e.Key)
}

func (e *UnknownScenarioError) UserFriendly() bool {
	return true
}

func (e *UnknownScenarioError) ErrorType() ErrorType {
	return ErrorTypeUnknownScenario
}

// ScenarioInitError wraps the failure raised while building a selected scenario
type ScenarioInitError struct {
	Scenario string
	Cause    error
}

func (e *ScenarioInitError) Error() string {
	return fmt.Sprintf("unable to initialize scenario '%s', %v", e.Scenario, e.Cause)
}

func (e *ScenarioInitError) Unwrap() error {
	return e.Cause
}

func (e *ScenarioInitError) UserFriendly() bool {
	return true
}

func (e *ScenarioInitError) ErrorType() ErrorType {
	return ErrorTypeScenarioInit
}
