// Package render turns a scenario into the payload of the hub or cli runner.
package render

import (
	"fmt"
	"strings"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario"
)

// EnvVars returns the NAME=value pairs of the hub runner in parameter order
func EnvVars(s scenario.Scenario) []string {
	params := s.Parameters()
	env := make([]string, 0, len(params))
	for _, p := range params {
		env = append(env, p.Name()+"="+p.Render())
	}
	return env
}

// CLIArgs returns the cli runner arguments, the scenario name followed by one --flag=value per parameter
func CLIArgs(s scenario.Scenario) []string {
	params := s.Parameters()
	args := make([]string, 0, len(params)+1)
	args = append(args, s.Name())
	for _, p := range params {
		args = append(args, fmt.Sprintf("--%s=%s", p.FlagName(), p.Render()))
	}
	return args
}

// Summary maps parameter names to rendered values, meant for logging
func Summary(s scenario.Scenario) map[string]string {
	summary := make(map[string]string, len(s.Parameters()))
	for _, p := range s.Parameters() {
		summary[p.Name()] = p.Render()
	}
	return summary
}

// CommandLine returns the cli runner invocation as a single shell quoted line
func CommandLine(binary string, s scenario.Scenario) string {
	args := CLIArgs(s)
	parts := make([]string, 0, len(args)+2)
	parts = append(parts, binary, "run", args[0])
	for _, a := range args[1:] {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(arg string) string {
	if !strings.ContainsAny(arg, " {}[]'\"$`\\*") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}
