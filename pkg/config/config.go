// Package config loads the generator configuration from a yaml file and
// SCENARIOGEN_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/cerrors"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/pattern"
)

const (
	EnvPrefix = "SCENARIOGEN"

	OutputEnv = "env"
	OutputCLI = "cli"
)

// Config is the generator configuration
type Config struct {
	KubeConfig        string                    `yaml:"kubeconfig" mapstructure:"kubeconfig"`
	Seed              int64                     `yaml:"seed" mapstructure:"seed"`
	Count             int                       `yaml:"count" mapstructure:"count"`
	ClusterComponents PatternsConfig            `yaml:"cluster_components" mapstructure:"cluster_components"`
	Discovery         DiscoveryConfig           `yaml:"discovery" mapstructure:"discovery"`
	Scenarios         map[string]ScenarioConfig `yaml:"scenario" mapstructure:"scenario"`
	Output            OutputConfig              `yaml:"output" mapstructure:"output"`
	Telemetry         TelemetryConfig           `yaml:"telemetry" mapstructure:"telemetry"`
}

// PatternsConfig holds the comma separated discovery patterns
type PatternsConfig struct {
	Namespace string `yaml:"namespace" mapstructure:"namespace"`
	PodLabel  string `yaml:"pod_label" mapstructure:"pod_label"`
	NodeLabel string `yaml:"node_label" mapstructure:"node_label"`
}

// DiscoveryConfig holds the cluster api call settings
type DiscoveryConfig struct {
	Attempts uint          `yaml:"attempts" mapstructure:"attempts"`
	Wait     time.Duration `yaml:"wait" mapstructure:"wait"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
	Metrics  bool          `yaml:"metrics" mapstructure:"metrics"`
}

// ScenarioConfig enables an archetype and overrides its parameters by name
type ScenarioConfig struct {
	Enable bool              `yaml:"enable" mapstructure:"enable"`
	Params map[string]string `yaml:"params" mapstructure:"params"`
}

// OutputConfig controls how generated scenarios are printed and where the snapshot is kept
type OutputConfig struct {
	Format       string `yaml:"format" mapstructure:"format"`
	SnapshotFile string `yaml:"snapshot_file" mapstructure:"snapshot_file"`
}

// TelemetryConfig holds the otlp and prometheus endpoints, both disabled when empty
type TelemetryConfig struct {
	OTLPEndpoint   string `yaml:"otlp_endpoint" mapstructure:"otlp_endpoint"`
	MetricsAddress string `yaml:"metrics_address" mapstructure:"metrics_address"`
}

// DefaultConfig returns the configuration used when nothing is set.
// No scenario is enabled by default.
func DefaultConfig() *Config {
	return &Config{
		Count: 1,
		ClusterComponents: PatternsConfig{
			Namespace: pattern.MatchAll,
			PodLabel:  pattern.MatchAll,
			NodeLabel: pattern.MatchAll,
		},
		Discovery: DiscoveryConfig{
			Attempts: 3,
			Wait:     2 * time.Second,
			Timeout:  2 * time.Minute,
			Metrics:  true,
		},
		Scenarios: map[string]ScenarioConfig{},
		Output: OutputConfig{
			Format: OutputEnv,
		},
	}
}

func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("kubeconfig", c.KubeConfig)
	v.SetDefault("seed", c.Seed)
	v.SetDefault("count", c.Count)
	v.SetDefault("cluster_components.namespace", c.ClusterComponents.Namespace)
	v.SetDefault("cluster_components.pod_label", c.ClusterComponents.PodLabel)
	v.SetDefault("cluster_components.node_label", c.ClusterComponents.NodeLabel)
	v.SetDefault("discovery.attempts", c.Discovery.Attempts)
	v.SetDefault("discovery.wait", c.Discovery.Wait)
	v.SetDefault("discovery.timeout", c.Discovery.Timeout)
	v.SetDefault("discovery.metrics", c.Discovery.Metrics)
	v.SetDefault("output.format", c.Output.Format)
	v.SetDefault("output.snapshot_file", c.Output.SnapshotFile)
	v.SetDefault("telemetry.otlp_endpoint", c.Telemetry.OTLPEndpoint)
	v.SetDefault("telemetry.metrics_address", c.Telemetry.MetricsAddress)
}

// LoadConfig loads configuration from the file, if any, and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	v := viper.New()
	setDefaults(v, config)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("scenario-gen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/scenario-gen")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "failed to read config file")
		}
		// no config file, defaults and env only
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Count < 1 {
		return configError("count", fmt.Sprintf("must be at least 1, got %d", c.Count))
	}
	if c.Discovery.Attempts < 1 {
		return configError("discovery.attempts", "must be at least 1")
	}
	if c.Output.Format != OutputEnv && c.Output.Format != OutputCLI {
		return configError("output.format", fmt.Sprintf("invalid format '%s', must be '%s' or '%s'", c.Output.Format, OutputEnv, OutputCLI))
	}
	for _, spec := range []string{c.ClusterComponents.Namespace, c.ClusterComponents.PodLabel, c.ClusterComponents.NodeLabel} {
		if _, err := pattern.Compile(spec); err != nil {
			return err
		}
	}
	return nil
}

// EnabledScenarios returns the keys of the enabled scenarios
func (c *Config) EnabledScenarios() []string {
	var keys []string
	for key, sc := range c.Scenarios {
		if sc.Enable {
			keys = append(keys, key)
		}
	}
	return keys
}

func configError(target, reason string) error {
	return cerrors.Error{ErrorCode: cerrors.ErrorTypeConfig, Target: target, Reason: reason}
}
