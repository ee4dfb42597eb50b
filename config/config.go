// Package config loads the engine's PrivacyDefinition and logging
// settings from a YAML file, grounded on the chaos-runner config
// package's Config/yaml.v3 pattern.
package config

import (
	"fmt"
	"os"

	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/privacy"
	"github.com/arborcroft/dpgraph/sensitivity"
	"gopkg.in/yaml.v3"
)

// Config is the top-level YAML document.
type Config struct {
	Privacy PrivacyConfig `yaml:"privacy"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// PrivacyConfig maps onto a privacy.PrivacyDefinition.
type PrivacyConfig struct {
	Neighboring             string  `yaml:"neighboring"` // "substitute" or "add_remove"
	BudgetEpsilon           float64 `yaml:"budget_epsilon"`
	BudgetDelta             float64 `yaml:"budget_delta"`
	StrictParameterChecking bool    `yaml:"strict_parameter_checking"`
	GroupSize               int     `yaml:"group_size"`
	DefaultMechanism        string  `yaml:"default_mechanism"` // "laplace", "gaussian", ...
	EnforceConstantTime     bool    `yaml:"enforce_constant_time"`
}

// LoggingConfig holds the document's logging settings. The dpgraph CLI
// takes its log level from --log-level and does not read these fields.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// MetricsConfig holds the document's metrics-listener settings. The
// dpgraph serve command takes its address from --addr and does not
// read these fields.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Default returns the engine's conservative out-of-the-box config.
func Default() Config {
	return Config{
		Privacy: PrivacyConfig{
			Neighboring:             "substitute",
			StrictParameterChecking: true,
			GroupSize:               1,
			DefaultMechanism:        "laplace",
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Metrics: MetricsConfig{Enabled: false, Addr: ":9090"},
	}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// PrivacyDefinition converts c's PrivacyConfig into a
// privacy.PrivacyDefinition.
func (c Config) PrivacyDefinition() (privacy.PrivacyDefinition, error) {
	def := privacy.DefaultDefinition()
	def.BudgetEpsilon = c.Privacy.BudgetEpsilon
	def.BudgetDelta = c.Privacy.BudgetDelta
	def.StrictParameterChecking = c.Privacy.StrictParameterChecking
	if c.Privacy.GroupSize > 0 {
		def.GroupSize = c.Privacy.GroupSize
	}
	switch c.Privacy.Neighboring {
	case "", "substitute":
		def.Neighboring = sensitivity.Substitute
	case "add_remove":
		def.Neighboring = sensitivity.AddRemove
	default:
		return privacy.PrivacyDefinition{}, fmt.Errorf("config: unknown neighboring definition %q", c.Privacy.Neighboring)
	}
	return def, nil
}

// DefaultMechanism converts the configured default mechanism name
// into a graphmodel.MechanismKind.
func (c Config) DefaultMechanism() (graphmodel.MechanismKind, error) {
	switch c.Privacy.DefaultMechanism {
	case "", "laplace":
		return graphmodel.MechanismLaplace, nil
	case "gaussian":
		return graphmodel.MechanismGaussian, nil
	case "analytic_gaussian":
		return graphmodel.MechanismAnalyticGaussian, nil
	case "simple_geometric":
		return graphmodel.MechanismSimpleGeometric, nil
	case "snapping":
		return graphmodel.MechanismSnapping, nil
	case "exponential":
		return graphmodel.MechanismExponential, nil
	default:
		return graphmodel.MechanismUnspecified, fmt.Errorf("config: unknown default mechanism %q", c.Privacy.DefaultMechanism)
	}
}
