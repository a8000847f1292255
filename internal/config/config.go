package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/crillab/gophertable/table"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ServerMaxVariables caps the variables of programs received by the HTTP and MCP servers,
// whatever max_variables says.
const ServerMaxVariables = 16

// DefaultPath is the config file looked up in the working directory when none is given.
const DefaultPath = ".gophertable.yaml"

// Config holds the user settings of gophertable.
type Config struct {
	ResultLabel  string `yaml:"result_label" mapstructure:"result_label"`
	TrueLabel    string `yaml:"true_label" mapstructure:"true_label"`
	FalseLabel   string `yaml:"false_label" mapstructure:"false_label"`
	MaxVariables int    `yaml:"max_variables" mapstructure:"max_variables"`
	Pretty       bool   `yaml:"pretty" mapstructure:"pretty"`
	LogLevel     string `yaml:"log_level" mapstructure:"log_level"`
	Listen       string `yaml:"listen" mapstructure:"listen"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		ResultLabel:  "F",
		TrueLabel:    "true",
		FalseLabel:   "false",
		MaxVariables: 24,
		LogLevel:     "warn",
		Listen:       ":8080",
	}
}

// Load reads the config file at path on top of the defaults.
// A missing file is only an error when required is true.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays the YAML document in data onto cfg and validates the result.
// Values are weakly typed ("12" is accepted for an int) but unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks the settings are consistent.
func (c Config) Validate() error {
	switch {
	case c.ResultLabel == "":
		return errors.New("result_label must not be empty")
	case c.TrueLabel == "" || c.FalseLabel == "":
		return errors.New("true_label and false_label must not be empty")
	case c.TrueLabel == c.FalseLabel:
		return fmt.Errorf("true_label and false_label must differ, both are %q", c.TrueLabel)
	case c.MaxVariables < 0 || c.MaxVariables > 62:
		return fmt.Errorf("max_variables must be between 0 and 62, got %d", c.MaxVariables)
	}
	return nil
}

// TableOptions translates the settings into table generation options.
func (c Config) TableOptions() []table.Option {
	return []table.Option{
		table.WithResultLabel(c.ResultLabel),
		table.WithBoolLabels(c.TrueLabel, c.FalseLabel),
		table.WithMaxVariables(c.MaxVariables),
	}
}

// ServerTableOptions is like TableOptions, with the variable limit capped at ServerMaxVariables.
func (c Config) ServerTableOptions() []table.Option {
	c.MaxVariables = serverLimit(c.MaxVariables)
	return c.TableOptions()
}

func serverLimit(n int) int {
	if n == 0 || n > ServerMaxVariables {
		return ServerMaxVariables
	}
	return n
}
