// Package config defines the application configuration and loads it from
// YAML files and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/iwvelando/interest-calculator/internal/report"
	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for interest-calculator.
type Configuration struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging,omitempty"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output,omitempty"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults,omitempty"`
	Export   ExportConfig   `mapstructure:"export" yaml:"export,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, json, csv
}

// DefaultsConfig holds the selector values used when a request leaves them empty.
type DefaultsConfig struct {
	Currency  string `mapstructure:"currency" yaml:"currency,omitempty"`
	Kind      string `mapstructure:"kind" yaml:"kind,omitempty"`
	Frequency string `mapstructure:"frequency" yaml:"frequency,omitempty"`
}

// ExportConfig holds document export options.
type ExportConfig struct {
	FontFile       string `mapstructure:"fontFile" yaml:"fontFile,omitempty"`
	KeepChartImage bool   `mapstructure:"keepChartImage" yaml:"keepChartImage,omitempty"`
}

// ReportOptions converts the export section for the report writer.
func (e ExportConfig) ReportOptions() report.Options {
	return report.Options{FontFile: e.FontFile, KeepChartImage: e.KeepChartImage}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("defaults.currency", constants.DefaultCurrency)
	v.SetDefault("defaults.kind", string(calculator.Simple))
	v.SetDefault("defaults.frequency", calculator.Annually.String())
	v.SetDefault("export.fontFile", "")
	v.SetDefault("export.keepChartImage", false)
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file at the default location yields the
// defaults; a missing file elsewhere is an error.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if !(errors.Is(err, fs.ErrNotExist) && configPath == constants.DefaultConfigFile) {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	return unmarshal(v)
}

// LoadConfigurationFromReader loads YAML configuration from a reader.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if warning := validation.ValidateCurrency(c.Defaults.Currency); warning != "" {
		warnings = append(warnings, warning)
	}
	if _, err := calculator.ParseKind(c.Defaults.Kind); err != nil {
		warnings = append(warnings, fmt.Sprintf("Default kind '%s' is not one of Simple, Compound, EMI", c.Defaults.Kind))
	}
	if _, err := calculator.ParseFrequency(c.Defaults.Frequency); err != nil {
		warnings = append(warnings, fmt.Sprintf("Default frequency '%s' is not a supported compounding frequency", c.Defaults.Frequency))
	}
	if c.Export.FontFile != "" {
		if _, err := os.Stat(c.Export.FontFile); err != nil {
			warnings = append(warnings, fmt.Sprintf("Export font file '%s' is not readable: %v", c.Export.FontFile, err))
		}
	}

	return warnings
}

// ApplyDefaults fills an empty currency or frequency from the defaults
// section. The kind is never defaulted here: an unselected kind must still be
// reported to the user.
func (c *Configuration) ApplyDefaults(form calculator.Form) calculator.Form {
	if strings.TrimSpace(form.Currency) == "" {
		form.Currency = c.Defaults.Currency
	}
	if strings.TrimSpace(form.Frequency) == "" {
		form.Frequency = c.Defaults.Frequency
	}
	return form
}
