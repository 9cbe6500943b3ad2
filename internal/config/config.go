// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the simulation file.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/iwvelando/property-simulator/internal/simulation"
	"github.com/iwvelando/property-simulator/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for property-simulator.
type Configuration struct {
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
	Simulation simulation.Input `yaml:"simulation"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %s", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// OutputFormat resolves the output format: the override wins over the file,
// and pretty is the default.
func (conf *Configuration) OutputFormat(override string) string {
	if override != "" {
		return override
	}
	if conf.Output.Format != "" {
		return conf.Output.Format
	}
	return constants.OutputFormatPretty
}

// ValidateConfiguration returns warnings about accepted but suspicious
// simulation inputs, as of the given sale date.
func (conf *Configuration) ValidateConfiguration(saleDate time.Time) []string {
	return conf.Simulation.Warnings(saleDate)
}
