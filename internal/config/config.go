// Package config contains the loader and strongly typed model for setup.yaml.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	goversion "github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

// Config describes everything the bootstrap pipeline needs to prepare the
// application runtime. Every field has a built-in default (see Default), so
// a setup.yaml file is optional and may override only what it wants.
type Config struct {
	// Project is the short project name shown in the summary banner.
	Project string `yaml:"project"`
	// Python describes the required interpreter and minimum version.
	Python PythonConfig `yaml:"python"`
	// Venv configures the virtual environment location.
	Venv VenvConfig `yaml:"venv"`
	// Dependencies lists the packages installed into the virtual environment.
	Dependencies []Dependency `yaml:"dependencies,omitempty"`
	// InstallTimeout bounds the dependency install (e.g. "10m").
	InstallTimeout string `yaml:"installTimeout,omitempty"`
	// Directories lists paths created relative to the working directory.
	Directories []string `yaml:"directories,omitempty"`
	// Secrets configures the local credentials file and its template.
	Secrets SecretsConfig `yaml:"secrets"`
	// Services lists optional auxiliary services probed on PATH.
	Services []ServiceConfig `yaml:"services,omitempty"`
	// Downstream describes the application's own initialization entry point.
	Downstream *DownstreamConfig `yaml:"downstream,omitempty"`
	// Summary configures the next-step guidance printed on success.
	Summary SummaryConfig `yaml:"summary"`
}

// PythonConfig identifies the interpreter and the minimum accepted version.
type PythonConfig struct {
	// Interpreter is the command looked up on PATH (e.g. python3).
	Interpreter string `yaml:"interpreter,omitempty"`
	// MinVersion is the minimum accepted interpreter version (e.g. "3.11").
	MinVersion string `yaml:"minVersion,omitempty"`
}

// VenvConfig configures the provisioned virtual environment.
type VenvConfig struct {
	// Dir is the virtual environment directory, relative to the working directory.
	Dir string `yaml:"dir,omitempty"`
}

// Dependency is one entry of the install manifest.
type Dependency struct {
	// Name is the package name as known to the registry.
	Name string `yaml:"name"`
	// Constraint is an optional version constraint (e.g. ">=0.104").
	Constraint string `yaml:"constraint,omitempty"`
}

// Spec renders the dependency as a single installer argument.
func (d Dependency) Spec() string {
	return d.Name + d.Constraint
}

// SecretsConfig configures the create-only secrets file bootstrap.
type SecretsConfig struct {
	// File is the secrets file path (never overwritten once present).
	File string `yaml:"file,omitempty"`
	// Template is the file copied to File on first run.
	Template string `yaml:"template,omitempty"`
	// Required lists credential keys reported when still empty after seeding.
	Required []string `yaml:"required,omitempty"`
}

// ServiceConfig describes one optional auxiliary service.
type ServiceConfig struct {
	// Name is the human-readable service name (e.g. postgresql).
	Name string `yaml:"name"`
	// Probe is the executable whose PATH presence indicates the service.
	Probe string `yaml:"probe"`
	// Hints maps a platform family (GOOS) to an install command suggestion.
	Hints map[string]string `yaml:"hints,omitempty"`
	// Init is an optional one-time setup action offered interactively.
	Init *InitAction `yaml:"init,omitempty"`
}

// InitAction is a confirmation-gated one-time setup command.
type InitAction struct {
	// Prompt is the yes/no question shown before running the command.
	Prompt string `yaml:"prompt"`
	// Command is the argv executed on an affirmative answer.
	Command []string `yaml:"command"`
}

// DownstreamConfig describes the application-owned initializer invoked last.
type DownstreamConfig struct {
	// Name labels the entry point in logs and the summary.
	Name string `yaml:"name,omitempty"`
	// Prompt is the yes/no question shown before invoking the entry point.
	Prompt string `yaml:"prompt"`
	// Command is the argv executed inside the provisioned environment.
	// The first element is resolved through the environment's bin directory.
	Command []string `yaml:"command"`
}

// SummaryConfig holds the guidance printed after a fully successful run.
type SummaryConfig struct {
	// NextSteps is the ordered list of follow-up instructions.
	NextSteps []string `yaml:"nextSteps,omitempty"`
}

// InstallTimeoutOrDefault parses InstallTimeout, falling back to 10 minutes.
func (c *Config) InstallTimeoutOrDefault() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.InstallTimeout))
	if err != nil || d <= 0 {
		return 10 * time.Minute
	}
	return d
}

// Load reads the manifest at path, layered over the built-in defaults.
// A missing file is not an error when optional is true; the defaults apply.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && optional {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the manifest for values the pipeline cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Python.Interpreter) == "" {
		return fmt.Errorf("python.interpreter must not be empty")
	}
	if _, err := goversion.NewVersion(c.Python.MinVersion); err != nil {
		return fmt.Errorf("python.minVersion %q: %w", c.Python.MinVersion, err)
	}
	if strings.TrimSpace(c.Venv.Dir) == "" {
		return fmt.Errorf("venv.dir must not be empty")
	}
	for i, dep := range c.Dependencies {
		if strings.TrimSpace(dep.Name) == "" {
			return fmt.Errorf("dependencies[%d]: name must not be empty", i)
		}
	}
	if c.InstallTimeout != "" {
		if _, err := time.ParseDuration(c.InstallTimeout); err != nil {
			return fmt.Errorf("installTimeout %q: %w", c.InstallTimeout, err)
		}
	}
	if strings.TrimSpace(c.Secrets.File) == "" {
		return fmt.Errorf("secrets.file must not be empty")
	}
	for i, svc := range c.Services {
		if strings.TrimSpace(svc.Name) == "" {
			return fmt.Errorf("services[%d]: name must not be empty", i)
		}
		if strings.TrimSpace(svc.Probe) == "" {
			return fmt.Errorf("service %q: probe must not be empty", svc.Name)
		}
		if svc.Init != nil && len(svc.Init.Command) == 0 {
			return fmt.Errorf("service %q: init.command must not be empty", svc.Name)
		}
	}
	if c.Downstream != nil && len(c.Downstream.Command) == 0 {
		return fmt.Errorf("downstream.command must not be empty")
	}
	return nil
}
