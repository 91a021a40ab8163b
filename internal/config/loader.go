package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the specified file path.
// It supports YAML files and performs environment variable substitution.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadOptional behaves like Load but falls back to DefaultConfig when the
// file does not exist. Any other read or parse error is returned.
func LoadOptional(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return Load(configPath)
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	substituteEnvVars(cfg)
	return cfg, nil
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns in path-like fields.
func substituteEnvVars(cfg *Config) {
	cfg.Paths.BaseDir = expandEnvVar(cfg.Paths.BaseDir)
	cfg.Paths.InputDir = expandEnvVar(cfg.Paths.InputDir)
	cfg.Paths.OutputFile = expandEnvVar(cfg.Paths.OutputFile)
	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat, inputDir, outputFile string, quiet bool) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if inputDir != "" {
		c.Paths.InputDir = inputDir
	}
	if outputFile != "" {
		c.Paths.OutputFile = outputFile
	}
	if quiet {
		c.Output.Progress = false
	}
}

// executablePath is swapped in tests.
var executablePath = os.Executable

// Resolve makes InputDir and OutputFile absolute. Relative paths are joined
// to BaseDir, which itself defaults to the directory holding the running
// executable.
func (c *Config) Resolve() error {
	base := c.Paths.BaseDir
	if base == "" {
		exe, err := executablePath()
		if err != nil {
			return fmt.Errorf("failed to locate executable: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		base = filepath.Dir(exe)
	}

	base, err := filepath.Abs(base)
	if err != nil {
		return fmt.Errorf("failed to resolve base_dir: %w", err)
	}
	c.Paths.BaseDir = base

	if !filepath.IsAbs(c.Paths.InputDir) {
		c.Paths.InputDir = filepath.Join(base, c.Paths.InputDir)
	}
	if !filepath.IsAbs(c.Paths.OutputFile) {
		c.Paths.OutputFile = filepath.Join(base, c.Paths.OutputFile)
	}
	return nil
}
