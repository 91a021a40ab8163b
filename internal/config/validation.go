package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if err := c.validatePaths(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateLogging(); err != nil {
		errors = append(errors, err...)
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validatePaths() ValidationErrors {
	var errors ValidationErrors

	if c.Paths.InputDir == "" {
		errors = append(errors, ValidationError{
			Field:   "paths.input_dir",
			Message: "input_dir is required",
		})
	}

	if c.Paths.OutputFile == "" {
		errors = append(errors, ValidationError{
			Field:   "paths.output_file",
			Message: "output_file is required",
		})
	}

	target := c.Paths.TargetFile
	switch {
	case target == "":
		errors = append(errors, ValidationError{
			Field:   "paths.target_file",
			Message: "target_file is required",
		})
	case target == "." || target == ".." || target != filepath.Base(target) || strings.ContainsAny(target, `/\`):
		errors = append(errors, ValidationError{
			Field:   "paths.target_file",
			Message: "target_file must be a file name, not a path",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
