// Package config provides configuration structures and loading for titlex.
package config

// Config represents the complete application configuration.
type Config struct {
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
}

// PathsConfig locates the input tree and the output file.
type PathsConfig struct {
	BaseDir    string `yaml:"base_dir" mapstructure:"base_dir"`       // empty means the executable's directory
	InputDir   string `yaml:"input_dir" mapstructure:"input_dir"`     // relative to BaseDir unless absolute
	OutputFile string `yaml:"output_file" mapstructure:"output_file"` // relative to BaseDir unless absolute
	TargetFile string `yaml:"target_file" mapstructure:"target_file"` // bare file name matched during discovery
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// OutputConfig controls terminal presentation.
type OutputConfig struct {
	Progress bool `yaml:"progress" mapstructure:"progress"`
	Color    bool `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with the fixed default paths.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			InputDir:   "title_raw",
			OutputFile: "title.json",
			TargetFile: "Title.xml",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Output: OutputConfig{
			Progress: true,
			Color:    true,
		},
	}
}
