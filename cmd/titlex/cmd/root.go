package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/titlex/internal/config"
	"github.com/dbsmedya/titlex/internal/logger"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile    string
	logLevel   string
	logFormat  string
	inputDir   string
	outputFile string
	quiet      bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "titlex",
	Short: "Extract title names and rarity from Title.xml files into JSON",
	Long: `titlex scans a directory tree for Title.xml documents, reads each
document's name/str and rareType elements, and writes every title to a
single JSON array.

By default it reads title_raw/ and writes title.json, both next to the
titlex executable. Running titlex without a subcommand performs the
extraction.

A run is all-or-nothing: the first missing name or malformed document
aborts it and the output file is left untouched.`,
	Version:      Version,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runExtract,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "titlex.yaml",
		"Path to configuration file (optional unless set explicitly)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Path overrides
	rootCmd.PersistentFlags().StringVarP(&inputDir, "input", "i", "",
		"Override input directory (default title_raw next to the executable)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "",
		"Override output file (default title.json next to the executable)")

	// Presentation
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"Disable the progress bar")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel   string
	LogFormat  string
	InputDir   string
	OutputFile string
	Quiet      bool
	NoColor    bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		InputDir:   inputDir,
		OutputFile: outputFile,
		Quiet:      quiet,
		NoColor:    noColor,
	}
}

// loadConfig loads, overrides, validates and resolves the configuration.
// The default config file may be absent; an explicitly passed one may not.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile := GetConfigFile()

	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.LoadOptional(configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.InputDir, overrides.OutputFile, overrides.Quiet)
	if overrides.NoColor {
		cfg.Output.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Resolve(); err != nil {
		return nil, err
	}

	setColor(colorEnabled(cmd.OutOrStdout(), cfg.Output.Color))
	return cfg, nil
}

// setup loads configuration and builds the logger shared by every command.
func setup(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}
