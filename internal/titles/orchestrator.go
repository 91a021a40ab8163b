package titles

import (
	"fmt"
	"time"

	"github.com/dbsmedya/titlex/internal/config"
	"github.com/dbsmedya/titlex/internal/logger"
)

// Reporter receives progress callbacks during a run.
type Reporter interface {
	OnDiscoveryComplete(files int)
	OnFileExtracted(path string)
	OnComplete(result *Result)
	OnFailed(err error)
}

type nopReporter struct{}

func (nopReporter) OnDiscoveryComplete(int) {}
func (nopReporter) OnFileExtracted(string)  {}
func (nopReporter) OnComplete(*Result)      {}
func (nopReporter) OnFailed(error)          {}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.reporter = r
		}
	}
}

// Orchestrator runs discovery, extraction and writing in sequence. The
// first error aborts the run.
type Orchestrator struct {
	inputDir   string
	outputFile string
	targetFile string
	logger     *logger.Logger
	reporter   Reporter
}

// NewOrchestrator creates an orchestrator for the resolved paths in cfg.
func NewOrchestrator(cfg *config.Config, log *logger.Logger, opts ...Option) (*Orchestrator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}

	target := cfg.Paths.TargetFile
	if target == "" {
		target = DefaultTargetFile
	}

	o := &Orchestrator{
		inputDir:   cfg.Paths.InputDir,
		outputFile: cfg.Paths.OutputFile,
		targetFile: target,
		logger:     log,
		reporter:   nopReporter{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Collect discovers and extracts every document without writing output.
func (o *Orchestrator) Collect() ([]Entry, *Result, error) {
	entries, result, err := o.collect()
	if err != nil {
		o.reporter.OnFailed(err)
		return nil, nil, err
	}
	o.reporter.OnComplete(result)
	return entries, result, nil
}

// Run collects every entry and, only once all documents parsed, overwrites
// the output file.
func (o *Orchestrator) Run() (*Result, error) {
	entries, result, err := o.collect()
	if err != nil {
		o.reporter.OnFailed(err)
		return nil, err
	}

	if err := WriteFile(o.outputFile, entries); err != nil {
		o.reporter.OnFailed(err)
		return nil, err
	}
	result.Written = true
	o.finish(result)

	o.logger.Infow("Wrote titles",
		"output", o.outputFile,
		"entries", result.Entries,
		"duration", result.Duration,
	)
	o.reporter.OnComplete(result)
	return result, nil
}

func (o *Orchestrator) collect() ([]Entry, *Result, error) {
	result := &Result{
		InputDir:   o.inputDir,
		OutputFile: o.outputFile,
		StartedAt:  time.Now(),
	}

	files, err := Discover(o.inputDir, o.targetFile)
	if err != nil {
		return nil, nil, err
	}
	result.FilesFound = len(files)
	result.Files = files
	o.reporter.OnDiscoveryComplete(len(files))

	o.logger.Infow("Discovered title documents",
		"input", o.inputDir,
		"target", o.targetFile,
		"files", len(files),
	)

	entries := make([]Entry, 0, len(files))
	for _, path := range files {
		entry, err := Extract(path)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, entry)
		o.reporter.OnFileExtracted(path)
		o.logger.WithFile(path).Debugw("Extracted title",
			"name", entry.Name,
			"rareType", entry.RareType,
		)
	}

	result.Entries = len(entries)
	result.Rarities = RarityTally(entries)
	o.finish(result)
	return entries, result, nil
}

func (o *Orchestrator) finish(result *Result) {
	result.CompletedAt = time.Now()
	result.Duration = result.CompletedAt.Sub(result.StartedAt)
}
