package structure

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/strata/layout"
	"github.com/tsawler/strata/tables"
)

// Config aggregates every tunable threshold of the analysis pipeline into a
// single structure with documented defaults. All fields can be set from a
// YAML file; absent keys keep their defaults.
type Config struct {
	// Columns configures column band detection.
	Columns layout.ColumnConfig `yaml:"columns"`

	// ReadingOrder configures the reading-order sequencer.
	ReadingOrder layout.SequencerConfig `yaml:"reading_order"`

	// Paragraphs configures paragraph/heading building.
	Paragraphs layout.ParagraphConfig `yaml:"paragraphs"`

	// Headings configures heading level classification.
	Headings layout.HeadingConfig `yaml:"headings"`

	// Figures configures figure caption detection.
	Figures layout.FigureConfig `yaml:"figures"`

	// Equations configures equation span detection.
	Equations layout.EquationConfig `yaml:"equations"`

	// Tables configures table grid detection.
	Tables tables.Config `yaml:"tables"`

	// MinTextLength is the absolute floor on total extracted text length;
	// below it the document is classified as scanned.
	// Default: 100
	MinTextLength int `yaml:"min_text_length"`

	// MinCharsPerPage is the per-page average floor for the scanned
	// classification.
	// Default: 50
	MinCharsPerPage float64 `yaml:"min_chars_per_page"`

	// ScannedNotice is the paragraph text emitted for scanned documents.
	ScannedNotice string `yaml:"scanned_notice"`

	// Workers bounds page-level parallelism (default: GOMAXPROCS).
	Workers int `yaml:"workers"`

	// Logger for debug messages. Defaults to slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns a configuration with sensible defaults for typical
// document analysis.
func DefaultConfig() Config {
	return Config{
		Columns:         layout.DefaultColumnConfig(),
		ReadingOrder:    layout.DefaultSequencerConfig(),
		Paragraphs:      layout.DefaultParagraphConfig(),
		Headings:        layout.DefaultHeadingConfig(),
		Figures:         layout.DefaultFigureConfig(),
		Equations:       layout.DefaultEquationConfig(),
		Tables:          tables.DefaultConfig(),
		MinTextLength:   100,
		MinCharsPerPage: 50,
		ScannedNotice: "This document appears to be scanned. " +
			"No text structure could be recovered from its text layer.",
		Workers: runtime.GOMAXPROCS(0),
	}
}

// LoadConfig reads a YAML configuration file over the defaults: keys absent
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}

	config.applyDefaults()
	return config, nil
}

// applyDefaults fills fields that must never be zero.
func (c *Config) applyDefaults() {
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
