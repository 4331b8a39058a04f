package calc

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type EmitMode string

const (
	EmitResult EmitMode = "result"
	EmitAST    EmitMode = "ast"
	EmitTable  EmitMode = "table"
	EmitIR     EmitMode = "ir"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
)

// Config controls what the command line driver prints.
type Config struct {
	Emit    EmitMode     `yaml:"emit"`
	Format  OutputFormat `yaml:"format"`
	Verbose bool         `yaml:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		Emit:   EmitResult,
		Format: FormatText,
	}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their default value and unknown fields are rejected.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: open %s", path)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "config: %s", path)
	}

	return cfg, nil
}

func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parse")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Emit {
	case EmitResult, EmitAST, EmitTable, EmitIR:
	default:
		return fmt.Errorf("unknown emit mode %q", c.Emit)
	}

	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}

	if c.Emit == EmitIR && c.Format == FormatYAML {
		return fmt.Errorf("emit mode %q only supports the %q format", EmitIR, FormatText)
	}

	return nil
}
