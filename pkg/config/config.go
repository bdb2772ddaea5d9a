package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfront/pkg/consts"
	"github.com/pseudomuto/sqlfront/pkg/dialect"
	"github.com/pseudomuto/sqlfront/pkg/format"
	"github.com/pseudomuto/sqlfront/pkg/parser"
	"gopkg.in/yaml.v3"
)

type (
	// Format holds the settings used by the fmt command.
	Format struct {
		// IndentSize is the number of spaces per indentation level
		IndentSize int `yaml:"indent_size,omitempty"`

		// UppercaseKeywords controls clause keyword casing. Defaults to true.
		UppercaseKeywords *bool `yaml:"uppercase_keywords,omitempty"`

		// AlignColumns aligns data types in CREATE TABLE. Defaults to true.
		AlignColumns *bool `yaml:"align_columns,omitempty"`
	}

	// Config represents the sqlfront project configuration.
	Config struct {
		// Dialect names the SQL dialect used to tokenize and parse input
		Dialect string `yaml:"dialect"`

		// RecursionLimit bounds the nesting depth accepted by the parser
		RecursionLimit int `yaml:"recursion_limit"`

		// Format contains formatter settings
		Format Format `yaml:"format"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader.
//
// Missing values are filled from pkg/consts. The dialect name is validated
// against the built-in dialects so that a typo fails at load time rather
// than on the first parse.
//
// Example:
//
//	yamlData := `
//	dialect: postgres
//	format:
//	  indent_size: 4
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Dialect: %s\n", cfg.Dialect)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Dialect == "" {
		cfg.Dialect = consts.DefaultDialect
	}
	if cfg.RecursionLimit == 0 {
		cfg.RecursionLimit = consts.DefaultRecursionLimit
	}
	if cfg.Format.IndentSize == 0 {
		cfg.Format.IndentSize = consts.DefaultIndentSize
	}

	if cfg.RecursionLimit < 0 {
		return nil, errors.Errorf("recursion_limit must be positive, got %d", cfg.RecursionLimit)
	}
	if cfg.Format.IndentSize < 0 {
		return nil, errors.Errorf("format.indent_size must be positive, got %d", cfg.Format.IndentSize)
	}
	if _, err := dialect.Lookup(cfg.Dialect); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// GetDialect returns the configured dialect. A nil config yields the
// default dialect.
func (c *Config) GetDialect() (dialect.Dialect, error) {
	if c == nil {
		return dialect.Lookup(consts.DefaultDialect)
	}
	return dialect.Lookup(c.Dialect)
}

// GetParser returns a parser for the configured dialect and recursion limit.
func (c *Config) GetParser() (*parser.Parser, error) {
	d, err := c.GetDialect()
	if err != nil {
		return nil, err
	}

	if c == nil {
		return parser.New(d), nil
	}
	return parser.New(d, parser.WithRecursionLimit(c.RecursionLimit)), nil
}

// GetFormatter returns a formatter using the configured options. A nil
// config yields format.Defaults.
func (c *Config) GetFormatter() *format.Formatter {
	opts := format.Defaults
	if c == nil {
		return format.New(opts)
	}

	opts.IndentSize = c.Format.IndentSize
	if c.Format.UppercaseKeywords != nil {
		opts.UppercaseKeywords = *c.Format.UppercaseKeywords
	}
	if c.Format.AlignColumns != nil {
		opts.AlignColumns = *c.Format.AlignColumns
	}
	return format.New(opts)
}
