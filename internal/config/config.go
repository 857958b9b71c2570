// SPDX-License-Identifier: MIT

// Package config resolves lvcorr run settings from defaults, an optional
// config file, LVCORR_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/lvcorr/correlation"
	"github.com/katalvlaran/lvcorr/dataset"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LVCORR_COLUMNS_FIRST.
const EnvPrefix = "LVCORR"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Configuration keys.
const (
	KeyFile         = "file"
	KeyFirstColumn  = "columns.first"
	KeySecondColumn = "columns.second"
	KeyMethods      = "methods"
	KeyFormat       = "format"
	KeyPlot         = "plot"
	KeyDelimiter    = "delimiter"
	KeyMaxRows      = "max_rows"
	KeyLogLevel     = "log.level"
	KeyLogEncoding  = "log.encoding"
)

// ErrInvalid marks a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved run configuration.
type Config struct {
	File      string   `mapstructure:"file"`
	Columns   Columns  `mapstructure:"columns"`
	Methods   []string `mapstructure:"methods"`
	Format    string   `mapstructure:"format"`
	Plot      string   `mapstructure:"plot"`
	Delimiter string   `mapstructure:"delimiter"`
	MaxRows   int      `mapstructure:"max_rows"`
	Log       Log      `mapstructure:"log"`
}

// Columns names the two columns to correlate.
type Columns struct {
	First  string `mapstructure:"first"`
	Second string `mapstructure:"second"`
}

// Log configures the CLI logger.
type Log struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyFile, "")
	v.SetDefault(KeyFirstColumn, "")
	v.SetDefault(KeySecondColumn, "")
	v.SetDefault(KeyMethods, []string{"linear", "spearman", "kendall"})
	v.SetDefault(KeyFormat, FormatText)
	v.SetDefault(KeyPlot, "")
	v.SetDefault(KeyDelimiter, ",")
	v.SetDefault(KeyMaxRows, 0)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogEncoding, "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"file":      KeyFile,
	"first":     KeyFirstColumn,
	"second":    KeySecondColumn,
	"method":    KeyMethods,
	"format":    KeyFormat,
	"plot":      KeyPlot,
	"delimiter": KeyDelimiter,
	"max-rows":  KeyMaxRows,
	"log-level": KeyLogLevel,
}

// BindFlags binds every known flag present in fs to its key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}

	return nil
}

// Load reads the optional config file at path and returns the validated
// configuration.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks format, delimiter, row limit and method keys.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalid, c.Format, FormatText, FormatJSON)
	}
	if !utf8.ValidString(c.Delimiter) || utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("%w: delimiter %q must be a single character", ErrInvalid, c.Delimiter)
	}
	if !dataset.ValidDelimiter(c.DelimiterRune()) {
		return fmt.Errorf("%w: delimiter %q cannot be a quote or line break", ErrInvalid, c.Delimiter)
	}
	if c.MaxRows < 0 {
		return fmt.Errorf("%w: max_rows %d", ErrInvalid, c.MaxRows)
	}
	if _, err := correlation.LookupAll(c.Methods); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// DelimiterRune returns the configured field separator.
func (c Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)

	return r
}

// Evaluators resolves the configured methods; nil methods mean all.
func (c Config) Evaluators() ([]correlation.Evaluator, error) {
	return correlation.LookupAll(c.Methods)
}
