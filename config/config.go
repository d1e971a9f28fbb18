package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	OutputText string = "text"
	OutputJSON string = "json"
)

var (
	ErrBlankConfigPath    error = errors.New("config path cannot be blank")
	ErrUnsupportedFormat  error = errors.New("unsupported config format")
	ErrInvalidLogFormat   error = errors.New("logging.format must be console or json")
	ErrInvalidOutput      error = errors.New("output.format must be text or json")
	ErrNegativeLineLength error = errors.New("stream.max_line_length cannot be negative")
	ErrInvalidBufferSize  error = errors.New("stream.buffer_size must be positive")
)

// Config represents the ircparse configuration
type Config struct {
	Logging Logging `yaml:"logging" toml:"logging"`
	Stream  Stream  `yaml:"stream" toml:"stream"`
	Output  Output  `yaml:"output" toml:"output"`
}

type Logging struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Stream controls how a stream of lines is read and how malformed lines are
// treated.
type Stream struct {
	// Strict stops at the first malformed line instead of logging and
	// skipping it.
	Strict bool `yaml:"strict" toml:"strict"`
	// MaxLineLength is in bytes, without the terminator. Zero means unlimited.
	MaxLineLength int `yaml:"max_line_length" toml:"max_line_length"`
	BufferSize    int `yaml:"buffer_size" toml:"buffer_size"`
}

type Output struct {
	Format string `yaml:"format" toml:"format"`
	Tags   bool   `yaml:"tags" toml:"tags"`
	Source bool   `yaml:"source" toml:"source"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
		Stream: Stream{
			Strict:        false,
			MaxLineLength: 0,
			BufferSize:    64,
		},
		Output: Output{
			Format: OutputText,
		},
	}
}

// LoadConfig reads a YAML or TOML file, chosen by extension, over the
// defaults and validates the result.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, ErrBlankConfigPath
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	case ".toml":
		err = toml.Unmarshal(data, config)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", configPath)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return ErrInvalidLogFormat
	}
	switch strings.ToLower(c.Output.Format) {
	case OutputText, OutputJSON:
	default:
		return ErrInvalidOutput
	}
	if c.Stream.MaxLineLength < 0 {
		return ErrNegativeLineLength
	}
	if c.Stream.BufferSize <= 0 {
		return ErrInvalidBufferSize
	}
	return nil
}
