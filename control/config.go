// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Replay memory configuration: defaults, validation and flag binding.

package control

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/replaymem/api"
	"github.com/momentics/replaymem/replay"
)

// DefaultCapacity is the capacity used when none is configured.
const DefaultCapacity = 10000

// Config describes one replay memory and its logging.
type Config struct {
	// Capacity is the fixed number of slots. Must be positive.
	Capacity int
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string
}

// DefaultConfig returns a config with default capacity and info logging.
func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
		LogLevel: "info",
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var result error
	if c.Capacity <= 0 {
		result = multierror.Append(result, api.InvalidCapacity(c.Capacity))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid log level: %w", err))
	}
	return result
}

// BindFlags registers the config fields on fs, using c's values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Capacity, "capacity", c.Capacity, "number of slots in the replay memory")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// NewLogger builds a production zap logger at the configured level.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}
	zapcfg := zap.NewProductionConfig()
	zapcfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	zapcfg.Encoding = "console"
	zapcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zapcfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

// NewMemory validates cfg and constructs a memory of its capacity.
func NewMemory[T any](cfg Config) (*replay.Memory[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid replay memory config")
	}
	mem, err := replay.New[T](cfg.Capacity)
	if err != nil {
		return nil, errors.Wrapf(err, "create replay memory of capacity %d", cfg.Capacity)
	}
	return mem, nil
}
