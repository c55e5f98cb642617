package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defines the configuration keys. They double as flag names
const (
	KeyX      = "x"
	KeyY      = "y"
	KeyDryRun = "dry-run"
	KeyDebug  = "debug"
)

const envPrefix = "MONITORCTL"

// DefaultX probes just right of a 1920 pixel wide primary display, where a secondary monitor usually sits
const (
	DefaultX = 1920 + 100
	DefaultY = 0
)

// Config is the resolved runtime configuration
type Config struct {
	X      int32
	Y      int32
	DryRun bool
	Debug  bool
}

// Flags registers the configuration flags onto fs
func Flags(fs *pflag.FlagSet) {
	fs.Int32(KeyX, DefaultX, "x coordinate (virtual screen) used to locate the monitor")
	fs.Int32(KeyY, DefaultY, "y coordinate (virtual screen) used to locate the monitor")
	fs.Bool(KeyDryRun, false, "do not perform any hardware i/o")
	fs.Bool(KeyDebug, false, "enable debug logging")
}

// New returns a viper instance bound to fs, the environment and the registry defaults.
// Precedence is flag, then environment, then registry, then built-in default
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "cannot bind flags")
	}

	defaults, err := registryDefaults()
	if err != nil {
		return nil, err
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	// any non-empty DRY_RUN enables dry run, flags and MONITORCTL_DRY_RUN still take precedence
	if os.Getenv("DRY_RUN") != "" {
		v.SetDefault(KeyDryRun, true)
	}

	return v, nil
}

// Load reads the resolved configuration out of v
func Load(v *viper.Viper) Config {
	return Config{
		X:      v.GetInt32(KeyX),
		Y:      v.GetInt32(KeyY),
		DryRun: v.GetBool(KeyDryRun),
		Debug:  v.GetBool(KeyDebug),
	}
}
