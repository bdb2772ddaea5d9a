package config

import (
	"os"

	"github.com/pseudomuto/sqlfront/pkg/consts"
	"github.com/pseudomuto/sqlfront/pkg/format"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads sqlfront.yaml from the working directory when present. A nil
	// config lets commands fall back to the built-in defaults.
	func() (*Config, error) {
		if _, err := os.Stat(consts.ConfigFile); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(consts.ConfigFile)
	},
	func(c *Config) *format.Formatter {
		return c.GetFormatter()
	},
))
