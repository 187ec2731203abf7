/*
Copyright © 2024 the WingWalker authors.
This file is part of WingWalker.

WingWalker is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

WingWalker is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with WingWalker.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package config holds the runtime configuration of the wingwalker command.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds runtime configuration for the wingwalker command.
// Values are populated from wingwalker.toml, WINGWALKER_* env vars, and
// CLI flags.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	// Workers is the number of sections built concurrently; 0 means one
	// per CPU.
	Workers int    `mapstructure:"workers"`
	Output  string `mapstructure:"output"`
	// Request holds an inline wing request, used when no request file
	// is given on the command line.
	Request map[string]interface{} `mapstructure:"request"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("workers", 0)
	viper.SetDefault("output", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("config: workers must not be negative, got %d", cfg.Workers)
	}
	return cfg, nil
}
