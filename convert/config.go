/*
 * config.go, part of parley.
 *
 *
 * Copyright 2026 The parley Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package convert

import (
	"os"
	"path/filepath"

	"github.com/parleyqc/parley/qcschema"
	"github.com/spf13/viper"
)

// Config holds the defaults for a conversion, as read from a configuration file
// and the environment.
type Config struct {
	InputFormat  string `mapstructure:"input_format" json:"input_format"`
	OutputFormat string `mapstructure:"output_format" json:"output_format"`
	BasisSet     string `mapstructure:"basis_set" json:"basis_set"`
	AuxBasisSet  string `mapstructure:"aux_basis_set" json:"aux_basis_set"`
	Driver       string `mapstructure:"driver" json:"driver"`
	Method       string `mapstructure:"method" json:"method"`
	Strict       bool   `mapstructure:"strict" json:"strict"`
}

// EnvPrefix is the prefix of the environment variables overriding the configuration,
// e.g. PARLEY_BASIS_SET.
const EnvPrefix = "PARLEY"

// LoadConfig reads the configuration. If path is empty, parley.yaml is looked for in the
// working directory and then in $HOME/.config/parley; not finding it is not an error.
// An explicit path must exist. Environment variables take precedence over the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("input_format", string(XYZ))
	v.SetDefault("output_format", string(JSON))
	v.SetDefault("basis_set", qcschema.DefaultBasis)
	v.SetDefault("aux_basis_set", "")
	v.SetDefault("driver", string(qcschema.DefaultDriver))
	v.SetDefault("method", qcschema.DefaultMethod)
	v.SetDefault("strict", false)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("parley")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "parley"))
		}
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options turns the configuration into conversion options.
func (C *Config) Options() (*Options, error) {
	from, err := ParseFormat(C.InputFormat)
	if err != nil {
		return nil, err
	}
	to, err := ParseFormat(C.OutputFormat)
	if err != nil {
		return nil, err
	}
	return &Options{
		From: from,
		To:   to,
		Calc: qcschema.Calc{
			Method:   C.Method,
			Basis:    C.BasisSet,
			AuxBasis: C.AuxBasisSet,
			Driver:   qcschema.Driver(C.Driver),
		},
		Strict: C.Strict,
	}, nil
}
