/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package core

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const defaultPrefix = "VPSUBMIT_"
const defaultDelimiter = "."

const configFileFlag = "configfile"
const defaultConfigFile = "vpsubmit.yaml"

// LoadConfigMap populates the config map in order of increasing precedence:
// flag defaults, the config file, environment variables and flags set on the command line.
func LoadConfigMap(configMap *koanf.Koanf, flags *pflag.FlagSet) error {
	if err := loadDefaultsFromFlagset(configMap, flags); err != nil {
		return err
	}

	if err := loadFromFile(configMap, resolveConfigFilePath(flags)); err != nil {
		return err
	}

	if err := loadFromEnv(configMap); err != nil {
		return err
	}

	return loadFromFlagSet(configMap, flags)
}

// UnmarshalConfig unmarshals the part of the config map at the given path into target.
// An empty path unmarshals the complete map.
func UnmarshalConfig(configMap *koanf.Koanf, path string, target interface{}) error {
	return configMap.UnmarshalWithConf(path, target, koanf.UnmarshalConf{
		FlatPaths: false,
	})
}

func loadFromFile(configMap *koanf.Koanf, filepath string) error {
	if filepath == "" {
		return nil
	}
	configFileProvider := file.Provider(filepath)
	// a missing config file is fine, the defaults apply
	if err := configMap.Load(configFileProvider, yaml.Parser()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// loadFromEnv loads the VPSUBMIT_ prefixed environment variables. Values are taken as-is:
// none of the config keys is a list, and a vp_token or API key may contain commas.
func loadFromEnv(configMap *koanf.Koanf) error {
	// errors can't occur for this provider
	return configMap.Load(env.Provider(defaultPrefix, defaultDelimiter, envKeyToConfigKey), nil)
}

// envKeyToConfigKey maps an environment variable name (e.g. VPSUBMIT_HOLDER_DID) to its config key (holder.did).
func envKeyToConfigKey(envKey string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(envKey, defaultPrefix)), "_", defaultDelimiter)
}

// loadDefaultsFromFlagset loads all flags into the (empty) config map, so the flag defaults act as config defaults.
func loadDefaultsFromFlagset(configMap *koanf.Koanf, flags *pflag.FlagSet) error {
	return configMap.Load(posflag.Provider(flags, defaultDelimiter, configMap), nil)
}

func loadFromFlagSet(configMap *koanf.Koanf, flags *pflag.FlagSet) error {
	return configMap.Load(posflag.Provider(flags, defaultDelimiter, configMap), nil)
}

// resolveConfigFilePath resolves the path of the config file using the following sources:
// 1. commandline params (using the given flags)
// 2. environment vars,
// 3. default location.
func resolveConfigFilePath(flags *pflag.FlagSet) string {
	k := koanf.New(defaultDelimiter)

	// load env flags
	// can't return error
	_ = k.Load(env.Provider(defaultPrefix, defaultDelimiter, envKeyToConfigKey), nil)

	// this also loads the default flag value, unless the env var already set it
	_ = k.Load(posflag.Provider(flags, defaultDelimiter, k), nil)

	return k.String(configFileFlag)
}
