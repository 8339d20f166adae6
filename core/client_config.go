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
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const addressFlag = "address"
const clientTimeoutFlag = "timeout"
const apiKeyFlag = "apikey"
const strictModeFlag = "strictmode"
const retriesFlag = "retries"
const verbosityFlag = "verbosity"
const loggerFormatFlag = "loggerformat"
const trustStoreFileFlag = "truststorefile"
const expectStatusFlag = "expectstatus"

// DefaultAddress is the address of a locally running cloud agent.
const DefaultAddress = "http://localhost:8085"
const defaultClientTimeout = 10 * time.Second
const defaultLogLevel = "info"
const defaultLoggerFormat = "text"
const defaultRetries = 1

// ClientConfig has the settings for talking to the remote agent, and the global logging settings.
type ClientConfig struct {
	Address      string        `koanf:"address"`
	Timeout      time.Duration `koanf:"timeout"`
	APIKey       string        `koanf:"apikey"`
	Strictmode   bool          `koanf:"strictmode"`
	Retries      uint          `koanf:"retries"`
	Verbosity    string        `koanf:"verbosity"`
	LoggerFormat string        `koanf:"loggerformat"`
	// TrustStoreFile is a PEM file with the CA certificates trusted for HTTPS connections to the agent.
	// The system roots are used when empty.
	TrustStoreFile string `koanf:"truststorefile"`
	// ExpectStatus is the HTTP status code the agent is expected to respond with. Any other status code fails the submission
	// after it is printed. 0 accepts any status code.
	ExpectStatus int `koanf:"expectstatus"`
	configMap    *koanf.Koanf
}

// NewClientConfig creates a new CLI client config with default values set.
func NewClientConfig() *ClientConfig {
	return &ClientConfig{
		configMap:    koanf.New(defaultDelimiter),
		Address:      DefaultAddress,
		Timeout:      defaultClientTimeout,
		Retries:      defaultRetries,
		Verbosity:    defaultLogLevel,
		LoggerFormat: defaultLoggerFormat,
	}
}

// Load loads the config from the config file, environment variables and the given flags.
// The flags must contain the flags of FlagSet, and may contain flags of other modules;
// their values can be retrieved with Unmarshal.
func (cfg *ClientConfig) Load(flags *pflag.FlagSet) error {
	cfg.configMap = koanf.New(defaultDelimiter)
	if err := LoadConfigMap(cfg.configMap, flags); err != nil {
		return err
	}
	return UnmarshalConfig(cfg.configMap, "", cfg)
}

// Unmarshal unmarshals the config of a module (e.g. 'holder') into the given target.
func (cfg ClientConfig) Unmarshal(path string, target interface{}) error {
	if cfg.configMap == nil || !cfg.configMap.Exists(path) {
		return nil
	}
	return UnmarshalConfig(cfg.configMap, path, target)
}

// FlagSet returns the flags for configuring the client config.
func FlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("client", pflag.ContinueOnError)
	flagSet.String(configFileFlag, defaultConfigFile, "Config file (YAML)")
	flagSet.String(addressFlag, DefaultAddress, "Address of the remote agent. Must contain at least host and port, URL scheme may be omitted. In that case it 'http://' is prepended.")
	flagSet.Duration(clientTimeoutFlag, defaultClientTimeout, "Client time-out when performing remote operations.")
	flagSet.String(apiKeyFlag, "", "API key sent to the agent in the 'apikey' header. Not sent when empty.")
	flagSet.Bool(strictModeFlag, false, "When set, only HTTPS connections to the agent are allowed.")
	flagSet.String(trustStoreFileFlag, "", "PEM file containing the trusted CA certificates for connecting to the agent over HTTPS. If not set, the system's trusted CAs are used.")
	flagSet.Int(expectStatusFlag, 0, "When set, submitting fails (after printing the response) if the agent responds with another HTTP status code.")
	flagSet.Uint(retriesFlag, defaultRetries, "Number of attempts when the agent can't be reached. 1 means no retry.")
	flagSet.String(verbosityFlag, defaultLogLevel, "Log level (trace, debug, info, warn, error)")
	flagSet.String(loggerFormatFlag, defaultLoggerFormat, "Log format (text, json)")
	return flagSet
}

// GetAddress normalizes and gets the address of the remote agent
func (cfg ClientConfig) GetAddress() string {
	addr := cfg.Address
	if !strings.HasPrefix(addr, "http") {
		addr = "http://" + addr
	}
	return strings.TrimSuffix(addr, "/")
}

// ConfigureLogging applies the verbosity and logger format to the standard logrus logger.
func (cfg ClientConfig) ConfigureLogging() error {
	lvl, err := logrus.ParseLevel(cfg.Verbosity)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)

	switch cfg.LoggerFormat {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid formatter: '%s'", cfg.LoggerFormat)
	}
	return nil
}

// redactedKeys holds the config keys of which the value is never printed.
var redactedKeys = []string{apiKeyFlag, "holder.keyhex"}

// PrintConfig returns the effective config as key/value lines, with secrets masked.
func (cfg ClientConfig) PrintConfig() string {
	if cfg.configMap == nil {
		return ""
	}
	printable := koanf.New(defaultDelimiter)
	_ = printable.Merge(cfg.configMap)
	for _, key := range redactedKeys {
		if printable.String(key) != "" {
			_ = printable.Set(key, "<redacted>")
		}
	}
	return printable.Sprint()
}
