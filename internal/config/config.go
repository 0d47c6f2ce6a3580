// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and persists the Rentmaster configuration. Values
// are resolved by viper from (in order of precedence) CLI flags,
// RENTMASTER_* environment variables, an explicit --config file, and the
// standard user/system config locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the root configuration shape for the client.
type Config struct {
	Server struct {
		// URL is the base endpoint of the rental API, e.g.
		// "http://localhost:8000/api".
		URL string `mapstructure:"url" yaml:"url"`
	} `mapstructure:"server" yaml:"server"`
	Database struct {
		// Type selects the local store backend (sqlite, postgres, mysql).
		Type string `mapstructure:"type" yaml:"type"`
		// Dsn is the connection string for the local store.
		Dsn string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`
	Language string `mapstructure:"language" yaml:"language"`
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Rentmaster")
		default: // Linux, macOS, etc.
			configDir = "/etc/rentmaster"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "rentmaster")
	}

	return filepath.Join(configDir, "rentmaster.yaml"), nil
}

// LoadConfig resolves the configuration for a command invocation. An
// explicit config file path (from the --config flag) takes precedence over
// the standard search locations.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("rentmaster")
	v.SetConfigType("yaml")

	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".") // Look for rentmaster.yaml in current dir

	// A missing config file is reported to the caller after the defaults
	// have been applied, so first runs still get a usable configuration.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			notFound = err
		} else {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("rentmaster")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile persists the configuration to the user or system config
// path, creating the directory if needed.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the config sits next to the session database and may name it.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}
