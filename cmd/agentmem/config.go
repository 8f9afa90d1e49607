// Config loading for the agentmem CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/agentmem/internal/paths"
	"github.com/mesh-intelligence/agentmem/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "AGENTMEM"

	cfgKeyDataDir            = "data_dir"
	cfgKeyDBName             = "db_name"
	cfgKeyEnforceForeignKeys = "enforce_foreign_keys"
	cfgKeyBusyTimeoutMS      = "busy_timeout_ms"
	cfgKeyLogLevel           = "log_level"

	defaultLogLevel = "warn"
)

// configFile is the structure written to a fresh config.yaml. data_dir is
// left out so the flag, environment and platform default stay in effect.
type configFile struct {
	DBName             string `yaml:"db_name"`
	EnforceForeignKeys bool   `yaml:"enforce_foreign_keys"`
	BusyTimeoutMS      int    `yaml:"busy_timeout_ms"`
	LogLevel           string `yaml:"log_level"`
}

// loadConfig reads config.yaml from configDir. A missing directory or file is
// not an error; defaults apply. Values can be overridden by AGENTMEM_*
// environment variables.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDBName, types.DefaultDBName)
	v.SetDefault(cfgKeyEnforceForeignKeys, false)
	v.SetDefault(cfgKeyBusyTimeoutMS, types.DefaultBusyTimeoutMS)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// storeConfig builds the Store configuration from the loaded settings.
func storeConfig(v *viper.Viper, dataDir string) types.Config {
	return types.Config{
		DataDir:            dataDir,
		DBName:             v.GetString(cfgKeyDBName),
		EnforceForeignKeys: v.GetBool(cfgKeyEnforceForeignKeys),
		BusyTimeoutMS:      v.GetInt(cfgKeyBusyTimeoutMS),
	}
}

// ensureDefaultConfigFile creates configDir and writes a default config.yaml
// if none exists. An existing file is left untouched.
func ensureDefaultConfigFile(configDir string) (bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	path := paths.ConfigFile(configDir)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		DBName:        types.DefaultDBName,
		BusyTimeoutMS: types.DefaultBusyTimeoutMS,
		LogLevel:      defaultLogLevel,
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# agentmem configuration\n# data_dir: /path/to/catalog/dir\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
