// Config loading for the ifddump CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys; flags and IFDDUMP_* env vars override them.
	cfgKeyMaxDepth = "max_depth"
)

// loadConfig reads config.yaml from the resolved config directory. A
// missing config file is not an error; flags and environment variables
// still apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("IFDDUMP")
	v.AutomaticEnv()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// resolveConfigDir returns the configuration directory:
// --config-dir flag > IFDDUMP_CONFIG_DIR env > current directory.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if dir := os.Getenv("IFDDUMP_CONFIG_DIR"); dir != "" {
		return dir
	}
	return "."
}
