package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/camaclean/alpsinfo/internal/utils"
	"github.com/spf13/viper"
)

// ConfigFilename is the name of the config file
const ConfigFilename = "config"

// ConfigType is the type of config file (yaml, json, toml)
const ConfigType = "yaml"

// EnvPrefix is the prefix of environment overrides (ALPSINFO_OUTPUT, ALPSINFO_ENV_APID, ...)
const EnvPrefix = "ALPSINFO"

var envKeyReplacer = strings.NewReplacer(".", "_")

// Keys lists the known configuration keys
var Keys = []string{
	"output",
	"env.apid",
	"env.node_count",
	"env.width",
	"env.node_file",
}

// SearchPath is one location viper looks for the config file
type SearchPath struct {
	Type   string // user, home, system
	Path   string // Full path of the config file
	Exists bool
	InUse  bool
}

// InitViper initializes Viper with proper search paths and defaults
// Priority (highest to lowest):
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (ALPSINFO_*)
// 3. User config file (~/.config/alpsinfo/config.yaml)
// 4. Home config file (~/.alpsinfo/config.yaml)
// 5. System config file (/etc/alpsinfo/config.yaml)
// 6. Defaults
func InitViper() error {
	viper.SetConfigName(ConfigFilename)
	viper.SetConfigType(ConfigType)

	for _, dir := range configDirs() {
		viper.AddConfigPath(dir.Path)
	}

	// Environment variables; "env.apid" is read from ALPSINFO_ENV_APID
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	setDefaults()

	// Read config file (non-fatal if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// setDefaults sets default values for all config keys
func setDefaults() {
	viper.SetDefault("output", OutputText)
	viper.SetDefault("env.apid", "ALPS_APP_ID")
	viper.SetDefault("env.node_count", "PBS_NUM_NODES")
	viper.SetDefault("env.width", "PBS_NP")
	viper.SetDefault("env.node_file", "PBS_NODEFILE")
}

// configDirs returns the config directories in search order
func configDirs() []SearchPath {
	var dirs []SearchPath
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, SearchPath{Type: "user", Path: filepath.Join(userConfigDir, "alpsinfo")})
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, SearchPath{Type: "home", Path: filepath.Join(home, ".alpsinfo")})
	}
	dirs = append(dirs, SearchPath{Type: "system", Path: "/etc/alpsinfo"})
	return dirs
}

// GetConfigSearchPaths returns the config file locations and which one viper loaded
func GetConfigSearchPaths() []SearchPath {
	used := viper.ConfigFileUsed()
	paths := configDirs()
	for i := range paths {
		paths[i].Path = filepath.Join(paths[i].Path, ConfigFilename+"."+ConfigType)
		paths[i].Exists = utils.FileExists(paths[i].Path)
		paths[i].InUse = used != "" && paths[i].Path == used
	}
	return paths
}

// EnvVarFor returns the environment variable that overrides key
func EnvVarFor(key string) string {
	return EnvPrefix + "_" + envKeyReplacer.Replace(strings.ToUpper(key))
}

// LoadFromViper loads config from Viper into Global struct
func LoadFromViper() {
	if output := viper.GetString("output"); output != "" {
		Global.Output = output
	}
	if v := viper.GetString("env.apid"); v != "" {
		Global.ApidVar = v
	}
	if v := viper.GetString("env.node_count"); v != "" {
		Global.NodeCountVar = v
	}
	if v := viper.GetString("env.width"); v != "" {
		Global.WidthVar = v
	}
	if v := viper.GetString("env.node_file"); v != "" {
		Global.NodeFileVar = v
	}
}
