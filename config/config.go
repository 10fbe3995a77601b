// Package config registers framex settings and loads them through viper from
// defaults, the config file and FRAMEX_ environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/framex-cli/framex/constant"
	"github.com/framex-cli/framex/filesystem"
	"github.com/framex-cli/framex/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

const fileType = "toml"

// Setup registers defaults and environment bindings, then reads the config
// file if there is one.
func Setup() error {
	viper.SetConfigName(constant.Framex)
	viper.SetConfigType(fileType)
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Framex)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("read %s: %w", Path(), err)
	}

	return nil
}

// Path is where the config file lives, whether or not it exists yet.
func Path() string {
	return filepath.Join(where.Config(), constant.Framex+"."+fileType)
}

// Save writes the current settings, creating the file when it is missing.
func Save() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}
