// Package config wires the field registry into viper and validates the resulting settings.
package config

import (
	"fmt"
	"strings"

	"github.com/epishuffle/epishuffle/constant"
	"github.com/epishuffle/epishuffle/filesystem"
	"github.com/epishuffle/epishuffle/icon"
	"github.com/epishuffle/epishuffle/key"
	"github.com/epishuffle/epishuffle/where"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, EPISHUFFLE_* variables and the optional epishuffle.toml, then validates the result.
func Setup() error {
	viper.SetConfigName(constant.Epishuffle)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Epishuffle)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); err != nil && !ok {
		return err
	}

	return Validate()
}

// Validate rejects values that would only fail later, deep inside a command.
func Validate() error {
	if variant := viper.GetString(key.IconsVariant); !lo.Contains(icon.AvailableVariants(), variant) {
		return fmt.Errorf("%s: unknown icons variant %q", key.IconsVariant, variant)
	}

	if _, err := logrus.ParseLevel(viper.GetString(key.LogsLevel)); err != nil {
		return fmt.Errorf("%s: %w", key.LogsLevel, err)
	}

	if width := viper.GetInt(key.PickWrapWidth); width <= 0 {
		return fmt.Errorf("%s: must be positive, got %d", key.PickWrapWidth, width)
	}

	for _, k := range []string{key.ServerReadHeaderTimeout, key.ServerShutdownTimeout} {
		if viper.GetInt(k) < 0 {
			return fmt.Errorf("%s: must not be negative", k)
		}
	}

	return nil
}
