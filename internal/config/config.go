package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Storage model names selectable via configuration.
const (
	StorageModelNormalized   = "normalized"
	StorageModelDenormalized = "denormalized"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Dates    DatesConfig    `mapstructure:"dates"`
	Assets   AssetsConfig   `mapstructure:"assets"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// StorageConfig selects the persistence strategy: "normalized" keeps users
// and exercises in separate collections joined by reference, "denormalized"
// embeds each user's log in the user document with a cached count.
type StorageConfig struct {
	Model string `mapstructure:"model"`
}

// DatesConfig controls date validation. Strict rejects well-formed but
// impossible calendar dates (e.g. 2021-13-99) that the default lenient
// check normalizes arithmetically.
type DatesConfig struct {
	Strict bool `mapstructure:"strict"`
}

type AssetsConfig struct {
	PublicDir string `mapstructure:"public_dir"`
	ViewsDir  string `mapstructure:"views_dir"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Env overrides, e.g. storage.model -> STORAGE_MODEL
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "exercise_tracker")
	viper.SetDefault("storage.model", StorageModelNormalized)
	viper.SetDefault("dates.strict", false)
	viper.SetDefault("assets.public_dir", "public")
	viper.SetDefault("assets.views_dir", "views")

	err = viper.ReadInConfig()
	// A missing config file is fine; defaults and env vars carry it.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	switch config.Storage.Model {
	case StorageModelNormalized, StorageModelDenormalized:
	default:
		return config, fmt.Errorf("unknown storage model %q", config.Storage.Model)
	}

	return config, nil
}
