package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"detectivequest/internal/game/suspects"
)

const (
	KeyScenario      = "scenario"
	KeyIndexCapacity = "index_capacity"
	KeyJournal       = "journal"
	KeyDebug         = "debug"
	KeyDebugLog      = "debug_log"
	KeyPlain         = "plain"

	EnvPrefix      = "DETECTIVE"
	configFileName = "detective"
	configFileType = "yaml"
)

type Config struct {
	// Scenario is a YAML scenario path; empty means the built-in mansion.
	Scenario      string
	IndexCapacity int
	Journal       string
	Debug         bool
	DebugLog      string
	Plain         bool
}

// New returns a viper instance with defaults, DETECTIVE_* environment
// binding and an optional detective.yaml in configDir.
func New(configDir string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyScenario, "")
	v.SetDefault(KeyIndexCapacity, suspects.DefaultCapacity)
	v.SetDefault(KeyJournal, "./cases.db")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyDebugLog, "debug.log")
	v.SetDefault(KeyPlain, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	return v
}

// Load reads the optional config file and resolves every key. A missing
// config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{
		Scenario:      v.GetString(KeyScenario),
		IndexCapacity: v.GetInt(KeyIndexCapacity),
		Journal:       v.GetString(KeyJournal),
		Debug:         v.GetBool(KeyDebug),
		DebugLog:      v.GetString(KeyDebugLog),
		Plain:         v.GetBool(KeyPlain),
	}
	if cfg.IndexCapacity <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %d", KeyIndexCapacity, cfg.IndexCapacity)
	}
	return cfg, nil
}
