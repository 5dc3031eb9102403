// Package config loads the application configuration for the replkit
// binary from ~/.replkit/config.yaml and the environment, backed by
// viper. The parsing engine itself takes no configuration; everything
// here belongs to the embedding REPL.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "REPLKIT"
	homeDir   = ".replkit"
)

// Dir returns the path to the replkit config directory (~/.replkit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDir)
	}
	return filepath.Join(home, homeDir)
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0o700); err != nil {
		return fmt.Errorf("creating config directory %s: %w", Dir(), err)
	}
	return nil
}

// Load initializes viper with defaults, the config file, and the
// environment (REPLKIT_* variables). A missing config file is fine.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("prompt", "replkit> ")
	viper.SetDefault("color", true)
	viper.SetDefault("db.path", filepath.Join(Dir(), "memos.db"))
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.file", filepath.Join(Dir(), "replkit.log"))

	_ = viper.ReadInConfig()
}

// Prompt returns the REPL prompt string.
func Prompt() string { return viper.GetString("prompt") }

// ColorEnabled reports whether styled output is wanted.
func ColorEnabled() bool { return viper.GetBool("color") }

// DBPath returns the path of the memo database.
func DBPath() string { return viper.GetString("db.path") }

// LogLevel returns the logrus level name.
func LogLevel() string { return viper.GetString("log.level") }

// LogFile returns the path of the log file.
func LogFile() string { return viper.GetString("log.file") }

// Get returns a config value by key, empty if unset.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}
	viper.Set(key, value)
	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
