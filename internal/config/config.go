// Package config loads recipebox settings from a TOML file, RECIPEBOX_*
// environment variables and command-line flags, in that order of
// increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/rcpe"
)

// EnvPrefix is the prefix of environment overrides, e.g. RECIPEBOX_LIBRARY_DIR.
const EnvPrefix = "RECIPEBOX"

// FileName is the config file looked up when none is given.
const FileName = ".recipebox"

// LibraryConfig locates recipe files.
type LibraryConfig struct {
	Dir       string `mapstructure:"dir" toml:"dir" comment:"Directory bare file names resolve under"`
	Extension string `mapstructure:"extension" toml:"extension" comment:"Extension appended to exported files"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string `mapstructure:"level" toml:"level" comment:"off, normal or verbose"`
	File  string `mapstructure:"file" toml:"file" comment:"Log file used by the interactive session"`
}

// DisplayConfig controls the terminal UI.
type DisplayConfig struct {
	Banner bool `mapstructure:"banner" toml:"banner"`
}

// DefaultsConfig pre-fills the new recipe form.
type DefaultsConfig struct {
	Course      string  `mapstructure:"course" toml:"course"`
	ServingSize float64 `mapstructure:"serving_size" toml:"serving_size"`
}

// Config holds all runtime configuration.
type Config struct {
	Library  LibraryConfig  `mapstructure:"library" toml:"library"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
	Display  DisplayConfig  `mapstructure:"display" toml:"display"`
	Defaults DefaultsConfig `mapstructure:"defaults" toml:"defaults"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Library: LibraryConfig{
			Dir:       "recipes",
			Extension: rcpe.Extension,
		},
		Logging: LoggingConfig{
			Level: logger.LevelNormal.String(),
			File:  filepath.Join(".recipebox-logs", "recipebox.log"),
		},
		Display: DisplayConfig{
			Banner: true,
		},
		Defaults: DefaultsConfig{
			Course:      domain.CourseAppetizer,
			ServingSize: 0,
		},
	}
}

// setDefaults registers every key with viper so env overrides apply even
// when no config file sets them.
func setDefaults(d Config) {
	viper.SetDefault("library.dir", d.Library.Dir)
	viper.SetDefault("library.extension", d.Library.Extension)
	viper.SetDefault("logging.level", d.Logging.Level)
	viper.SetDefault("logging.file", d.Logging.File)
	viper.SetDefault("display.banner", d.Display.Banner)
	viper.SetDefault("defaults.course", d.Defaults.Course)
	viper.SetDefault("defaults.serving_size", d.Defaults.ServingSize)
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(Default())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Library.Dir = expandPath(strings.TrimSpace(c.Library.Dir))
	c.Library.Extension = strings.TrimSpace(c.Library.Extension)
	if c.Library.Extension != "" && !strings.HasPrefix(c.Library.Extension, ".") {
		c.Library.Extension = "." + c.Library.Extension
	}
	c.Logging.File = expandPath(strings.TrimSpace(c.Logging.File))
	c.Defaults.Course = domain.NormalizeCourse(c.Defaults.Course)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Library.Dir == "" {
		return fmt.Errorf("library.dir must not be empty")
	}
	if c.Library.Extension == "" {
		return fmt.Errorf("library.extension must not be empty")
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Defaults.ServingSize < 0 {
		return fmt.Errorf("defaults.serving_size must not be negative")
	}
	return nil
}

// LogLevel returns the parsed logging level.
func (c Config) LogLevel() logger.Level {
	level, _ := logger.ParseLevel(c.Logging.Level)
	return level
}

// CreateSample writes the default configuration as TOML to path.
func CreateSample(path string) error {
	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encode sample config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	header := "# recipebox configuration\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
