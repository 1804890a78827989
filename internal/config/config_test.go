package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/hammamikhairi/recipebox/internal/logger"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Library.Dir", cfg.Library.Dir, "recipes"},
		{"Library.Extension", cfg.Library.Extension, ".rcpe"},
		{"Logging.Level", cfg.Logging.Level, "normal"},
		{"Display.Banner", cfg.Display.Banner, true},
		{"Defaults.Course", cfg.Defaults.Course, "Appetizer"},
		{"Defaults.ServingSize", cfg.Defaults.ServingSize, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
	if cfg.LogLevel() != logger.LevelNormal {
		t.Errorf("LogLevel() = %s, want normal", cfg.LogLevel())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{"library dir", "RECIPEBOX_LIBRARY_DIR", "/tmp/cookbook", func(c Config) any { return c.Library.Dir }, "/tmp/cookbook"},
		{"extension without dot", "RECIPEBOX_LIBRARY_EXTENSION", "recipe", func(c Config) any { return c.Library.Extension }, ".recipe"},
		{"log level", "RECIPEBOX_LOGGING_LEVEL", "verbose", func(c Config) any { return c.LogLevel() }, logger.LevelVerbose},
		{"default course", "RECIPEBOX_DEFAULTS_COURSE", "dessert", func(c Config) any { return c.Defaults.Course }, "Dessert"},
		{"banner", "RECIPEBOX_DISPLAY_BANNER", "false", func(c Config) any { return c.Display.Banner }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			if got := tt.field(cfg); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		envKey string
		envVal string
	}{
		{"RECIPEBOX_LOGGING_LEVEL", "shouting"},
		{"RECIPEBOX_DEFAULTS_SERVING_SIZE", "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			resetViper()
			t.Setenv(tt.envKey, tt.envVal)
			if _, err := Load(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSampleRoundTrip(t *testing.T) {
	resetViper()
	path := filepath.Join(t.TempDir(), "conf", "recipebox.toml")

	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[library]", "dir = 'recipes'", "[defaults]"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("sample missing %q:\n%s", want, data)
		}
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("read sample back: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() from sample: %v", err)
	}
	if cfg != Default() {
		t.Errorf("sample does not load back to defaults:\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/recipes"); got != filepath.Join(home, "recipes") {
		t.Errorf("expandPath = %q", got)
	}
	if got := expandPath("recipes"); got != "recipes" {
		t.Errorf("relative path changed: %q", got)
	}
}
