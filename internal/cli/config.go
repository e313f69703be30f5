package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Config holds the workbench defaults every topology command starts
// from. Values come from a TOML file and are overridden by command
// line flags.
type Config struct {
	// Seed feeds the loader's random source. Zero draws a fresh seed
	// per run.
	Seed int64 `toml:"seed"`

	// Size is the vertex count used when a command omits the [n]
	// argument.
	Size int `toml:"size" validate:"min=1,max=1000000"`

	// Order names the default ordering criterion for inspect and
	// explore.
	Order string `toml:"order" validate:"oneof=fifo id degree indegree outdegree random"`

	// Directed switches generated topologies to directed edges.
	Directed bool `toml:"directed"`

	// FlowMax enables random flows on directed edges up to this value.
	FlowMax int64 `toml:"flow_max" validate:"min=0"`
}

// defaultConfig returns the built-in workbench defaults.
func defaultConfig() Config {
	return Config{Size: 8, Order: "fifo"}
}

// validate checks Config structs against their struct tags. Field
// names in error messages use the TOML key, not the Go name.
var validate = validator.New()

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// loadConfig reads the TOML config from path, or from the default
// location when path is empty. It returns the merged config and the
// path actually read ("" when no file was found). A missing default
// file is not an error; a missing explicit file is.
func loadConfig(path string) (Config, string, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = configPath()
	}
	if path == "" {
		return cfg, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, "", nil
		}
		return cfg, "", fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, "", fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, "", fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, path, nil
}

// validateConfig checks loaded values against the Config struct tags
// and reports the first offending field in a readable form.
func validateConfig(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) {
		fe := fields[0]
		if fe.Param() != "" {
			return fmt.Errorf("field %q fails rule %q (%s)", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("field %q fails rule %q", fe.Field(), fe.Tag())
	}
	return err
}

// configPath returns the default config location using the XDG
// standard (~/.config/graph/config.toml).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
