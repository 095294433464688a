// Package config loads alc settings from defaults, an optional YAML file,
// ALC_* environment variables (a .env file is honored) and command-line flags,
// in increasing order of precedence. Flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-autolayout/pkg/constraint"
)

// DefaultFile is read when Load is given no path and the file exists.
const DefaultFile = ".alc.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all alc settings.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`

	// Size classes of the environment the layout is compiled for.
	HorizontalSizeClass string `yaml:"horizontal_size_class"`
	VerticalSizeClass   string `yaml:"vertical_size_class"`

	IndependentPolicy string `yaml:"independent_policy"`

	TemplateDirs      []string `yaml:"template_dirs"`
	TemplateCacheSize int      `yaml:"template_cache_size"`

	Workers       int           `yaml:"workers"`
	WatchDebounce time.Duration `yaml:"watch_debounce"`
	Exclude       []string      `yaml:"exclude"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:            "info",
		Format:              FormatText,
		HorizontalSizeClass: "any",
		VerticalSizeClass:   "any",
		IndependentPolicy:   constraint.IndependentUnlessReferenced.String(),
		TemplateCacheSize:   128,
		Workers:             4,
		WatchDebounce:       200 * time.Millisecond,
	}
}

// Load reads settings. An empty path means DefaultFile, which may be absent;
// an explicit path must exist.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	c.LogLevel = firstNonEmpty(env("ALC_LOG_LEVEL"), c.LogLevel)
	c.Format = firstNonEmpty(env("ALC_FORMAT"), c.Format)
	c.HorizontalSizeClass = firstNonEmpty(env("ALC_HORIZONTAL"), c.HorizontalSizeClass)
	c.VerticalSizeClass = firstNonEmpty(env("ALC_VERTICAL"), c.VerticalSizeClass)
	c.IndependentPolicy = firstNonEmpty(env("ALC_INDEPENDENT"), c.IndependentPolicy)

	if dirs := env("ALC_TEMPLATE_DIRS"); dirs != "" {
		c.TemplateDirs = filepath.SplitList(dirs)
	}
	if exclude := env("ALC_EXCLUDE"); exclude != "" {
		c.Exclude = splitComma(exclude)
	}

	if err := envInt("ALC_TEMPLATE_CACHE_SIZE", &c.TemplateCacheSize); err != nil {
		return err
	}
	if err := envInt("ALC_WORKERS", &c.Workers); err != nil {
		return err
	}
	if raw := env("ALC_WATCH_DEBOUNCE"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("ALC_WATCH_DEBOUNCE: %w", err)
		}
		c.WatchDebounce = d
	}
	return nil
}

// Validate rejects settings that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("format must be one of text, json, yaml, got %q", c.Format))
	}
	if _, ok := constraint.LookupSizeClass(c.HorizontalSizeClass); !ok {
		errs = append(errs, fmt.Errorf("unknown horizontal size class %q", c.HorizontalSizeClass))
	}
	if _, ok := constraint.LookupSizeClass(c.VerticalSizeClass); !ok {
		errs = append(errs, fmt.Errorf("unknown vertical size class %q", c.VerticalSizeClass))
	}
	if _, err := constraint.ParseIndependentPolicy(c.IndependentPolicy); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.TemplateCacheSize < 0 {
		errs = append(errs, fmt.Errorf("template cache size must not be negative, got %d", c.TemplateCacheSize))
	}
	if c.WatchDebounce < 0 {
		errs = append(errs, fmt.Errorf("watch debounce must not be negative, got %s", c.WatchDebounce))
	}
	return errors.Join(errs...)
}

// Traits returns the environment's size classes. Unknown names are
// unspecified; Validate reports them.
func (c *Config) Traits() constraint.SizeClassCondition {
	h, _ := constraint.LookupSizeClass(c.HorizontalSizeClass)
	v, _ := constraint.LookupSizeClass(c.VerticalSizeClass)
	return constraint.SizeClassCondition{Horizontal: h, Vertical: v}
}

// Policy returns the independent-attribute policy, falling back to the
// default for unknown names.
func (c *Config) Policy() constraint.IndependentPolicy {
	p, err := constraint.ParseIndependentPolicy(c.IndependentPolicy)
	if err != nil {
		return constraint.IndependentUnlessReferenced
	}
	return p
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envInt(key string, dst *int) error {
	raw := env(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
