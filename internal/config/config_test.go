package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-autolayout/pkg/constraint"
)

var envKeys = []string{
	"ALC_LOG_LEVEL", "ALC_FORMAT", "ALC_HORIZONTAL", "ALC_VERTICAL", "ALC_INDEPENDENT",
	"ALC_TEMPLATE_DIRS", "ALC_EXCLUDE", "ALC_TEMPLATE_CACHE_SIZE", "ALC_WORKERS", "ALC_WATCH_DEBOUNCE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, constraint.SizeClassCondition{}, cfg.Traits())
	assert.Equal(t, constraint.IndependentUnlessReferenced, cfg.Policy())
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "alc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`format: json
horizontal_size_class: compact
vertical_size_class: regular
workers: 8
watch_debounce: 1s
template_dirs: [templates]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, time.Second, cfg.WatchDebounce)
	assert.Equal(t, []string{"templates"}, cfg.TemplateDirs)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")
	assert.Equal(t, constraint.SizeClassCondition{Horizontal: constraint.SizeClassCompact, Vertical: constraint.SizeClassRegular}, cfg.Traits())

	t.Setenv("ALC_FORMAT", "yaml")
	t.Setenv("ALC_WORKERS", "2")
	t.Setenv("ALC_INDEPENDENT", "always")
	t.Setenv("ALC_EXCLUDE", "vendor/**, build/**")
	t.Setenv("ALC_WATCH_DEBOUNCE", "50ms")

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, constraint.IndependentAlways, cfg.Policy())
	assert.Equal(t, []string{"vendor/**", "build/**"}, cfg.Exclude)
	assert.Equal(t, 50*time.Millisecond, cfg.WatchDebounce)
	assert.Equal(t, "compact", cfg.HorizontalSizeClass, "file value survives when env is unset")
}

func TestLoad_Errors(t *testing.T) {
	type tc struct {
		file string
		env  map[string]string
	}

	tests := map[string]tc{
		"bad yaml":     {file: "format: [json"},
		"bad workers":  {file: "{}", env: map[string]string{"ALC_WORKERS": "many"}},
		"bad cache":    {file: "{}", env: map[string]string{"ALC_TEMPLATE_CACHE_SIZE": "1.5"}},
		"bad debounce": {file: "{}", env: map[string]string{"ALC_WATCH_DEBOUNCE": "soon"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "alc.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.file), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	type tc struct {
		mutate  func(c *Config)
		wantErr string
	}

	tests := map[string]tc{
		"valid":               {mutate: func(c *Config) {}},
		"unknown format":      {mutate: func(c *Config) { c.Format = "xml" }, wantErr: "format"},
		"unknown horizontal":  {mutate: func(c *Config) { c.HorizontalSizeClass = "huge" }, wantErr: "horizontal"},
		"unknown vertical":    {mutate: func(c *Config) { c.VerticalSizeClass = "tiny" }, wantErr: "vertical"},
		"unknown policy":      {mutate: func(c *Config) { c.IndependentPolicy = "never" }, wantErr: "independent policy"},
		"negative workers":    {mutate: func(c *Config) { c.Workers = -1 }, wantErr: "workers"},
		"negative cache size": {mutate: func(c *Config) { c.TemplateCacheSize = -1 }, wantErr: "cache size"},
		"negative debounce":   {mutate: func(c *Config) { c.WatchDebounce = -time.Second }, wantErr: "debounce"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
