package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvRenderer, EnvSeed, EnvLang, EnvLocales, EnvLogFile} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsWithoutEnvFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "MAZE_RENDERER=ebiten\nMAZE_SEED=42\nMAZE_LANG=pt_BR\nMAZE_LOCALES=/usr/share/growmaze\nMAZE_LOG=maze.log\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Renderer:   RendererEbiten,
		Seed:       42,
		Lang:       "pt_BR",
		LocalesDir: "/usr/share/growmaze",
		LogFile:    "maze.log",
	}, cfg)
}

func TestLoad_EnvironmentOverridesEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "MAZE_SEED=42\nMAZE_LANG=pt_BR\n")
	t.Setenv(EnvSeed, "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "pt_BR", cfg.Lang)
}

func TestLoad_DoesNotExportEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "MAZE_LANG=pt_BR\n")

	_, err := Load(path)
	require.NoError(t, err)

	_, exists := os.LookupEnv(EnvLang)
	assert.False(t, exists)
}

func TestLoad_InvalidSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "forty-two")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSeed)
}

func TestLoad_UnknownRenderer(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRenderer, "opengl")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, ErrUnknownRenderer)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		renderer string
		wantErr  bool
	}{
		{RendererTUI, false},
		{RendererEbiten, false},
		{"", true},
		{"TUI", true},
	}
	for _, tt := range tests {
		t.Run(tt.renderer, func(t *testing.T) {
			cfg := Defaults()
			cfg.Renderer = tt.renderer
			if tt.wantErr {
				assert.ErrorIs(t, cfg.Validate(), ErrUnknownRenderer)
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
