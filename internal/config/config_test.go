package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("FORMATKIT_FORMAT", "json")
	t.Setenv("FORMATKIT_VERBOSE", "true")
	t.Setenv("FORMATKIT_LOCALE", "de-DE")
	t.Setenv("FORMATKIT_CURRENCY", "€")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Format: FormatJSON, Verbose: true, Locale: "de-DE", Currency: "€"}, cfg)

	tag, err := cfg.Tag()
	require.NoError(t, err)
	assert.Equal(t, language.MustParse("de-DE"), tag)
}

func TestLoad_InvalidFormat(t *testing.T) {
	t.Setenv("FORMATKIT_FORMAT", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLoad_InvalidLocale(t *testing.T) {
	t.Setenv("FORMATKIT_LOCALE", "not a locale!")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid locale")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formatkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\ncurrency: \"£\"\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "£", cfg.Currency)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestUsage_ListsVariables(t *testing.T) {
	usage := Usage()
	for _, name := range []string{"FORMATKIT_FORMAT", "FORMATKIT_VERBOSE", "FORMATKIT_LOCALE", "FORMATKIT_CURRENCY"} {
		assert.Contains(t, usage, name)
	}
}
