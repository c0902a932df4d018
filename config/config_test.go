package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[seed]
enabled = true
records = 250

[trace]
level = "debug"
`))
	require.NoError(t, err)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, 250, cfg.Seed.Records)
	assert.Equal(t, "debug", cfg.Trace.Level)
	// untouched section keeps its defaults
	assert.Equal(t, Default().Output, cfg.Output)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsWrongTypes(t *testing.T) {
	_, err := Parse([]byte("[seed]\nrecords = \"many\"\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("[output]\ncolor = 1\n"))
	assert.Error(t, err)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := Parse([]byte("[seed]\nrecords = -1\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("[trace]\nlevel = \"verbose\"\n"))
	assert.Error(t, err)
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	_, err := Parse([]byte("[seed\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "btree.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\ncolor = false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Output.Color)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOverrideOnlyGivenFlags(t *testing.T) {
	cfg, err := Parse([]byte("[seed]\nenabled = true\nrecords = 250\n\n[trace]\nlevel = \"error\"\n"))
	require.NoError(t, err)

	records := 10
	cfg.Override(Flags{Records: &records})
	assert.Equal(t, 10, cfg.Seed.Records)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "error", cfg.Trace.Level)
	assert.Equal(t, Default().Output, cfg.Output)
}

func TestOverrideInvertsNoColorAndQuiet(t *testing.T) {
	on, off := true, false

	cfg := Default()
	cfg.Override(Flags{NoColor: &on, Quiet: &on})
	assert.False(t, cfg.Output.Color)
	assert.False(t, cfg.Output.DumpAfterSet)

	cfg, err := Parse([]byte("[output]\ncolor = false\ndump_after_set = false\n"))
	require.NoError(t, err)
	cfg.Override(Flags{NoColor: &off, Quiet: &off})
	assert.True(t, cfg.Output.Color)
	assert.True(t, cfg.Output.DumpAfterSet)
}

func TestOverrideCanInvalidate(t *testing.T) {
	level, seed := "verbose", false
	cfg := Default()
	cfg.Override(Flags{Trace: &level, Seed: &seed})
	assert.False(t, cfg.Seed.Enabled)
	assert.Error(t, cfg.Validate())
}
