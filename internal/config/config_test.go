package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestParse(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		cfg, err := Parse([]byte("main_window:\n  width: 800\n  height: 640\n  fps: 15\n"))
		require.NoError(t, err)
		assert.Equal(t, MainWindow{Width: 800, Height: 640, FPS: 15}, cfg.MainWindow)
	})

	t.Run("json", func(t *testing.T) {
		cfg, err := Parse([]byte(`{"main_window": {"width": 600, "height": 600, "fps": 10}}`))
		require.NoError(t, err)
		assert.Equal(t, MainWindow{Width: 600, Height: 600, FPS: 10}, cfg.MainWindow)
	})

	t.Run("embedded default", func(t *testing.T) {
		cfg, err := Parse(DefaultYAML())
		require.NoError(t, err)
		assert.Equal(t, 600, cfg.MainWindow.Width)
		assert.Equal(t, 600, cfg.MainWindow.Height)
		assert.Positive(t, cfg.MainWindow.FPS)
	})
}

func TestParseRejectsIncompleteDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"empty document", "", ErrMissingField},
		{"no main_window", "other: 1\n", ErrMissingField},
		{"missing width", "main_window:\n  height: 600\n  fps: 10\n", ErrMissingField},
		{"missing height", "main_window:\n  width: 600\n  fps: 10\n", ErrMissingField},
		{"missing fps", `{"main_window": {"width": 600, "height": 600}}`, ErrMissingField},
		{"zero fps", "main_window:\n  width: 600\n  height: 600\n  fps: 0\n", ErrInvalidValue},
		{"negative width", "main_window:\n  width: -1\n  height: 600\n  fps: 10\n", ErrInvalidValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseRejectsMalformedDocument(t *testing.T) {
	_, err := Parse([]byte("main_window: [unclosed"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingField)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.json"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("wraps path", func(t *testing.T) {
		path := writeFile(t, dir, "broken.yaml", "main_window:\n  width: 600\n")
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Contains(t, err.Error(), path)
	})
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	_, _, err := Load("")
	require.ErrorIs(t, err, ErrNotFound)

	writeFile(t, dir, "config.yaml", "main_window:\n  width: 700\n  height: 700\n  fps: 12\n")
	cfg, path, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", path)
	assert.Equal(t, 700, cfg.MainWindow.Width)

	// config.json takes precedence over config.yaml
	writeFile(t, dir, "config.json", `{"main_window": {"width": 640, "height": 480, "fps": 30}}`)
	cfg, path, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "config.json", path)
	assert.Equal(t, 30, cfg.MainWindow.FPS)

	// An explicit path wins over everything
	custom := writeFile(t, dir, "custom.yml", "main_window:\n  width: 100\n  height: 100\n  fps: 5\n")
	cfg, path, err = Load(custom)
	require.NoError(t, err)
	assert.Equal(t, custom, path)
	assert.Equal(t, 5, cfg.MainWindow.FPS)
}

func TestLoadUserConfig(t *testing.T) {
	chdir(t, t.TempDir())
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, WriteDefault(filepath.Join(home, ".snake", "config.yaml"), false))

	cfg, path, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".snake", "config.yaml"), path)
	assert.Equal(t, 600, cfg.MainWindow.Width)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultYAML(), data)

	assert.Error(t, WriteDefault(path, false), "existing file must not be overwritten")
	assert.NoError(t, WriteDefault(path, true))
}

func TestMarshalRoundTrip(t *testing.T) {
	in := Config{MainWindow: MainWindow{Width: 800, Height: 600, FPS: 20}}
	data, err := Marshal(in)
	require.NoError(t, err)

	out, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
