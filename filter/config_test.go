package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bq.yaml")

	content := `name: myproject
queries:
  greeting: '("hello" | "hi") & "there"'
  spamless: '!"spam"'
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "myproject", config.Name)
	assert.Len(t, config.Queries, 2)
}

func TestLoadConfig_MissingExplicitPath(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queries: [not, a, map]"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bq.yaml")

	original := DefaultConfig()
	require.NoError(t, original.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, original.Name, loaded.Name)
	assert.Equal(t, original.Queries, loaded.Queries)
}

func TestConfig_Compile(t *testing.T) {
	config := &Config{
		Queries: map[string]string{
			"good": `"a" & "b"`,
			"bad":  `"unterminated`,
		},
	}

	m, err := config.Compile("good")
	require.NoError(t, err)
	assert.True(t, m.Query("a b"))

	_, err = config.Compile("bad")
	require.Error(t, err)

	_, err = config.Compile("missing")
	require.Error(t, err)
}
