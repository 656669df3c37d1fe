package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoader(env map[string]string) *Loader {
	return &Loader{
		configPaths: nil,
		getenv:      func(k string) string { return env[k] },
	}
}

func TestDefaultsAreValid(t *testing.T) {
	c, err := testLoader(nil).Load("")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("file", c.Storage.Backend)
	assert.Equal("progressions", c.Storage.Key)
	assert.True(c.UseSharp())
}

func TestLoadFromFileKeepsUnsetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fifths.yaml")
	yaml := "storage:\n  backend: sqlite\n  path: /tmp/fifths.db\ndisplay:\n  notation: flat\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	c, err := testLoader(nil).Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("sqlite", c.Storage.Backend)
	assert.Equal("/tmp/fifths.db", c.Storage.Path)
	assert.Equal("progressions", c.Storage.Key)
	assert.Equal(":8080", c.Server.Addr)
	assert.False(c.UseSharp())
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fifths.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9000\"\n"), 0644))

	c, err := testLoader(map[string]string{
		"FIFTHS_SERVER_ADDR":            ":9100",
		"FIFTHS_STORAGE_BACKEND":        "memory",
		"FIFTHS_SERVER_ALLOWED_ORIGINS": "http://a.test, http://b.test",
	}).Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(":9100", c.Server.Addr)
	assert.Equal("memory", c.Storage.Backend)
	assert.Equal([]string{"http://a.test", "http://b.test"}, c.Server.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"unknown backend": func(c *Config) { c.Storage.Backend = "redis" },
		"missing path":    func(c *Config) { c.Storage.Path = "" },
		"empty key":       func(c *Config) { c.Storage.Key = " " },
		"bad notation":    func(c *Config) { c.Display.Notation = "natural" },
		"bad level":       func(c *Config) { c.Log.Level = "loud" },
		"no dynamo table": func(c *Config) { c.Storage.Backend = "dynamodb"; c.Storage.Dynamo.Table = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fifths.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [oops"), 0644))

	_, err := testLoader(nil).Load(path)
	assert.Error(t, err)
}

func TestResolveLeavesValidationToCaller(t *testing.T) {
	l := testLoader(map[string]string{"FIFTHS_STORAGE_BACKEND": "redis"})

	_, err := l.Load("")
	assert.Error(t, err)

	c, err := l.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "redis", c.Storage.Backend)

	c.Storage.Backend = "memory"
	assert.NoError(t, c.Validate())
}
