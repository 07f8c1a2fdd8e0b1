package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/env/config")

		got, err := ResolveConfigDir("/flag/config")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/env/config")

		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/env/config", got)
	})

	t.Run("relative flag becomes absolute", func(t *testing.T) {
		got, err := ResolveConfigDir("rel")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}

func TestResolveDataDirPrecedence(t *testing.T) {
	t.Run("flag wins over config value", func(t *testing.T) {
		got, err := ResolveDataDir("/flag/data", "/config/data")
		require.NoError(t, err)
		assert.Equal(t, "/flag/data", got)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/data")

		got, err := ResolveDataDir("", "/config/data")
		require.NoError(t, err)
		assert.Equal(t, "/config/data", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/data")

		got, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/env/data", got)
	})

	t.Run("default is CWD-relative", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")

		got, err := ResolveDataDir("", "")
		require.NoError(t, err)

		cwd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, DefaultDataDirName), got)
	})
}
