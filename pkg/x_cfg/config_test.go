package x_cfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/rskv-p/rtree/pkg/x_cfg"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rtree.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv(x_cfg.EnvConfigPath, "")
	t.Chdir(t.TempDir())

	cfg, err := x_cfg.Load("")
	require.NoError(t, err)
	require.Equal(t, x_cfg.Default(), cfg)
	require.Equal(t, 128, cfg.Tree.AlphabetSize)
	require.Equal(t, 128, cfg.Tree.MaxKeyLen)
	require.Zero(t, cfg.Tree.MemoryLimit)
}

func TestLoad_ExplicitMissingFails(t *testing.T) {
	_, err := x_cfg.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoad_Decode(t *testing.T) {
	path := writeFile(t, `{
		"tree": {"alphabet_size": "64", "memory_limit": 4096},
		"log": {"level": "debug", "ToFile": true}
	}`)

	cfg, err := x_cfg.Load(path)
	require.NoError(t, err)

	//---------------------
	// Tree section, weakly typed
	//---------------------
	require.Equal(t, 64, cfg.Tree.AlphabetSize)
	require.Equal(t, 128, cfg.Tree.MaxKeyLen)
	require.Equal(t, 4096, cfg.Tree.MemoryLimit)

	//---------------------
	// Log section over defaults
	//---------------------
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Log.ToFile)
	require.True(t, cfg.Log.ToConsole)
	require.Equal(t, "logs/rtree.log", cfg.Log.LogFile)
}

func TestLoad_EnvPath(t *testing.T) {
	t.Setenv(x_cfg.EnvConfigPath, writeFile(t, `{"tree": {"max_key_len": 16}}`))

	cfg, err := x_cfg.Load("")
	require.NoError(t, err)
	require.Equal(t, 16, cfg.Tree.MaxKeyLen)
}

func TestLoad_Errors(t *testing.T) {
	for name, body := range map[string]string{
		"syntax":   `{"tree": `,
		"unknown":  `{"tree": {"fanout": 3}}`,
		"type":     `{"tree": {"alphabet_size": [1]}}`,
		"alphabet": `{"tree": {"alphabet_size": 0}}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := x_cfg.Load(writeFile(t, body))
			require.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := x_cfg.Default()
	require.NoError(t, cfg.Validate())

	cfg.Tree.MemoryLimit = -1
	require.True(t, errors.Is(cfg.Validate(), x_cfg.ErrInvalid))

	cfg = x_cfg.Default()
	cfg.Tree.MaxKeyLen = 0
	require.True(t, errors.Is(cfg.Validate(), x_cfg.ErrInvalid))
}
