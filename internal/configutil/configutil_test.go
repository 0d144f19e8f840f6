package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseURL     string `json:"base_url"`
	MaxRequests int    `json:"max_requests"`
}

func write(t *testing.T, path, contents string) {
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestReadMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "swimrankings.json5")
	write(t, name, `{base_url: "https://www.swimrankings.net", max_requests: 15}`)
	write(t, filepath.Join(dir, "swimrankings.local.json5"), `{max_requests: 5}`)

	cfg, err := Read[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://www.swimrankings.net", cfg.BaseURL)
	require.Equal(t, 5, cfg.MaxRequests)
}

func TestReadLocalOnly(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "swimrankings.local.json5"), `{max_requests: 3}`)

	cfg, err := Read[testConfig](filepath.Join(dir, "swimrankings.json5"))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.MaxRequests)
}

func TestReadMissingFiles(t *testing.T) {
	_, err := Read[testConfig](filepath.Join(t.TempDir(), "swimrankings.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
