package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineup/internal/config"
)

func TestLoadAndValidateConfig_DBFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lineup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: from-file.db\n"), 0o644))

	cfg, err := LoadAndValidateConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", cfg.DBPath)

	cfg, err = LoadAndValidateConfig(path, "from-flag.db")
	require.NoError(t, err)
	assert.Equal(t, "from-flag.db", cfg.DBPath)
}

func TestLoadAndValidateConfig_Invalid(t *testing.T) {
	t.Setenv("LINEUP_COLOR", "sometimes")
	_, err := LoadAndValidateConfig(filepath.Join(t.TempDir(), "none.yaml"), "")
	assert.ErrorContains(t, err, "invalid color mode")
}

func TestInitSQLite(t *testing.T) {
	cfg := config.Defaults()
	logger := SetupLogger(&cfg)

	path := filepath.Join(t.TempDir(), "nested", "calendar.db")
	repo, err := InitSQLite(context.Background(), logger, path)
	require.NoError(t, err)
	defer repo.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
