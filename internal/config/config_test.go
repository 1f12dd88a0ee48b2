package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("青色商店")
	cfg.Business.Owner = "山田太郎"
	cfg.Statement.SalesCode = 4110

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Shop")

	assert.Equal(t, "My Shop", cfg.Business.Name)
	assert.Empty(t, cfg.Business.Owner)
	assert.Equal(t, "books.db", cfg.Storage.Database)
	assert.Equal(t, "backups", cfg.Storage.BackupDir)
	assert.Equal(t, 4100, cfg.Statement.SalesCode)
	assert.Equal(t, 5100, cfg.Statement.PurchasesCode)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Shop")
	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Shop")
	assert.Contains(t, contents, "database: books.db")
	assert.Contains(t, contents, "sales_code: 4100")
	assert.Contains(t, contents, "level: info")
	assert.NotContains(t, contents, "owner")
}

func TestApplyEnv_FileAndProcess(t *testing.T) {
	dir := t.TempDir()
	env := "AOIRO_DATABASE=ledger.db\nAOIRO_LOG_LEVEL=debug\nAOIRO_SALES_CODE=4110\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte(env), 0o644))
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvPurchasesCode, "5110")

	cfg := Default("x")
	require.NoError(t, ApplyEnv(cfg, filepath.Join(dir, EnvFile)))

	assert.Equal(t, "ledger.db", cfg.Storage.Database)
	assert.Equal(t, "warn", cfg.Log.Level, "process environment wins")
	assert.Equal(t, 4110, cfg.Statement.SalesCode)
	assert.Equal(t, 5110, cfg.Statement.PurchasesCode)
	assert.Equal(t, "backups", cfg.Storage.BackupDir)
}

func TestApplyEnv_MissingFile(t *testing.T) {
	cfg := Default("x")
	require.NoError(t, ApplyEnv(cfg, filepath.Join(t.TempDir(), EnvFile)))
	assert.Equal(t, Default("x"), cfg)
}

func TestApplyEnv_BadCode(t *testing.T) {
	t.Setenv(EnvSalesCode, "four")
	err := ApplyEnv(Default("x"), filepath.Join(t.TempDir(), EnvFile))
	assert.Error(t, err)
}

func TestLoadDir_ResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(filepath.Join(dir, FileName), Default("x")))

	cfg, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "books.db"), cfg.DatabasePath(dir))
	assert.Equal(t, filepath.Join(dir, "backups"), cfg.BackupPath(dir))

	cfg.Storage.BackupDir = "/var/backups/aoiro"
	assert.Equal(t, "/var/backups/aoiro", cfg.BackupPath(dir))
}
