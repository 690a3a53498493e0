package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rscpctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
host: 192.168.1.100
port: 5034
key: mysecret
user: user@example.com
password: portalpassword
timeout: 10s
`)
	cfg, err := loadconfig(path)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.100", cfg.Host)
	require.NotNil(t, cfg.Port)
	assert.Equal(t, 5034, *cfg.Port)
	assert.Equal(t, "mysecret", cfg.Key)
	assert.Equal(t, "user@example.com", cfg.User)
	assert.Equal(t, "portalpassword", cfg.Password)
	require.NotNil(t, cfg.Timeout)
	assert.Equal(t, "10s", *cfg.Timeout)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadconfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = loadconfig(writeConfig(t, "host: [not, a, string"))
	assert.Error(t, err)
}

func TestResolveConfigMergesFileUnderFlags(t *testing.T) {
	path := writeConfig(t, `
host: 192.168.1.100
port: 5034
key: filesecret
timeout: 10s
`)

	require.NoError(t, rootCmd.PersistentFlags().Set("key", "flagsecret"))
	t.Cleanup(func() {
		flagkey = ""
		flagconfig = ""
		rootCmd.PersistentFlags().Lookup("key").Changed = false
	})
	flagconfig = path

	rc, err := resolveconfig()
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.100", rc.Host, "file fills what no flag set")
	assert.Equal(t, 5034, rc.Port)
	assert.Equal(t, "flagsecret", rc.Key, "an explicit flag wins over the file")
	assert.Equal(t, 10*time.Second, rc.Timeout)
}

func TestResolveConfigWithoutFile(t *testing.T) {
	flagconfig = ""
	flaghost = "10.0.0.2"
	t.Cleanup(func() { flaghost = "" })

	rc, err := resolveconfig()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2", rc.Host)
}

func TestResolveConfigBadTimeout(t *testing.T) {
	flagconfig = writeConfig(t, "timeout: soon")
	t.Cleanup(func() { flagconfig = "" })

	_, err := resolveconfig()
	assert.Error(t, err)
}
