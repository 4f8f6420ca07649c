package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenCreatesWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.toml")

	c, err := Open(path)
	assert.Nil(t, err)
	assert.Equal(t, ":80", c.Settings.ListenAddress)
	assert.Equal(t, "Sheet1", c.Settings.WorksheetName)
	assert.Equal(t, 60, c.Settings.CacheTTLSeconds)

	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.toml")

	c := &Config{
		Filename: path,
		Settings: Settings{
			ListenAddress:   ":8080",
			SpreadsheetID:   "sheet-id",
			WorksheetName:   "Counterparties",
			CredentialsFile: "/etc/creds.json",
			AdminPassword:   "hunter2",
			CacheTTLSeconds: 30,
		},
	}
	assert.Nil(t, c.Save())

	loaded, err := Open(path)
	assert.Nil(t, err)
	assert.Equal(t, c.Settings, loaded.Settings)
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.toml")
	c := &Config{
		Filename: path,
		Settings: Settings{SpreadsheetID: "from-file", AdminPassword: "file-pass"},
	}
	assert.Nil(t, c.Save())

	t.Setenv("SPREADSHEET_ID", "from-env")
	t.Setenv("ADMIN_PASSWORD", "env-pass")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/env/creds.json")

	loaded, err := Open(path)
	assert.Nil(t, err)
	assert.Equal(t, "from-env", loaded.Settings.SpreadsheetID)
	assert.Equal(t, "env-pass", loaded.Settings.AdminPassword)
	assert.Equal(t, "/env/creds.json", loaded.Settings.CredentialsFile)
}
