package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings is everything the service needs to run. Secrets may also come
// from the environment; env values win over the file.
type Settings struct {
	ListenAddress   string
	SpreadsheetID   string
	WorksheetName   string
	CredentialsFile string
	AdminPassword   string
	CacheTTLSeconds int
}

type Config struct {
	Filename string
	Settings Settings
}

// Save writes the current config out to a toml file.
func (c *Config) Save() error {
	b, err := toml.Marshal(c.Settings)
	if err != nil {
		return err
	}
	return os.WriteFile(c.Filename, b, 0644)
}

// Load reads the config from a toml file.
func (c *Config) Load() error {
	b, err := os.ReadFile(c.Filename)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, &c.Settings)
}

// Open loads the config file, creating it with defaults when missing, and
// applies environment overrides.
func Open(filename string) (*Config, error) {
	c := &Config{
		Filename: filename,
	}
	if err := c.Load(); err != nil {
		if os.IsNotExist(err) {
			if err := c.Save(); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	// Set some defaults
	if c.Settings.ListenAddress == "" {
		c.Settings.ListenAddress = ":80"
	}
	if c.Settings.WorksheetName == "" {
		c.Settings.WorksheetName = "Sheet1"
	}
	if c.Settings.CacheTTLSeconds == 0 {
		c.Settings.CacheTTLSeconds = 60
	}
	if v := os.Getenv("SPREADSHEET_ID"); v != "" {
		c.Settings.SpreadsheetID = v
	}
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" {
		c.Settings.CredentialsFile = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.Settings.AdminPassword = v
	}
	return c, nil
}
