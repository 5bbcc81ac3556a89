package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.MainConfig.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", c.MainConfig.Port)
	}
	if c.DatabaseConfig.Driver != "mysql" {
		t.Errorf("expected default driver mysql, got %s", c.DatabaseConfig.Driver)
	}
	if c.ReminderConfig.CronExpr != "0 9 * * *" {
		t.Errorf("unexpected cron expr %q", c.ReminderConfig.CronExpr)
	}
	if c.JwtConfig.ExpireHours != 720 {
		t.Errorf("expected 30 day token expiry, got %d hours", c.JwtConfig.ExpireHours)
	}
	if c.ScraperConfig.TimeoutSeconds != 8 {
		t.Errorf("expected scraper timeout 8, got %d", c.ScraperConfig.TimeoutSeconds)
	}
}

func TestLoadReadsTomlAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[mainConfig]
port = 9090

[databaseConfig]
driver = "Postgres"

[reminderConfig]
cronSecret = "from-file"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CRON_SECRET", "from-env")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.MainConfig.Port != 9090 {
		t.Errorf("expected port 9090, got %d", c.MainConfig.Port)
	}
	if c.DatabaseConfig.Driver != "postgres" {
		t.Errorf("driver should be normalised, got %s", c.DatabaseConfig.Driver)
	}
	if c.ReminderConfig.CronSecret != "from-env" {
		t.Errorf("env should override file, got %s", c.ReminderConfig.CronSecret)
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
	if c == nil || c.MainConfig.Port != 8080 {
		t.Error("defaults should still be applied when the file is missing")
	}
}
