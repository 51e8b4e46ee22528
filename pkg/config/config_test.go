package config

import (
	"strings"
	"testing"
)

func defaultedConfig() *Config {
	cfg := &Config{
		Database: DatabaseConfig{Driver: "sqlite", Path: "out.sqlite"},
		Generation: GenerationConfig{
			NumUsers:           100,
			NumProjects:        175,
			MinTasksPerProject: 15,
			MaxTasksPerProject: 30,
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaultsFillsTeams(t *testing.T) {
	cfg := defaultedConfig()

	if len(cfg.Teams) != 3 {
		t.Fatalf("expected 3 default teams, got %d", len(cfg.Teams))
	}

	var total float64
	for _, team := range cfg.Teams {
		total += team.UserShare
	}
	if total < 0.99 || total > 1.01 {
		t.Fatalf("default team shares should sum to 1, got %f", total)
	}

	if cfg.Organization.ID == "" || cfg.Organization.Domain == "" {
		t.Fatalf("default organization incomplete: %+v", cfg.Organization)
	}
}

func TestApplyDefaultsCompletionRates(t *testing.T) {
	cfg := defaultedConfig()

	for _, key := range []string{"sprint", "bug_tracking", "ongoing", "default"} {
		rate, ok := cfg.Generation.CompletionRates[key]
		if !ok {
			t.Fatalf("missing completion rate for %q", key)
		}
		if rate.Min <= 0 || rate.Max > 1 || rate.Min > rate.Max {
			t.Fatalf("invalid completion range for %q: %+v", key, rate)
		}
	}
}

func TestValidateRejectsBadScale(t *testing.T) {
	cfg := defaultedConfig()
	cfg.Generation.NumUsers = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for zero user count")
	}
	if !strings.Contains(err.Error(), "num_users") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsZeroShare(t *testing.T) {
	cfg := defaultedConfig()
	cfg.Teams[1].UserShare = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero team share")
	}
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := defaultedConfig()
	cfg.Database.Driver = "oracle"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestSQLiteDSNIsPath(t *testing.T) {
	db := DatabaseConfig{Driver: "sqlite", Path: "output/demo.sqlite"}
	if db.DSN() != "output/demo.sqlite" {
		t.Fatalf("unexpected sqlite DSN: %q", db.DSN())
	}
}

func TestPostgresDSN(t *testing.T) {
	db := DatabaseConfig{
		Driver:   "postgres",
		Host:     "localhost",
		Port:     5432,
		User:     "seed",
		Password: "secret",
		Database: "demo",
		SSLMode:  "disable",
	}
	dsn := db.DSN()
	for _, part := range []string{"host=localhost", "port=5432", "dbname=demo", "sslmode=disable"} {
		if !strings.Contains(dsn, part) {
			t.Fatalf("DSN missing %q: %q", part, dsn)
		}
	}
}
