package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFrom_Defaults(t *testing.T) {
	config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfigFrom() error = %v", err)
	}

	if config.App.Port != "8080" {
		t.Errorf("Port = %q, want 8080", config.App.Port)
	}
	if config.App.StoreDriver != StoreDriverPostgres {
		t.Errorf("StoreDriver = %q, want %q", config.App.StoreDriver, StoreDriverPostgres)
	}
	if config.App.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", config.App.ShutdownTimeout)
	}
	if config.Database.MaxConns != 10 {
		t.Errorf("MaxConns = %d, want 10", config.Database.MaxConns)
	}
	if !config.Database.Migrate {
		t.Error("Migrate should default to true")
	}
	if config.RateLimit.Requests != 100 || config.RateLimit.Window != time.Minute {
		t.Errorf("RateLimit = %+v, want 100 per 1m", config.RateLimit)
	}
	if len(config.CORS.AllowedOrigins) != 0 {
		t.Errorf("AllowedOrigins = %v, want none", config.CORS.AllowedOrigins)
	}
}

func TestLoadConfigFrom_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_NAME=catalog-test\nPORT=9090\nSTORE_DRIVER=Memory\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "7070")

	config, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom() error = %v", err)
	}

	if config.App.Name != "catalog-test" {
		t.Errorf("Name = %q, want catalog-test", config.App.Name)
	}
	if config.App.Port != "7070" {
		t.Errorf("Port = %q, environment should win over the file", config.App.Port)
	}
	if config.App.StoreDriver != StoreDriverMemory {
		t.Errorf("StoreDriver = %q, want %q", config.App.StoreDriver, StoreDriverMemory)
	}
	if len(config.CORS.AllowedOrigins) != 2 || config.CORS.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("AllowedOrigins = %v", config.CORS.AllowedOrigins)
	}
}

func TestLoadConfigFrom_InvalidStoreDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	if _, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected an error for an unknown store driver")
	}
}
