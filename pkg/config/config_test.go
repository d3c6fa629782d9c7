package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Listing.PageSize != 9 {
		t.Fatalf("expected default page size 9, got %d", cfg.Listing.PageSize)
	}
	if cfg.Listing.ComposeFilters {
		t.Fatalf("compose filters should default to the historical behavior (off)")
	}
	if cfg.App.LogLevel != "info" {
		t.Fatalf("unexpected default log level %q", cfg.App.LogLevel)
	}
	if cfg.Catalog.SeedPath == "" {
		t.Fatalf("expected a default seed path")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvListingPageSize, "12")
	t.Setenv(EnvListingComposeFilters, "true")
	t.Setenv(EnvCatalogSeedPath, "/srv/catalog.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected IsProd true for %q", cfg.App.Env)
	}
	if cfg.Listing.PageSize != 12 {
		t.Fatalf("expected page size 12, got %d", cfg.Listing.PageSize)
	}
	if !cfg.Listing.ComposeFilters {
		t.Fatalf("expected compose filters enabled")
	}
	if cfg.Catalog.SeedPath != "/srv/catalog.json" {
		t.Fatalf("unexpected seed path %q", cfg.Catalog.SeedPath)
	}
}

func TestLoad_RejectsBadPageSize(t *testing.T) {
	t.Setenv(EnvListingPageSize, "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected a page size below 1 to be rejected")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}
}
