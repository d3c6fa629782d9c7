package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Listing ListingConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Listing.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	SeedPath string `envconfig:"STOREFRONT_CATALOG_SEED_PATH" default:"seed/catalog.json"`
}

type ListingConfig struct {
	PageSize int `envconfig:"STOREFRONT_LISTING_PAGE_SIZE" default:"9"`

	// ComposeFilters controls whether the search keyword narrows the
	// category-filtered set (true) or both filters run independently over the
	// full catalog (false, the historical behavior).
	ComposeFilters bool `envconfig:"STOREFRONT_LISTING_COMPOSE_FILTERS" default:"false"`
}

func (l ListingConfig) validate() error {
	if l.PageSize < 1 {
		return fmt.Errorf("%s must be at least 1", EnvListingPageSize)
	}
	return nil
}
