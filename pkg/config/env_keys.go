package config

// EnvPrefix namespaces every storefront environment variable.
const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv                = "STOREFRONT_APP_ENV"
	EnvLogLevel              = "STOREFRONT_LOG_LEVEL"
	EnvLogWarnStack          = "STOREFRONT_LOG_WARN_STACK"
	EnvCatalogSeedPath       = "STOREFRONT_CATALOG_SEED_PATH"
	EnvListingPageSize       = "STOREFRONT_LISTING_PAGE_SIZE"
	EnvListingComposeFilters = "STOREFRONT_LISTING_COMPOSE_FILTERS"
)
