package config

const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

const (
	EnvAppEnv          = "STOREFRONT_APP_ENV"
	EnvPort            = "STOREFRONT_APP_PORT"
	EnvLogLevel        = "STOREFRONT_LOG_LEVEL"
	EnvLogFormat       = "STOREFRONT_LOG_FORMAT"
	EnvShutdownTimeout = "STOREFRONT_SHUTDOWN_TIMEOUT"
	EnvCORSOrigins     = "STOREFRONT_CORS_ORIGINS"
	EnvCatalogPath     = "STOREFRONT_CATALOG_PATH"
	EnvSessionStore    = "STOREFRONT_SESSION_STORE"
	EnvSessionTTL      = "STOREFRONT_SESSION_TTL"
	EnvSessionCookie   = "STOREFRONT_SESSION_COOKIE"
	EnvRedisURL        = "STOREFRONT_REDIS_URL"
	EnvRedisAddr       = "STOREFRONT_REDIS_ADDR"
)
