package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names so
// the prefix is only a namespace for generated docs.
const EnvPrefix = "DIPAK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv                 = "DIPAK_APP_ENV"
	EnvPort                   = "DIPAK_APP_PORT"
	EnvDBDSN                  = "DIPAK_DB_DSN"
	EnvDBHost                 = "DIPAK_DB_HOST"
	EnvDBUser                 = "DIPAK_DB_USER"
	EnvDBName                 = "DIPAK_DB_NAME"
	EnvRedisURL               = "DIPAK_REDIS_URL"
	EnvJWTSecret              = "DIPAK_JWT_SECRET"
	EnvJWTIssuer              = "DIPAK_JWT_ISSUER"
	EnvJWTExpMins             = "DIPAK_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "DIPAK_REFRESH_TOKEN_TTL_MINUTES"
	EnvWhatsAppNumber         = "DIPAK_CHECKOUT_WHATSAPP_NUMBER"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
