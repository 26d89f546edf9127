package config

// EnvPrefix is the prefix envconfig uses when resolving variables.
const EnvPrefix = "gamehub"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names shared with tests and deploy tooling.
const (
	EnvAppEnv        = "GAMEHUB_APP_ENV"
	EnvPort          = "GAMEHUB_APP_PORT"
	EnvJWTSecret     = "GAMEHUB_JWT_SECRET"
	EnvJWTIssuer     = "GAMEHUB_JWT_ISSUER"
	EnvJWTExpiration = "GAMEHUB_JWT_EXPIRATION_MINUTES"
)
