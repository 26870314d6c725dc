package config

const (
	EnvPrefix = "CHECKOUT"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "CHECKOUT_APP_ENV"
	EnvPort   = "CHECKOUT_APP_PORT"
	EnvDBDSN  = "CHECKOUT_DB_DSN"
	EnvDBHost = "CHECKOUT_DB_HOST"
	EnvDBUser = "CHECKOUT_DB_USER"
	EnvDBName = "CHECKOUT_DB_NAME"
)

var discreteDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
