package config

// DefaultAdminKey is the insecure fallback used when ADMIN_KEY is not
// set. Deployments must override it.
const DefaultAdminKey = "changeme"

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	AdminKey    string `env:"ADMIN_KEY" default:"changeme"`
	Env         string `env:"APP_ENV" default:"dev"`
}
