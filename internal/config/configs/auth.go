package configs

import "time"

// Auth configures session token issuance. Secret signs HS256 session
// tokens and must be overridden outside local development. TokenTTL is
// the lifetime of an issued session token.
type Auth struct {
	Secret   string        `env:"SECRET" envDefault:"development-secret-change-in-production"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
}
