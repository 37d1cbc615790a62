package configs

import "time"

// Auth configures HS256 access tokens. Requests are accepted with a
// bearer header or with a cookie named CookieName.
type Auth struct {
	Secret     string        `env:"SECRET,required"`
	Issuer     string        `env:"ISSUER" envDefault:"edu-dashboard"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	CookieName string        `env:"COOKIE_NAME" envDefault:"token"`
}
