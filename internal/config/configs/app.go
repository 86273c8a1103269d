package configs

import "net/url"

// App holds application-level settings. BaseURL is the public URL of the
// deployment and is used to build per-enrollment tracking links of the
// form {BaseURL}/track/{code}.
type App struct {
	BaseURL url.URL `env:"BASE_URL" envDefault:"http://localhost:8080"`
}
