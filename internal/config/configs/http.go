package configs

// HTTP defines configuration for the HTTP server. Only the listen port is
// configurable; the server binds all interfaces.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
