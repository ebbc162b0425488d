package configs

// Auth configures how vendor identity is taken from requests. With a
// Secret, callers must send an HS256 bearer token whose subject is the
// vendor id. Without one the X-Vendor-ID header is trusted, which is only
// meant for local development behind a trusted gateway.
type Auth struct {
	Secret string `env:"SECRET"`
	Issuer string `env:"ISSUER"`
}
