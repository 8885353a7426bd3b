package cmd

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	JWTSecret       string
	JWTLifetime     string
	RateLimitPerSec string
	RateLimitBurst  string
}
