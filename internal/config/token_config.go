package config

import "time"

type TokenConfig interface {
	GetTokenSecret() string
	GetTokenExpiry() time.Duration
}

type Token struct{}

var _ TokenConfig = Token{}

// GetTokenSecret returns the shared HMAC signing secret. The default exists
// for local development only; deployments must set MEDIAVERSE_TOKEN_SECRET.
func (Token) GetTokenSecret() string {
	return GetEnv("MEDIAVERSE_TOKEN_SECRET", "dev-only-secret")
}

func (Token) GetTokenExpiry() time.Duration {
	return 1 * time.Hour
}
