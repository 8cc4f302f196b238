package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset or
// malformed values leave the current value in place.
//
// Recognized variables:
//
//	REST_ADDRESS         bind address for the REST endpoint
//	GRPC_ADDRESS         bind address for the gRPC endpoint
//	DATABASE_DSN         PostgreSQL DSN
//	JWT_SECRET_KEY       HMAC signing secret
//	ACCESS_TOKEN_TTL     access token lifetime (time.ParseDuration)
//	REFRESH_TOKEN_TTL    refresh token lifetime (time.ParseDuration)
//	BCRYPT_COST          bcrypt work factor
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("REST_ADDRESS"); ok {
		config.EndpointAddrREST = v
	}
	if v, ok := os.LookupEnv("GRPC_ADDRESS"); ok {
		config.EndpointAddrGRPC = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("REFRESH_TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.RefreshTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
