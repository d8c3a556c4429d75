package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultJWTSecret signs tokens when JWT_SECRET is unset. It is only
// accepted together with the in-memory store.
const DefaultJWTSecret = "dev-secret-please-change"

// Config holds the API server settings read from the environment.
type Config struct {
	Port               string
	DatabaseURL        string // empty selects the in-memory store
	RedisURL           string // empty selects the in-memory token denylist
	JWTSecret          string
	TokenTTL           time.Duration
	DefaultWalletMoney int64
	SeedProducts       bool
	MidtransServerKey  string
	MidtransEnv        string
}

// Load reads the environment and returns the server configuration.
func Load() (*Config, error) {
	ttlHours, err := getenvInt("TOKEN_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}
	if ttlHours <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL_HOURS must be positive, got %d", ttlHours)
	}
	wallet, err := getenvInt("DEFAULT_WALLET_MONEY", 5000)
	if err != nil {
		return nil, err
	}
	if wallet < 0 {
		return nil, fmt.Errorf("DEFAULT_WALLET_MONEY must not be negative, got %d", wallet)
	}
	seed, err := strconv.ParseBool(getenvDefault("SEED_PRODUCTS", "true"))
	if err != nil {
		return nil, fmt.Errorf("SEED_PRODUCTS: %w", err)
	}
	env := getenvDefault("MIDTRANS_ENV", "sandbox")
	if env != "sandbox" && env != "production" {
		return nil, fmt.Errorf("MIDTRANS_ENV must be sandbox or production, got %q", env)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL != "" && os.Getenv("JWT_SECRET") == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set when DATABASE_URL is set")
	}

	return &Config{
		Port:               getenvDefault("PORT", "8082"),
		DatabaseURL:        databaseURL,
		RedisURL:           os.Getenv("REDIS_URL"),
		JWTSecret:          getenvDefault("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:           time.Duration(ttlHours) * time.Hour,
		DefaultWalletMoney: int64(wallet),
		SeedProducts:       seed,
		MidtransServerKey:  os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransEnv:        env,
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
