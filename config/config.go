package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/qs-lzh/movie-orders/internal/util"
)

const (
	defaultAddr           = ":4000"
	defaultStorageTimeout = 5 * time.Second
)

type Config struct {
	DatabaseDSN string
	Addr        string

	JWTSecret string
	// TokenTTL of zero issues tokens without an expiry claim.
	TokenTTL time.Duration

	// BcryptCost of zero falls back to the bcrypt default.
	BcryptCost int

	// MovieYearCutoff is the highest release year accepted for a movie.
	MovieYearCutoff int

	// StorageTimeout bounds the storage work of a single request.
	StorageTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	tokenTTL, err := envDuration("TOKEN_TTL", 0)
	if err != nil {
		return nil, err
	}
	storageTimeout, err := envDuration("STORAGE_TIMEOUT", defaultStorageTimeout)
	if err != nil {
		return nil, err
	}
	bcryptCost, err := envInt("BCRYPT_COST", 0)
	if err != nil {
		return nil, err
	}
	yearCutoff, err := envInt("MOVIE_YEAR_CUTOFF", time.Now().Year())
	if err != nil {
		return nil, err
	}

	return &Config{
		DatabaseDSN:     os.Getenv("DATABASE_DSN"),
		Addr:            addr,
		JWTSecret:       jwtSecret,
		TokenTTL:        tokenTTL,
		BcryptCost:      bcryptCost,
		MovieYearCutoff: yearCutoff,
		StorageTimeout:  storageTimeout,
	}, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
