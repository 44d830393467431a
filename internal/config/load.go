package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Имена переменных окружения
const (
	envAddress            = "ADDRESS"
	envDatabaseDSN        = "DATABASE_DSN"
	envEnvironment        = "ENVIRONMENT"
	envAccessTokenSecret  = "ACCESS_TOKEN_SECRET"
	envRefreshTokenSecret = "REFRESH_TOKEN_SECRET"
	envFingerprintSecret  = "TOKEN_FINGERPRINT_SECRET"
	envAccessTokenTTL     = "ACCESS_TOKEN_TTL"
	envRefreshTokenTTL    = "REFRESH_TOKEN_TTL"
	envReapInterval       = "TOKEN_REAP_INTERVAL"
	envBcryptCost         = "BCRYPT_COST"
	envRateLimit          = "RATE_LIMIT"
	envRateLimitWindow    = "RATE_LIMIT_WINDOW"
	envLogLevel           = "LOG_LEVEL"
	envEnvFile            = "ENV_FILE"
)

// Load собирает конфигурацию из значений по умолчанию, .env файла,
// переменных окружения процесса и флагов args (без имени программы)
func Load(args []string) (*Config, error) {
	return load(args, os.LookupEnv)
}

func load(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	// Флаги разбираем первыми: -env-file влияет на выбор .env файла,
	// но применяем их последними
	flags, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	envFile := cfg.EnvFile
	if v, ok := lookupEnv(envEnvFile); ok && v != "" {
		envFile = v
	}
	if flags.set["env-file"] {
		envFile = flags.envFile
	}
	cfg.EnvFile = envFile

	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	// .env, затем окружение процесса
	fromMap := func(key string) (string, bool) {
		v, ok := dotenv[key]
		return v, ok
	}
	if err := applyEnv(cfg, fromMap); err != nil {
		return nil, fmt.Errorf("%s: %w", envFile, err)
	}
	if err := applyEnv(cfg, lookupEnv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	applyFlags(cfg, flags)

	return cfg, nil
}

// applyEnv перекрывает поля cfg значениями из lookup
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		envAddress:            &cfg.Address,
		envDatabaseDSN:        &cfg.DatabaseDSN,
		envEnvironment:        &cfg.Environment,
		envAccessTokenSecret:  &cfg.AccessTokenSecret,
		envRefreshTokenSecret: &cfg.RefreshTokenSecret,
		envFingerprintSecret:  &cfg.FingerprintSecret,
		envLogLevel:           &cfg.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		envAccessTokenTTL:  &cfg.AccessTokenTTL,
		envRefreshTokenTTL: &cfg.RefreshTokenTTL,
		envReapInterval:    &cfg.ReapInterval,
		envRateLimitWindow: &cfg.RateLimitWindow,
	}
	for key, dst := range durations {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
	}

	ints := map[string]*int{
		envBcryptCost: &cfg.BcryptCost,
		envRateLimit:  &cfg.RateLimit,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = n
	}

	return nil
}

// flagValues значения флагов и множество явно заданных
type flagValues struct {
	set             map[string]bool
	address         string
	databaseDSN     string
	environment     string
	envFile         string
	logLevel        string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	reapInterval    time.Duration
	bcryptCost      int
	showVersion     bool
}

func parseFlags(args []string) (*flagValues, error) {
	fset := flag.NewFlagSet("server", flag.ContinueOnError)
	v := &flagValues{set: make(map[string]bool)}

	fset.StringVar(&v.address, "a", "", "address and port to run server")
	fset.StringVar(&v.databaseDSN, "d", "", "database DSN (SQLite file path or postgres:// URL)")
	fset.StringVar(&v.environment, "environment", "", "development or production")
	fset.StringVar(&v.envFile, "env-file", "", "path to .env file")
	fset.StringVar(&v.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fset.DurationVar(&v.accessTokenTTL, "access-ttl", 0, "access token lifetime")
	fset.DurationVar(&v.refreshTokenTTL, "refresh-ttl", 0, "refresh token lifetime")
	fset.DurationVar(&v.reapInterval, "reap-interval", 0, "stale token record cleanup interval")
	fset.IntVar(&v.bcryptCost, "bcrypt-cost", 0, "bcrypt cost")
	fset.BoolVar(&v.showVersion, "version", false, "show version information")

	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	fset.Visit(func(f *flag.Flag) {
		v.set[f.Name] = true
	})

	return v, nil
}

// applyFlags перекрывает поля cfg только явно заданными флагами
func applyFlags(cfg *Config, v *flagValues) {
	if v.set["a"] {
		cfg.Address = v.address
	}
	if v.set["d"] {
		cfg.DatabaseDSN = v.databaseDSN
	}
	if v.set["environment"] {
		cfg.Environment = v.environment
	}
	if v.set["log-level"] {
		cfg.LogLevel = v.logLevel
	}
	if v.set["access-ttl"] {
		cfg.AccessTokenTTL = v.accessTokenTTL
	}
	if v.set["refresh-ttl"] {
		cfg.RefreshTokenTTL = v.refreshTokenTTL
	}
	if v.set["reap-interval"] {
		cfg.ReapInterval = v.reapInterval
	}
	if v.set["bcrypt-cost"] {
		cfg.BcryptCost = v.bcryptCost
	}
	cfg.ShowVersion = v.showVersion
}
