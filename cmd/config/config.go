package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config collects every environment option the server recognizes. The three
// historical deployment variants differed only in these values, so they are
// all tunable here with the production variant's settings as defaults.
type Config struct {
	Port           int
	JWTSecret      string
	TokenTTL       time.Duration
	MaxUploadBytes int64
	LogVerbosity   string

	StoreDriver string
	SQLitePath  string

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
	StorageRegion     string
}

// Load reads configuration from the environment. It returns an error rather
// than falling back to a built-in signing secret: a predictable JWT_SECRET
// makes every issued token forgeable.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 10000)
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("MAX_UPLOAD_BYTES", int64(100*1024*1024))
	v.SetDefault("LOG_VERBOSITY", "info")
	v.SetDefault("STORE_DRIVER", "memory")
	v.SetDefault("SQLITE_PATH", "videos.db")
	v.SetDefault("STORAGE_REGION", "eeur")

	cfg := Config{
		Port:              v.GetInt("PORT"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		MaxUploadBytes:    v.GetInt64("MAX_UPLOAD_BYTES"),
		LogVerbosity:      v.GetString("LOG_VERBOSITY"),
		StoreDriver:       v.GetString("STORE_DRIVER"),
		SQLitePath:        v.GetString("SQLITE_PATH"),
		R2AccountID:       v.GetString("R2_ACCOUNT_ID"),
		R2AccessKeyID:     v.GetString("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: v.GetString("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      v.GetString("R2_BUCKET_NAME"),
		R2PublicURL:       v.GetString("R2_PUBLIC_URL"),
		StorageRegion:     v.GetString("STORAGE_REGION"),
	}

	ttl, err := time.ParseDuration(v.GetString("TOKEN_TTL"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	switch c.StoreDriver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	for _, missing := range []struct {
		name, value string
	}{
		{"R2_ACCOUNT_ID", c.R2AccountID},
		{"R2_ACCESS_KEY_ID", c.R2AccessKeyID},
		{"R2_SECRET_ACCESS_KEY", c.R2SecretAccessKey},
		{"R2_BUCKET_NAME", c.R2BucketName},
		{"R2_PUBLIC_URL", c.R2PublicURL},
	} {
		if missing.value == "" {
			return fmt.Errorf("%s must be set", missing.name)
		}
	}
	return nil
}

// Endpoint returns the S3-compatible endpoint for the configured R2 account.
func (c Config) Endpoint() string {
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", c.R2AccountID)
}
