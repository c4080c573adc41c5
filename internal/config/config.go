package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr               string
	MongoURI           string
	MongoDatabase      string
	ProviderCollection string
	CategoryCollection string
	MenuItemCollection string
	Timeout            time.Duration
	RequestTimeout     time.Duration
	Timezone           string
	JWTConfigs         []JWTConfig
	JWTAudience        string
	AllowedOrigins     []string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	MenuCacheTTL       time.Duration
	LogLevel           string
	LogFormat          string
}

var defaults = map[string]any{
	"http_addr":             ":8080",
	"mongo_uri":             "mongodb://mongo:27017",
	"mongo_db":              "menu-studio",
	"provider_collection":   "providers",
	"category_collection":   "categories",
	"menu_item_collection":  "menu_items",
	"mongo_connect_timeout": "10s",
	"request_timeout":       "5s",
	"timezone":              "Asia/Tehran",
	"auth_jwt_issuer":       "menu-studio-auth",
	"api_allowed_origins":   "*",
	"redis_db":              0,
	"menu_cache_ttl":        "5m",
	"log_level":             "info",
	"log_format":            "json",
}

// Load reads .env (when present) and the environment and returns a fully
// populated Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

// FromViper builds a Config from an already prepared viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	timeout, err := duration(v, "mongo_connect_timeout")
	if err != nil {
		return Config{}, err
	}
	requestTimeout, err := duration(v, "request_timeout")
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := duration(v, "menu_cache_ttl")
	if err != nil {
		return Config{}, err
	}

	var jwtConfigs []JWTConfig
	issuer := strings.TrimSpace(v.GetString("auth_jwt_issuer"))
	if secret := strings.TrimSpace(v.GetString("auth_jwt_secret")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{Issuer: issuer, Secret: []byte(secret)})
	}
	// previous secret stays accepted while tokens signed with it expire
	if secret := strings.TrimSpace(v.GetString("auth_jwt_previous_secret")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{Issuer: issuer, Secret: []byte(secret)})
	}
	if len(jwtConfigs) == 0 {
		return Config{}, errors.New("JWT secret not configured. Set AUTH_JWT_SECRET")
	}

	cfg := Config{
		Addr:               v.GetString("http_addr"),
		MongoURI:           v.GetString("mongo_uri"),
		MongoDatabase:      v.GetString("mongo_db"),
		ProviderCollection: v.GetString("provider_collection"),
		CategoryCollection: v.GetString("category_collection"),
		MenuItemCollection: v.GetString("menu_item_collection"),
		Timeout:            timeout,
		RequestTimeout:     requestTimeout,
		Timezone:           v.GetString("timezone"),
		JWTConfigs:         jwtConfigs,
		JWTAudience:        strings.TrimSpace(v.GetString("auth_jwt_audience")),
		AllowedOrigins:     parseList(v.GetString("api_allowed_origins"), []string{"*"}),
		RedisAddr:          strings.TrimSpace(v.GetString("redis_addr")),
		RedisPassword:      v.GetString("redis_password"),
		RedisDB:            v.GetInt("redis_db"),
		MenuCacheTTL:       cacheTTL,
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
	}
	return cfg, nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", strings.ToUpper(key), raw, err)
	}
	return d, nil
}

func parseList(raw string, fallback []string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
