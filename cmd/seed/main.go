// Command seed fills a tenant's menu through the HTTP API using the same
// editors as the dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/sngm3741/menu-studio/api/internal/apiclient"
	"github.com/sngm3741/menu-studio/api/internal/logger"
)

type seedOptions struct {
	apiURL     string
	token      string
	secret     string
	issuer     string
	providerID string
	file       string
	timeout    time.Duration
}

func main() {
	opts := parseFlags()

	log, err := logger.New(envOr("LOG_LEVEL", "info"), "console")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(opts, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.StringVar(&opts.apiURL, "api", envOr("SEED_API_URL", "http://localhost:8080"), "API base URL")
	flag.StringVar(&opts.token, "token", os.Getenv("SEED_TOKEN"), "bearer token (skips -secret)")
	flag.StringVar(&opts.secret, "secret", os.Getenv("AUTH_JWT_SECRET"), "HS256 secret used to mint a token")
	flag.StringVar(&opts.issuer, "issuer", envOr("AUTH_JWT_ISSUER", "menu-studio-auth"), "token issuer")
	flag.StringVar(&opts.providerID, "provider", envOr("SEED_PROVIDER_ID", "demo"), "tenant / provider id")
	flag.StringVar(&opts.file, "file", "", "seed JSON file (defaults to the bundled sample)")
	flag.DurationVar(&opts.timeout, "timeout", time.Minute, "overall timeout")
	flag.Parse()
	return opts
}

func run(opts seedOptions, log *zap.Logger) error {
	raw := sampleData
	if opts.file != "" {
		b, err := os.ReadFile(opts.file)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}
	data, err := parseSeed(raw)
	if err != nil {
		return err
	}

	token := strings.TrimSpace(opts.token)
	if token == "" {
		if opts.secret == "" {
			return fmt.Errorf("either -token or -secret is required")
		}
		token, err = mintToken(opts.secret, opts.issuer, opts.providerID, time.Now())
		if err != nil {
			return err
		}
	}

	client, err := apiclient.New(apiclient.Config{
		BaseURL: opts.apiURL,
		Auth:    apiclient.StaticAuth{Token: token},
		Logger:  log.Named("apiclient"),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	result, err := seed(ctx, client, log.Named("editor"), opts.providerID, data)
	if err != nil {
		return err
	}
	log.Info("seed complete",
		zap.String("provider", result.Provider),
		zap.Int("categories", result.Categories),
		zap.Int("items", result.Items),
		zap.String("menu", strings.TrimRight(opts.apiURL, "/")+"/api/public/menus/"+result.Provider),
	)
	return nil
}

// mintToken issues a short-lived owner token for providerID.
func mintToken(secret, issuer, providerID string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":         "seed",
		"provider_id": providerID,
		"iat":         now.Unix(),
		"exp":         now.Add(15 * time.Minute).Unix(),
	}
	if issuer != "" {
		claims["iss"] = issuer
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
