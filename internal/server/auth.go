package server

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	commonhttp "github.com/sngm3741/menu-studio/api/internal/interfaces/http/common"
)

var errInvalidToken = errors.New("invalid access token")

type authClaims struct {
	jwt.RegisteredClaims
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	ProviderID string `json:"provider_id,omitempty"`
}

// authMiddleware verifies the bearer token and stores the caller in the
// request context. The tenant is the provider_id claim, or the subject for
// tokens issued to a single business.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "expected a Bearer token")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "empty access token")
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, err.Error())
			return
		}

		providerID := claims.ProviderID
		if providerID == "" {
			providerID = claims.Subject
		}
		user := commonhttp.AuthenticatedUser{
			ID:         claims.Subject,
			Email:      claims.Email,
			Name:       claims.Name,
			ProviderID: providerID,
		}
		next.ServeHTTP(w, r.WithContext(commonhttp.ContextWithUser(r.Context(), user)))
	})
}

// parseAuthToken tries every configured secret in order so a rotated
// secret keeps working until its tokens expire.
func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	if len(s.jwtConfigs) == 0 {
		return nil, fmt.Errorf("auth is not configured")
	}

	for _, cfg := range s.jwtConfigs {
		claims := &authClaims{}
		opts := []jwt.ParserOption{
			jwt.WithLeeway(30 * time.Second),
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		}
		if cfg.Issuer != "" {
			opts = append(opts, jwt.WithIssuer(cfg.Issuer))
		}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
			return cfg.Secret, nil
		}, opts...)
		if err != nil || !token.Valid {
			continue
		}
		if claims.Subject == "" {
			continue
		}
		if s.jwtAudience != "" && !slices.Contains(claims.Audience, s.jwtAudience) {
			continue
		}
		return claims, nil
	}

	return nil, errInvalidToken
}
