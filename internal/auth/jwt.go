package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/merchops/sku-dash-be/internal/models"
	"github.com/merchops/sku-dash-be/internal/store"
	"github.com/rs/zerolog/log"
)

type contextKey string

// UserKey is the context key under which the middleware stores the
// authenticated user.
const UserKey = contextKey("currentUser")

// GenerateToken creates a signed HS256 JWT whose subject is the username,
// expiring after ttl.
func GenerateToken(username string, secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSubject validates a token string and returns its subject. Any
// signature, structure, or expiry problem yields an error.
func ParseSubject(tokenStr string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}

// Middleware protects routes with a bearer token. The token's subject is
// resolved against the user store on every request; requests whose subject
// no longer maps to a user are rejected the same way as bad tokens.
func Middleware(secret []byte, users *store.Users) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" {
				http.Error(w, "Missing auth token", http.StatusUnauthorized)
				return
			}

			subject, err := ParseSubject(tokenStr, secret)
			if err != nil {
				log.Warn().Err(err).Msg("Rejected auth token")
				http.Error(w, "Invalid auth token", http.StatusUnauthorized)
				return
			}

			user, found := users.GetByUsername(subject)
			if !found {
				log.Warn().Str("subject", subject).Msg("Token subject does not resolve to a user")
				http.Error(w, "Invalid auth token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser retrieves the authenticated user placed in the context by
// Middleware.
func CurrentUser(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserKey).(models.User)
	return user, ok
}
