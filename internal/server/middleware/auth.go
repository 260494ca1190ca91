// Package middleware provides HTTP middleware for authentication and authorization.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// userIDKey is the context key for storing the authenticated user ID.
const userIDKey ContextKey = "userID"

// TokenValidator is an interface for validating bearer tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (UserIDGetter, error)
}

// UserIDGetter is an interface for extracting user ID from token claims.
type UserIDGetter interface {
	GetUserID() string
}

// bearerToken returns the token from an "Authorization: Bearer <token>"
// header. ok is false when the header is absent; err is set when it is
// present but malformed.
func bearerToken(r *http.Request) (token string, ok bool, err error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false, nil
	}

	// Handle case-insensitive "Bearer" prefix
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", true, fmt.Errorf("malformed authorization header")
	}
	return parts[1], true, nil
}

// authenticate validates the request token and returns a request carrying
// the user ID in its context.
func authenticate(r *http.Request, validator TokenValidator, token string) (*http.Request, error) {
	claims, err := validator.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	userID := claims.GetUserID()
	if userID == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return r.WithContext(context.WithValue(r.Context(), userIDKey, userID)), nil
}

// AuthMiddleware creates middleware that requires a valid bearer token and
// adds the user ID to the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok, err := bearerToken(r)
			if !ok || err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			authed, err := authenticate(r, validator, token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, authed)
		})
	}
}

// OptionalAuth creates middleware that authenticates the request when a
// bearer token is present and passes anonymous requests through. A present
// but invalid token is rejected.
func OptionalAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok, err := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			authed, err := authenticate(r, validator, token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, authed)
		})
	}
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(r *http.Request) (string, error) {
	userID, ok := r.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user ID not found in request context")
	}
	return userID, nil
}

// WithUserID returns a copy of ctx carrying userID, as AuthMiddleware does.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
