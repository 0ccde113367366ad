package auth

import (
	"context"
	"net/http"
	"strings"
)

// contextKey is an unexported type used for context keys in this package.
//
// WHY A CUSTOM TYPE FOR CONTEXT KEYS?
// context.WithValue uses any as the key type. If you use a plain string like
// context.WithValue(ctx, "userID", id), ANY package that knows the string "userID"
// can read or shadow your value. Using a package-private type prevents collisions:
// only THIS package can create a key of type contextKey, so only this package
// can read or write userID values in the context.
type contextKey string

const userIDKey contextKey = "userID"

// RequireAuth is a middleware that enforces authentication on protected routes.
//
// It reads the JWT from the "Authorization: Bearer <token>" header, validates
// it, and stores the userID in the request context. Exactly three outcomes
// exist per request:
//
//  1. No token presented (header missing, not a Bearer scheme, or empty
//     bearer segment) → 401 Unauthorized. The token service is never called.
//  2. Token presented but validation fails (expired, tampered, garbage), or
//     validation succeeds but yields an empty identity → 403 Forbidden. An
//     empty identity is rejected here too, so a token service that somehow
//     returns a valid-looking but empty subject can't slip an anonymous
//     request past the gate.
//  3. Token valid → userID bound into the context, next handler runs.
//
// The middleware never touches the database — identity comes entirely from
// the signed token.
//
// MIDDLEWARE PATTERN IN GO:
// A middleware is a function that takes an http.Handler and returns a new
// http.Handler. The new handler "wraps" the original:
//
//	func Middleware(next http.Handler) http.Handler {
//	    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	        // ... do stuff before the handler ...
//	        next.ServeHTTP(w, r)
//	        // ... do stuff after the handler ...
//	    })
//	}
//
// Chi applies middlewares in a chain: req → M1 → M2 → Handler → M2 → M1 → resp
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r)
			if !ok {
				http.Error(w, `{"error":"unauthorized","message":"authentication required"}`, http.StatusUnauthorized)
				return
			}

			userID, err := tokens.Validate(tokenStr)
			if err != nil || userID == "" {
				http.Error(w, `{"error":"forbidden","message":"invalid or expired token"}`, http.StatusForbidden)
				return
			}

			// Store userID in context so handlers can read it
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext retrieves the authenticated user's ID from the request context.
//
// Returns ("", false) if no valid token was presented on this request.
// Returns (id, true) if the user is authenticated.
//
// Usage in handlers:
//
//	userID, ok := auth.UserIDFromContext(r.Context())
//	if !ok {
//	    // should not happen behind RequireAuth, but fail closed
//	}
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// ContextWithUserID returns a copy of ctx carrying the given userID.
// Exported for tests that call handlers directly without the middleware.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// bearerToken extracts the token from the Authorization header.
// Returns ("", false) when the header is absent, uses a different scheme,
// or carries no token after "Bearer" — all of which count as "no token
// presented", not as a bad token.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
