package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"quorum/internal/jwttoken"
)

// TokenValidator defines the interface for validating actor tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwttoken.ActorClaims, error)
}

// Actor identifies the authenticated staff user performing a request.
// The core treats it as an opaque (id, name) pair supplied by the identity
// provider; the role travels alongside for endpoint gating.
type Actor struct {
	ID   string
	Name string
	Role string
}

type actorKey struct{}

// GetActor retrieves the authenticated actor from the context.
// The zero Actor is returned when no authentication has run.
func GetActor(ctx context.Context) Actor {
	if a, ok := ctx.Value(actorKey{}).(Actor); ok {
		return a
	}
	return Actor{}
}

// WithActor returns a context carrying the given actor. Exposed for tests
// that exercise service paths without the HTTP stack.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorSeenFunc is notified after each successfully authenticated request so
// login presence can be reflected elsewhere without coupling the middleware
// to any store.
type ActorSeenFunc func(ctx context.Context, actorID, actorName, userAgent string)

// Authenticate validates the bearer token and places the actor into the
// request context. Requests without a valid token are rejected with 401.
func Authenticate(validator TokenValidator, logger *slog.Logger, onSeen ActorSeenFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(r.Context(), "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(r.Context()),
					"path", r.URL.Path,
				)
				writeAuthError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}

			actor := Actor{ID: claims.Subject, Name: claims.ActorName, Role: claims.Role}
			ctx := WithActor(r.Context(), actor)

			if onSeen != nil {
				onSeen(ctx, actor.ID, actor.Name, r.UserAgent())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated requests whose actor role is not in the
// allowed set. Must be mounted after Authenticate.
func RequireRole(logger *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := GetActor(r.Context())
			if _, ok := allowed[actor.Role]; !ok {
				logger.WarnContext(r.Context(), "forbidden access - insufficient role",
					"actor_id", actor.ID,
					"role", actor.Role,
					"request_id", GetRequestID(r.Context()),
					"path", r.URL.Path,
				)
				writeAuthError(w, http.StatusForbidden, "forbidden", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + errCode + `","error_description":"` + errDesc + `"}`))
}
