// Package jwttoken issues and validates the signed actor tokens the console
// staff present on every request. The identity provider performs the actual
// login; this service only mints short-lived API tokens from its assertions.
package jwttoken

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "quorum/pkg/domain-errors"
)

// ActorClaims represents the JWT claims carried by actor access tokens.
// The actor is the staff user performing console operations; their id and
// display name are stamped onto every registration and activity record.
type ActorClaims struct {
	ActorName string `json:"actor_name"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Service handles JWT creation and validation.
type Service struct {
	signingKey []byte
	issuer     string
	audience   string
	tokenTTL   time.Duration
}

func NewService(signingKey, issuer, audience string, tokenTTL time.Duration) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
		tokenTTL:   tokenTTL,
	}
}

// GenerateActorToken mints a signed token for the given actor.
// The actor id becomes the subject; role and display name travel as custom claims.
func (s *Service) GenerateActorToken(actorID, actorName, role string) (string, error) {
	if strings.TrimSpace(actorID) == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "actor id is required")
	}

	now := time.Now()
	claims := ActorClaims{
		ActorName: actorName,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actorID,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign actor token")
	}
	return signed, nil
}

// ValidateToken parses and validates a signed actor token.
func (s *Service) ValidateToken(tokenString string) (*ActorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ActorClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unexpected signing method")
		}
		return s.signingKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid actor token")
	}

	claims, ok := token.Claims.(*ActorClaims)
	if !ok || !token.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid actor token")
	}
	if claims.Subject == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "actor token missing subject")
	}
	return claims, nil
}
