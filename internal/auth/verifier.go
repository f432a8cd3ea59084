package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"growth-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleCreator = "creator"
	RoleAdmin   = "admin"
)

var (
	ErrMissingToken = errors.New("authorization token is missing")
	ErrInvalidToken = errors.New("authorization token is invalid")
	ErrExpiredToken = errors.New("authorization token has expired")
	ErrForbidden    = errors.New("caller is not allowed to perform this action")
)

// Actor is the authenticated caller of an operation
type Actor struct {
	ID   uuid.UUID
	Role string
}

// IsAdmin reports whether the actor holds the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Claims is the token body issued by the identity provider
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier validates bearer tokens and resolves them to an Actor
type Verifier struct {
	secret []byte
	issuer string
	logger *observability.Logger
	now    func() time.Time
}

func NewVerifier(secret, issuer string, logger *observability.Logger) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
		logger: logger,
		now:    time.Now,
	}
}

// Verify parses a signed token and returns the actor it names
func (v *Verifier) Verify(ctx context.Context, token string) (Actor, error) {
	if token == "" {
		return Actor{}, ErrMissingToken
	}

	var claims Claims
	opts := []jwt.ParserOption{jwt.WithTimeFunc(v.now)}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Actor{}, ErrExpiredToken
		}
		v.logger.Debug(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}), "token rejected")
		return Actor{}, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Actor{}, ErrInvalidToken
	}
	switch claims.Role {
	case RoleCreator, RoleAdmin:
	default:
		return Actor{}, ErrInvalidToken
	}
	return Actor{ID: id, Role: claims.Role}, nil
}

// IssueToken signs a token for actor valid for ttl. Production tokens come from the
// identity provider; this is used by tooling and tests.
func (v *Verifier) IssueToken(actor Actor, ttl time.Duration) (string, error) {
	now := v.now()
	claims := Claims{
		Role: actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID.String(),
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
