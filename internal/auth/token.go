package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"jobboard/internal/config"
	"jobboard/pkg/serrors"
)

// TokenClaims are the claims embedded in issued tokens. Access tokens carry
// the actor id plus the public identity claims; refresh tokens carry only the
// actor id.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the actor's email address, access tokens only.
	Email string `json:"email,omitempty"`
	// Name is the actor's display name (company name or full name), access
	// tokens only.
	Name string `json:"name,omitempty"`
}

// TokenPair groups a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Options configure token signing. Access and refresh tokens use separate
// secrets and lifetimes.
type Options struct {
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
}

// NewOptions constructs an Options value from the application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		AccessSecret:  cfg.Auth.AccessTokenSecret,
		AccessTTL:     cfg.Auth.AccessTokenTTL,
		RefreshSecret: cfg.Auth.RefreshTokenSecret,
		RefreshTTL:    cfg.Auth.RefreshTokenTTL,
	}
}

// TokenManager issues and verifies HS256-signed access and refresh tokens.
type TokenManager struct {
	options Options
}

// NewTokenManager creates a TokenManager with the given options.
func NewTokenManager(options Options) *TokenManager {
	return &TokenManager{options: options}
}

// IssueAccessToken signs a short-lived token embedding the actor id and its
// public identity claims.
func (tm *TokenManager) IssueAccessToken(actorID, email, name string) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.options.AccessTTL)),
		},
		Email: email,
		Name:  name,
	}

	return tm.sign(claims, tm.options.AccessSecret)
}

// IssueRefreshToken signs a longer-lived token embedding only the actor id,
// using the refresh secret. The jti makes every issued token distinct: JWT
// timestamps have one-second granularity, so without it two issuances for
// the same actor within the same second would be byte-identical and rotation
// would hand back the token it was meant to replace.
func (tm *TokenManager) IssueRefreshToken(actorID string) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   actorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.options.RefreshTTL)),
		},
	}

	return tm.sign(claims, tm.options.RefreshSecret)
}

// IssuePair issues a new access and refresh token for the actor. The caller
// is responsible for persisting the refresh token as the actor's single
// active one.
func (tm *TokenManager) IssuePair(actorID, email, name string) (TokenPair, error) {
	access, err := tm.IssueAccessToken(actorID, email, name)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := tm.IssueRefreshToken(actorID)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccessToken validates the token against the access secret and
// returns its claims.
func (tm *TokenManager) VerifyAccessToken(token string) (*TokenClaims, error) {
	return tm.verify(token, tm.options.AccessSecret)
}

// VerifyRefreshToken validates the token against the refresh secret and
// returns its claims.
func (tm *TokenManager) VerifyRefreshToken(token string) (*TokenClaims, error) {
	return tm.verify(token, tm.options.RefreshSecret)
}

func (tm *TokenManager) sign(claims *TokenClaims, secret string) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not sign token")
	}

	return signed, nil
}

// verify collapses every parse failure (bad signature, expired, malformed)
// into ErrUnauthorized; callers cannot tell the cases apart.
func (tm *TokenManager) verify(token, secret string) (*TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, serrors.With(serrors.ErrUnauthorized, "unexpected signing method %v", t.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	claims, ok := parsed.Claims.(*TokenClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid token claims")
	}

	return claims, nil
}
