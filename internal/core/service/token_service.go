package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/utilize/marketplace-api/internal/api/metrics"
	"github.com/utilize/marketplace-api/internal/core/domain"
	"github.com/utilize/marketplace-api/internal/core/ports"
)

// TokenTTL is the fixed lifetime of every issued credential.
const TokenTTL = 7 * 24 * time.Hour

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies HS256 credentials bound to a principal email.
// Tokens are stateless; there is no revocation.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// TokenOption customises a TokenService.
type TokenOption func(*TokenService)

// WithClock overrides the time source used for issuance and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(secret string, opts ...TokenOption) *TokenService {
	s := &TokenService{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue returns a signed token for email expiring TokenTTL from now.
func (s *TokenService) Issue(email string) (ports.IssuedToken, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return ports.IssuedToken{}, fmt.Errorf("issue token: empty identity")
	}

	now := s.now()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return ports.IssuedToken{}, fmt.Errorf("issue token: %w", err)
	}

	metrics.TokensIssuedTotal.Inc()
	return ports.IssuedToken{Token: signed, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Verify checks signature and expiry and returns the bound principal.
// Every failure wraps domain.ErrInvalidToken.
func (s *TokenService) Verify(raw string) (domain.Principal, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !tkn.Valid || claims.Email == "" {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	return domain.Principal{Email: claims.Email, ExpiresAt: claims.ExpiresAt.Time}, nil
}
