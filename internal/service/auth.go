package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService verifies the identity provider's HS256 access tokens. The
// token subject is the user id.
type AuthService struct {
	jwtSecret []byte
	issuer    string
	expiry    time.Duration
}

func NewAuthService(jwtSecret, issuer string, expiry time.Duration) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		issuer:    issuer,
		expiry:    expiry,
	}
}

// IssueToken signs a token for userID valid from now. Used by operators to
// mint tokens for scripts and local testing.
func (s *AuthService) IssueToken(userID string, now time.Time) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken checks signature, expiry and issuer and returns the subject.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
