package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService("secret", "winterarc", time.Hour)

	token, err := svc.IssueToken("u1", time.Now())
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	userID, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if userID != "u1" {
		t.Errorf("VerifyToken() = %q, want u1", userID)
	}
}

func TestVerifyTokenRejects(t *testing.T) {
	svc := NewAuthService("secret", "winterarc", time.Hour)

	expired, _ := svc.IssueToken("u1", time.Now().Add(-2*time.Hour))
	otherKey, _ := NewAuthService("other", "winterarc", time.Hour).IssueToken("u1", time.Now())
	otherIssuer, _ := NewAuthService("secret", "elsewhere", time.Hour).IssueToken("u1", time.Now())
	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "u1",
		Issuer:  "winterarc",
	}).SignedString([]byte("secret"))
	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "winterarc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"expired", expired},
		{"wrong key", otherKey},
		{"wrong issuer", otherIssuer},
		{"no expiry", noExpiry},
		{"no subject", noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.VerifyToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("VerifyToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestIssueTokenRequiresUser(t *testing.T) {
	if _, err := NewAuthService("secret", "", time.Hour).IssueToken("", time.Now()); err == nil {
		t.Error("IssueToken(\"\") error = nil, want error")
	}
}
