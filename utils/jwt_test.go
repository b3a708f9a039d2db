package utils

import (
	"errors"
	"testing"
	"time"

	"blueblog/config"
	"blueblog/global"

	"github.com/dgrijalva/jwt-go"
)

func setupJwtConfig(t *testing.T) {
	t.Helper()
	global.Config = &config.Config{
		Jwt: config.Jwt{Secret: "test-secret", Expires: 1, Issuer: "blueblog"},
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJwtConfig(t)

	token, err := GenerateToken("alice", 42)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want %q", claims.Username, "alice")
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Subject != "alice" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "alice")
	}
	if !ValidateToken(token) {
		t.Error("ValidateToken() = false, want true")
	}
}

func TestParseTokenExpired(t *testing.T) {
	setupJwtConfig(t)

	now := time.Now().Add(-2 * time.Hour)
	claims := CustomClaims{
		Username: "alice",
		UserID:   42,
		StandardClaims: jwt.StandardClaims{
			Subject:   "alice",
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	_, err = ParseToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ParseToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestParseTokenWrongKey(t *testing.T) {
	setupJwtConfig(t)

	claims := CustomClaims{
		Username: "alice",
		UserID:   42,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	_, err = ParseToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ParseToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestParseTokenMalformed(t *testing.T) {
	setupJwtConfig(t)

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("ParseToken(%q) error = %v, want ErrTokenInvalid", token, err)
		}
	}
}

func TestDefaultSecretFallback(t *testing.T) {
	global.Config = &config.Config{}

	token, err := GenerateToken("bob", 7)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
}
