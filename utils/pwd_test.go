package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "secret123" {
		t.Error("哈希结果不应等于明文")
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("CheckPassword() = false, want true")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("CheckPassword() = true, want false")
	}
}
