package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordNeverEqualsPlaintext(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals plaintext")
	}
	if len(hash) != 60 {
		t.Fatalf("bcrypt hash length = %d, want 60", len(hash))
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(hash, "secret123") {
		t.Fatal("correct password rejected")
	}
	// Any single-character mutation must fail.
	for i := 0; i < len("secret123"); i++ {
		mutated := []byte("secret123")
		mutated[i]++
		if VerifyPassword(hash, string(mutated)) {
			t.Fatalf("mutated password %q accepted", mutated)
		}
	}
}
