package utils

import "testing"

func TestSha512String(t *testing.T) {
	hash := Sha512String("secret")
	if len(hash) != 128 {
		t.Errorf("hash length = %d, want 128 hex chars", len(hash))
	}
	if hash != Sha512String("secret") {
		t.Error("hash is not deterministic")
	}
	if hash == Sha512String("secret2") {
		t.Error("different inputs collide")
	}
}

func TestRandSalt(t *testing.T) {
	if RandSalt(60) == RandSalt(60) {
		t.Error("salts are not random")
	}
}
