// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("hash must not equal the plain password")
	}

	ok, err := CheckPassword(hash, "correct horse")
	if err != nil || !ok {
		t.Errorf("expected password to match, ok=%v err=%v", ok, err)
	}

	ok, err = CheckPassword(hash, "wrong horse")
	if err != nil || ok {
		t.Errorf("expected mismatch without error, ok=%v err=%v", ok, err)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _ := HashPassword("secret", bcrypt.MinCost)
	h2, _ := HashPassword("secret", bcrypt.MinCost)
	if h1 == h2 {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	if _, err := HashPassword("secret", bcrypt.MaxCost+1); err == nil {
		t.Error("expected error for cost above bcrypt.MaxCost")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	ok, err := CheckPassword("not-a-bcrypt-hash", "secret")
	if ok || err == nil {
		t.Errorf("expected error for malformed hash, ok=%v err=%v", ok, err)
	}
}
