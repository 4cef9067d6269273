package core

import (
	"strings"
	"testing"
)

func TestArgon2_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "success", password: "testPassword123", wantErr: false},
		{name: "empty password", password: "", wantErr: false},
		{name: "long password", password: strings.Repeat("a", 128), wantErr: false},
		{name: "unicode", password: "パスワード🔐", wantErr: false},
		{name: "special chars", password: "p@ssw0rd!#$%", wantErr: false},
		{name: "null byte", password: "pass\x00word", wantErr: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			a := testHasher()

			// Act
			hash, err := a.Hash(test.password)

			// Assert
			if (err != nil) != test.wantErr {
				t.Fatalf("Hash() error = %v, wantErr %v", err, test.wantErr)
			}
			if !test.wantErr {
				if hash == "" {
					t.Error("Hash() returned empty hash")
				}
				// Format validation
				if !strings.HasPrefix(hash, "$argon2id$") {
					t.Error("Hash() should start with $argon2id$")
				}
				if !strings.Contains(hash, "$v=19$") {
					t.Error("Hash() should contain version 19")
				}
				if len(strings.Split(hash, "$")) != 6 {
					t.Error("Hash() should have 6 parts")
				}
			}
		})
	}
}

func TestArgon2_Hash_UniqueSalts(t *testing.T) {
	// Arrange
	a := testHasher()
	password := "samePassword"

	// Act
	hash1, _ := a.Hash(password)
	hash2, _ := a.Hash(password)

	// Assert
	if hash1 == hash2 {
		t.Error("Hash() should generate different hashes with unique salts")
	}
}

func TestArgon2_Verify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		attempt  string
		wantOk   bool
	}{
		{name: "correct password", password: "correctPassword", attempt: "correctPassword", wantOk: true},
		{name: "wrong password", password: "correctPassword", attempt: "wrongPassword", wantOk: false},
		{name: "case sensitive", password: "correctPassword", attempt: "correctpassword", wantOk: false},
		{name: "extra character", password: "correctPassword", attempt: "correctPassword1", wantOk: false},
		{name: "single char difference", password: "thisIsAVeryLongPasswordToTestSingleCharDiff", attempt: "thisIsAVeryLongPasswordXoTestSingleCharDiff", wantOk: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			a := testHasher()
			hash, _ := a.Hash(test.password)

			// Act
			ok, err := a.Verify(test.attempt, hash)

			// Assert
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if ok != test.wantOk {
				t.Errorf("Verify() = %v, want %v", ok, test.wantOk)
			}
		})
	}
}

// A malformed stored hash fails verification without surfacing an error,
// so login code paths cannot distinguish it from a wrong password.
func TestArgon2_Verify_InvalidHashes(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "invalid format", hash: "invalid-hash"},
		{name: "too few parts", hash: "$argon2id$v=19$m=65536,t=3,p=2$salt"},
		{name: "unsupported algorithm", hash: "$argon2i$v=19$m=65536,t=3,p=2$salt$hash"},
		{name: "bad salt encoding", hash: "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA"},
		{name: "bad params", hash: "$argon2id$v=19$m=x,t=y,p=z$c2FsdA$aGFzaA"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			a := testHasher()

			// Act
			ok, err := a.Verify("password", test.hash)

			// Assert
			if err != nil {
				t.Fatalf("Verify() error = %v, want nil", err)
			}
			if ok {
				t.Error("Verify() = true for malformed hash")
			}
		})
	}
}

// Hashes embed their parameters, so any instance can verify a hash
// produced by another, including after a cost-parameter upgrade.
func TestArgon2_Verify_AcrossInstances(t *testing.T) {
	tests := []struct {
		name    string
		hasherA *Argon2
		hasherB *Argon2
	}{
		{
			name:    "identical instances",
			hasherA: testHasher(),
			hasherB: testHasher(),
		},
		{
			name:    "low cost vs default cost",
			hasherA: testHasher(),
			hasherB: NewArgon2(),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			hash, err := test.hasherA.Hash("testPassword")
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}

			// Act
			ok, err := test.hasherB.Verify("testPassword", hash)

			// Assert
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if !ok {
				t.Error("Verify() should accept a hash from another instance")
			}
		})
	}
}
