package auth

import (
	"strings"
	"testing"
)

// =========================================================================
// HELPER
// =========================================================================

// newTestPasswordService returns a PasswordService with bcrypt cost 4.
// Cost 4 is the minimum allowed by the bcrypt library. This makes tests
// run in milliseconds instead of ~250ms each.
func newTestPasswordService() *PasswordService {
	return newPasswordServiceWithCost(4)
}

// =========================================================================
// Hash TESTS
// =========================================================================

func TestHash_ReturnsNonEmptyHash(t *testing.T) {
	ps := newTestPasswordService()

	hash, err := ps.Hash("my-secret-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "" {
		t.Error("Hash() returned empty string")
	}
}

func TestHash_NeverEqualsPlaintext(t *testing.T) {
	ps := newTestPasswordService()

	const plaintext = "Abcdef1!"
	hash, err := ps.Hash(plaintext)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == plaintext {
		t.Error("Hash() returned the plaintext unchanged")
	}

	// bcrypt hashes always start with $2a$ or $2b$
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("Hash() does not look like a bcrypt hash: %q", hash)
	}
}

func TestHash_SamePasswordProducesDifferentHashes(t *testing.T) {
	ps := newTestPasswordService()

	// bcrypt generates a random salt each time, so two hashes for the
	// same password must differ — otherwise rainbow tables would work.
	hash1, _ := ps.Hash("same-password")
	hash2, _ := ps.Hash("same-password")

	if hash1 == hash2 {
		t.Error("Hash() produced identical hashes for the same password (salt must be random)")
	}
}

func TestHash_RejectsPasswordOver72Bytes(t *testing.T) {
	ps := newTestPasswordService()

	// bcrypt silently truncates at 72 bytes — we reject it explicitly.
	longPassword := strings.Repeat("a", 73)
	_, err := ps.Hash(longPassword)
	if err == nil {
		t.Fatal("Hash() should return an error for passwords longer than 72 bytes")
	}
}

// =========================================================================
// Verify TESTS
// =========================================================================

func TestVerify_CorrectPassword(t *testing.T) {
	ps := newTestPasswordService()

	hash, err := ps.Hash("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	ok, err := ps.Verify(hash, "correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !ok {
		t.Error("Verify() = false for the correct password")
	}
}

func TestVerify_WrongPasswordIsFalseNotError(t *testing.T) {
	ps := newTestPasswordService()

	hash, _ := ps.Hash("the-real-password")

	// A mismatch is an expected outcome, not a failure.
	ok, err := ps.Verify(hash, "the-wrong-password")
	if err != nil {
		t.Fatalf("Verify() wrong password should not error, got: %v", err)
	}
	if ok {
		t.Error("Verify() = true for a wrong password")
	}
}

func TestVerify_EmptyPassword(t *testing.T) {
	ps := newTestPasswordService()

	hash, _ := ps.Hash("some-password")

	ok, err := ps.Verify(hash, "")
	if err != nil {
		t.Fatalf("Verify() empty password should not error, got: %v", err)
	}
	if ok {
		t.Error("Verify() = true for an empty password")
	}
}

func TestVerify_MalformedHashIsError(t *testing.T) {
	ps := newTestPasswordService()

	// A garbage stored hash is a data-integrity problem — it must surface
	// as an error, never as "wrong password".
	_, err := ps.Verify("not-a-valid-bcrypt-hash", "password")
	if err == nil {
		t.Fatal("Verify() should return an error for a malformed stored hash")
	}
	t.Logf("Malformed hash error (expected): %v", err)
}

// =========================================================================
// ROUND-TRIP TEST
// =========================================================================

func TestHashVerify_RoundTrip(t *testing.T) {
	ps := newTestPasswordService()

	cases := []struct {
		name     string
		password string
	}{
		{"policy-valid password", "Abcdef1!"},
		{"all symbol classes", "aA1@$!%*?&#^()-_=+<>"},
		{"simple alphanumeric", "hello123"},
		{"unicode", "пароль-密码"},
		{"whitespace", "  leading and trailing  "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hash, err := ps.Hash(tc.password)
			if err != nil {
				t.Fatalf("Hash(%q) error = %v", tc.password, err)
			}

			ok, err := ps.Verify(hash, tc.password)
			if err != nil {
				t.Fatalf("Verify() error for %q: %v", tc.password, err)
			}
			if !ok {
				t.Errorf("Verify() = false for the password that was hashed (%q)", tc.password)
			}

			ok, err = ps.Verify(hash, tc.password+"x")
			if err != nil {
				t.Fatalf("Verify() error for modified password: %v", err)
			}
			if ok {
				t.Errorf("Verify() = true for a different password")
			}
		})
	}
}
