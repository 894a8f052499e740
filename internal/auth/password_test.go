package auth

import "testing"

func TestHashPassword_SaltedDigests(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	second, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if first == second {
		t.Fatal("expected different digests for the same plaintext")
	}
	if !VerifyPassword("hunter2", first) || !VerifyPassword("hunter2", second) {
		t.Fatal("both digests should verify against the original plaintext")
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if VerifyPassword("battery staple", digest) {
		t.Fatal("wrong password should not verify")
	}
	if VerifyPassword("correct horse", "not-a-digest") {
		t.Fatal("malformed digest should not verify")
	}
}
