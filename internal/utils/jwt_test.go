package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

// signWithExp builds an HS256 token with an explicit expiration so tests can
// exercise the verifier's clock handling without sleeping.
func signWithExp(t *testing.T, secret, sub string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub, "exp": exp.Unix(), "iat": time.Now().UTC().Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken(testSecret, "alice", 30)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tok.Token == "" {
		t.Fatalf("expected non-empty token")
	}
	until := time.Until(tok.Exp)
	if until < 29*time.Minute || until > 31*time.Minute {
		t.Fatalf("expected ~30m expiry, got %s", until)
	}
	sub, err := VerifyAccessToken(testSecret, tok.Token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if sub != "alice" {
		t.Fatalf("expected subject alice, got %q", sub)
	}
}

func TestTokenNearExpiryBoundary(t *testing.T) {
	// Still inside the window: a 30m token checked one minute before expiry.
	ok := signWithExp(t, testSecret, "alice", time.Now().UTC().Add(time.Minute))
	if _, err := VerifyAccessToken(testSecret, ok); err != nil {
		t.Fatalf("token before expiry should verify: %v", err)
	}
	// Past the window: the same token checked one minute after expiry.
	stale := signWithExp(t, testSecret, "alice", time.Now().UTC().Add(-time.Minute))
	if _, err := VerifyAccessToken(testSecret, stale); err != ErrInvalidToken {
		t.Fatalf("expired token should fail with ErrInvalidToken, got %v", err)
	}
}

func TestTamperedSignatureRejected(t *testing.T) {
	tok, err := NewAccessToken(testSecret, "alice", 30)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	parts := strings.Split(tok.Token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	// Flip one character of the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)
	if _, err := VerifyAccessToken(testSecret, tampered); err != ErrInvalidToken {
		t.Fatalf("tampered token should fail with ErrInvalidToken, got %v", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	tok, err := NewAccessToken("other-secret", "alice", 30)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := VerifyAccessToken(testSecret, tok.Token); err != ErrInvalidToken {
		t.Fatalf("token signed with another secret should fail, got %v", err)
	}
}

func TestMissingSubjectRejected(t *testing.T) {
	for name, claims := range map[string]jwt.MapClaims{
		"absent": {"exp": time.Now().UTC().Add(time.Hour).Unix()},
		"empty":  {"sub": "", "exp": time.Now().UTC().Add(time.Hour).Unix()},
	} {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		if err != nil {
			t.Fatalf("%s: sign: %v", name, err)
		}
		if _, err := VerifyAccessToken(testSecret, signed); err != ErrInvalidToken {
			t.Fatalf("%s: token without subject should fail, got %v", name, err)
		}
	}
}

func TestMalformedTokenRejected(t *testing.T) {
	for _, raw := range []string{"", "not-a-jwt", "a.b", "a.b.c"} {
		if _, err := VerifyAccessToken(testSecret, raw); err != ErrInvalidToken {
			t.Fatalf("malformed token %q should fail, got %v", raw, err)
		}
	}
}
