package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseTTL(t *testing.T) {
	tests := []struct {
		name    string
		ttl     string
		want    time.Duration
		wantErr bool
	}{
		{name: "seconds", ttl: "30s", want: 30 * time.Second},
		{name: "minutes", ttl: "15m", want: 15 * time.Minute},
		{name: "hours", ttl: "24h", want: 24 * time.Hour},
		{name: "days", ttl: "7d", want: 7 * 24 * time.Hour},
		{name: "missing unit", ttl: "30", wantErr: true},
		{name: "unknown unit", ttl: "30w", wantErr: true},
		{name: "negative", ttl: "-1h", wantErr: true},
		{name: "empty", ttl: "", wantErr: true},
		{name: "garbage", ttl: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTTL(tt.ttl)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTTL(%q) expected error, got %v", tt.ttl, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTTL(%q) error = %v", tt.ttl, err)
			}
			if got != tt.want {
				t.Errorf("ParseTTL(%q) = %v, want %v", tt.ttl, got, tt.want)
			}
		})
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	c := NewCodec([]byte("test-secret"))

	claims := map[string]interface{}{
		"role":    "admin",
		"subject": "stats",
	}

	tok, err := c.Issue(claims, "1h")
	if err != nil {
		t.Fatalf("Issue error = %v", err)
	}

	if parts := strings.Split(tok, "."); len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}

	got, err := c.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error = %v", err)
	}

	if got["role"] != "admin" || got["subject"] != "stats" {
		t.Errorf("claims not preserved: %v", got)
	}
	if _, ok := got["iat"]; !ok {
		t.Error("iat claim missing")
	}
	if _, ok := got["exp"]; !ok {
		t.Error("exp claim missing")
	}
}

func TestIssueRejectsBadTTL(t *testing.T) {
	c := NewCodec([]byte("test-secret"))
	if _, err := c.Issue(map[string]interface{}{"role": "admin"}, "later"); err == nil {
		t.Fatal("Issue with invalid ttl should fail")
	}
}

func TestVerifyTamperedSignature(t *testing.T) {
	c := NewCodec([]byte("test-secret"))

	tok, err := c.Issue(map[string]interface{}{"role": "admin"}, "1h")
	if err != nil {
		t.Fatalf("Issue error = %v", err)
	}

	// Flip the first byte of the signature segment to a different base64url
	// character.
	sigStart := strings.LastIndex(tok, ".") + 1
	first := tok[sigStart]
	replacement := byte('A')
	if first == replacement {
		replacement = 'B'
	}
	tampered := tok[:sigStart] + string(replacement) + tok[sigStart+1:]

	_, err = c.Verify(tampered)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Verify(tampered) error = %v, want ErrInvalidSignature", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewCodec([]byte("secret-a"))
	verifier := NewCodec([]byte("secret-b"))

	tok, err := issuer.Issue(map[string]interface{}{"role": "admin"}, "1h")
	if err != nil {
		t.Fatalf("Issue error = %v", err)
	}

	if _, err := verifier.Verify(tok); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Verify error = %v, want ErrInvalidSignature", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	issued := time.Now()
	c := NewCodec([]byte("test-secret"))
	c.now = func() time.Time { return issued }

	tok, err := c.Issue(map[string]interface{}{"role": "admin"}, "1s")
	if err != nil {
		t.Fatalf("Issue error = %v", err)
	}

	// Two seconds later the 1s token must be rejected as expired.
	c.now = func() time.Time { return issued.Add(2 * time.Second) }

	if _, err := c.Verify(tok); !errors.Is(err, ErrExpired) {
		t.Errorf("Verify error = %v, want ErrExpired", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	c := NewCodec([]byte("test-secret"))

	for _, tok := range []string{"", "abc", "a.b", "a.b.c.d", "not..atoken"} {
		if _, err := c.Verify(tok); !errors.Is(err, ErrMalformed) {
			t.Errorf("Verify(%q) error = %v, want ErrMalformed", tok, err)
		}
	}
}
