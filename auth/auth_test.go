// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	secret := "test-secret"

	token, err := IssueToken("participant-1", "session-1", secret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	if !strings.HasPrefix(token, TokenVersion+".") {
		t.Errorf("token missing version prefix: %s", token)
	}
	if got := len(strings.Split(token, ".")); got != 3 {
		t.Fatalf("token has %d parts, want 3", got)
	}

	claims, err := VerifyToken(token, secret)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if claims.ParticipantID != "participant-1" {
		t.Errorf("ParticipantID = %q, want %q", claims.ParticipantID, "participant-1")
	}
	if claims.SessionID != "session-1" {
		t.Errorf("SessionID = %q, want %q", claims.SessionID, "session-1")
	}
	if claims.Nonce == "" {
		t.Error("claims missing nonce")
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Errorf("ExpiresAt %d not after IssuedAt %d", claims.ExpiresAt, claims.IssuedAt)
	}

	// Tokens are unique even for the same participant (random nonce)
	token2, _ := IssueToken("participant-1", "session-1", secret, time.Hour)
	if token == token2 {
		t.Error("IssueToken() produced identical tokens")
	}
}

func TestVerifyTokenRejectsBadTokens(t *testing.T) {
	secret := "test-secret"
	valid, _ := IssueToken("p1", "s1", secret, time.Hour)
	parts := strings.Split(valid, ".")

	badPayload := base64.RawURLEncoding.EncodeToString([]byte(`{"session_id":"s1"}`))

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a token", "garbage"},
		{"two parts", parts[0] + "." + parts[1]},
		{"four parts", valid + ".extra"},
		{"unknown version", "v9." + parts[1] + "." + parts[2]},
		{"tampered payload", parts[0] + "." + badPayload + "." + parts[2]},
		{"tampered signature", parts[0] + "." + parts[1] + ".AAAA"},
		{"payload not base64", parts[0] + ".!!!." + parts[2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyToken(tt.token, secret); err != ErrInvalidToken {
				t.Errorf("VerifyToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, _ := IssueToken("p1", "s1", "secret-a", time.Hour)
	if _, err := VerifyToken(token, "secret-b"); err != ErrInvalidToken {
		t.Errorf("VerifyToken() with wrong secret error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	token, err := IssueToken("p1", "s1", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if _, err := VerifyToken(token, "secret"); err != ErrTokenExpired {
		t.Errorf("VerifyToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestIssueTokenDefaultTTL(t *testing.T) {
	token, err := IssueToken("p1", "s1", "secret", 0)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	claims, err := VerifyToken(token, "secret")
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}

	ttl := time.Duration(claims.ExpiresAt-claims.IssuedAt) * time.Second
	if ttl != DefaultTTL {
		t.Errorf("default TTL = %v, want %v", ttl, DefaultTTL)
	}
}
