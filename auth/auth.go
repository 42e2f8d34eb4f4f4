// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// TokenVersion tags the current token wire format.
const TokenVersion = "v1"

// DefaultTTL is how long issued tokens stay valid unless configured otherwise.
const DefaultTTL = 12 * time.Hour

// Claims is the signed payload carried inside a participant token.
type Claims struct {
	ParticipantID string `json:"participant_id"`
	SessionID     string `json:"session_id"`
	IssuedAt      int64  `json:"issued_at"`
	ExpiresAt     int64  `json:"expires_at"`
	Nonce         string `json:"nonce"`
}

// IssueToken creates a signed participant token:
// version, base64url(JSON claims), and base64url(HMAC-SHA256) joined by dots.
// The signature covers "version.payload".
func IssueToken(participantID, sessionID, secret string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = DefaultTTL
	}

	nonce, err := GenerateID(8)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		ParticipantID: participantID,
		SessionID:     sessionID,
		IssuedAt:      now.Unix(),
		ExpiresAt:     now.Add(ttl).Unix(),
		Nonce:         nonce,
	}

	raw, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to encode token claims: %w", err)
	}

	payload := base64.RawURLEncoding.EncodeToString(raw)
	sig := sign(TokenVersion+"."+payload, secret)

	return TokenVersion + "." + payload + "." + sig, nil
}

// VerifyToken validates a participant token and returns its claims.
// It rejects unknown versions, bad signatures (constant-time compare),
// structurally invalid payloads, and expired tokens.
func VerifyToken(token, secret string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, ErrInvalidToken
	}
	if parts[0] != TokenVersion {
		return Claims{}, ErrInvalidToken
	}

	expected := sign(parts[0]+"."+parts[1], secret)
	if !hmac.Equal([]byte(parts[2]), []byte(expected)) {
		return Claims{}, ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}
	if claims.ParticipantID == "" || claims.SessionID == "" || claims.ExpiresAt == 0 {
		return Claims{}, ErrInvalidToken
	}

	if time.Now().Unix() > claims.ExpiresAt {
		return Claims{}, ErrTokenExpired
	}

	return claims, nil
}

// sign computes an HMAC-SHA256 over message and returns it base64url encoded
// without padding.
func sign(message, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(message))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}
