// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth issues and verifies participant tokens.

# Token Format

A token is three dot-separated parts:

	v1.<base64url claims JSON>.<base64url HMAC-SHA256 signature>

The signature is computed over "version.payload" with the server secret.
Claims carry participant_id, session_id, issued_at, expires_at, and a random
nonce. Tokens are self-contained: there is no revocation list, and logout is
a non-goal.

# Verification

VerifyToken rejects, in order: tokens that are not three parts, unknown
versions, bad signatures (compared in constant time to avoid timing
side-channels), undecodable or structurally invalid claims, and expired
tokens (ErrTokenExpired). Everything else fails with ErrInvalidToken.

# Utilities

GenerateID produces random hex identifiers, used for slug suffixes and
token nonces.
*/
package auth
