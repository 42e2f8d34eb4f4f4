// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags and
environment variables.

Flags take precedence; each unset flag falls back to its environment
variable, then to a default where one exists.

# Settings

  - PORT (-p): server port (default 4410)
  - DATA_FILE (-f): snapshot file path for the file backend
  - DATABASE_URL (-d): connection string for the SQL backend
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)
  - TOKEN_SECRET (--token-secret): HMAC secret for participant tokens
  - TOKEN_TTL_HOURS (--token-ttl): token lifetime (default 12h)

File and SQL storage are mutually exclusive; with neither configured the
server falls back to a retroboard.json file in the working directory.

If TOKEN_SECRET is unset the insecure built-in development secret is used;
main logs a warning when that happens. Do not deploy that way.
*/
package cliparse
