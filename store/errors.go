// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"net/http"
)

// Kind classifies a domain error so the API layer can map it to a
// transport status.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindTokenExpired Kind = "token_expired"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindVoteLimit    Kind = "vote_limit_reached"
	KindValidation   Kind = "validation"
)

// Error is a typed domain error with a stable kind and message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus maps the error kind to its transport status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindUnauthorized, KindTokenExpired:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindVoteLimit:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func errUnauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }
func errTokenExpired(msg string) *Error { return &Error{Kind: KindTokenExpired, Message: msg} }
func errForbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Message: msg} }
func errNotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func errConflict(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }
func errVoteLimit(msg string) *Error    { return &Error{Kind: KindVoteLimit, Message: msg} }
func errValidation(msg string) *Error   { return &Error{Kind: KindValidation, Message: msg} }

// AsError unwraps err to a domain *Error if it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
