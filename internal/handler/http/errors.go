// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the middleware and the resource parser. Callers
// can match against them with [errors.Is].
var (
	// ErrEmptyToken is returned by the token middleware when the request
	// carries no `x-amx-token` header.
	ErrEmptyToken = errors.New("empty `x-amx-token` header")

	// ErrInvalidToken is returned when the `x-amx-token` header does not
	// match the configured API token.
	ErrInvalidToken = errors.New("invalid `x-amx-token` header")

	// ErrEmptyHash is returned when a signed server requires the
	// `HashSHA256` header and the request has none.
	ErrEmptyHash = errors.New("empty `HashSHA256` header")

	// ErrIntegrityCheckFailed is returned when the `HashSHA256` header does
	// not match the request body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrInvalidResource is returned for a path segment that is not of the
	// form `Type` or `Type(id)`.
	ErrInvalidResource = errors.New("invalid resource path")

	// ErrKeyRequired is returned when a merge or delete names no record.
	ErrKeyRequired = errors.New("resource key is required")

	// ErrKeyNotAllowed is returned when a collection request names a record.
	ErrKeyNotAllowed = errors.New("resource key is not allowed")
)
