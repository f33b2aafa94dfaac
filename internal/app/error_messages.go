// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// emulator server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as an Atom entry.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUnauthorized is returned when the `x-amx-token` header is missing
	// or wrong.
	MsgUnauthorized = "unauthorized"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does
	// not match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgDataNotFound is returned when a merge or delete targets a record
	// that does not exist.
	MsgDataNotFound = "data not found"
)
