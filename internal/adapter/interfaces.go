// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote bookmark service.
//
// The primary abstraction is [ServerAdapter], which hides the Atom/OData
// wire format and the HTTP verbs from the sync orchestrator. The package
// ships one implementation, [NewHTTPServerAdapter], built on resty.
//
// Addressing follows the service convention: the collection of a type lives
// at <base>/<NativeName> and a single record at <base>/<NativeName>(<id>).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the four remote operations of the service. No
// method retries; a transport error or a non-2xx status is returned to the
// caller as is.
type ServerAdapter interface {
	// GetAll fetches the whole collection of the registered type typeName
	// and decodes it. Returns an error wrapping [models.ErrUnknownEntityType]
	// for an unregistered name and codec.ErrMalformedFeed for a feed missing
	// its container elements.
	GetAll(ctx context.Context, typeName string) ([]models.Entity, error)

	// PushInsert creates e on the server with a POST to the collection.
	// Only server-visible, non-key fields are sent.
	PushInsert(ctx context.Context, e models.Entity) error

	// PushUpdate merges e into the record serverID with a MERGE request.
	// A zero serverID means the record does not exist remotely yet and the
	// call degrades to PushInsert.
	PushUpdate(ctx context.Context, e models.Entity, serverID int64) error

	// PushDelete removes the record serverID. No payload is sent.
	PushDelete(ctx context.Context, e models.Entity, serverID int64) error

	// SetHeader adds a header sent with every subsequent request, e.g. an
	// auth token. An empty value removes the header.
	SetHeader(name, value string)
}
