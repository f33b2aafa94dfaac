// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bookmark-sync/internal/adapter"
	"github.com/MKhiriev/go-bookmark-sync/internal/app"
)

// mapAdapterError classifies a transport error of the adapter as a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgIntegrityCheckFailed:
			return fmt.Errorf("%w: %w", ErrIntegrityCheckFailed, err)
		case app.MsgInvalidDataProvided:
			return fmt.Errorf("%w: %w", ErrRemoteRejectedData, err)
		}

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrRemoteUnauthorized, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRemoteRecordNotFound, err)
	}

	return err
}

// extractBody extracts the body from a message of the form
// "bad request: http 400: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
