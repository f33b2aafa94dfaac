package service

import "errors"

var (
	// ErrSyncInProgress is returned when a sync is requested while another
	// session of the same service has not finished yet.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrUnsupportedOperation is returned when a work item carries an
	// operation outside insert, update and delete.
	ErrUnsupportedOperation = errors.New("unsupported sync operation")

	// ErrUnexpectedEntity is returned when the adapter decodes an entity of a
	// type other than the one requested.
	ErrUnexpectedEntity = errors.New("unexpected entity type")

	// Errors of a remote call, classified from the adapter's HTTP errors.
	ErrRemoteUnauthorized   = errors.New("remote service rejected credentials")
	ErrRemoteRejectedData   = errors.New("remote service rejected data")
	ErrRemoteRecordNotFound = errors.New("remote record not found")
	ErrIntegrityCheckFailed = errors.New("remote integrity check failed")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrBookmarkNotFound    = errors.New("bookmark not found")
)
