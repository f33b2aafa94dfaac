package models

import (
	"strconv"
	"time"
)

// SyncOperation is the kind of remote write a work item performs.
type SyncOperation int

const (
	SyncOperationInsert SyncOperation = iota + 1
	SyncOperationUpdate
	SyncOperationDelete
)

func (o SyncOperation) String() string {
	switch o {
	case SyncOperationInsert:
		return "insert"
	case SyncOperationUpdate:
		return "update"
	case SyncOperationDelete:
		return "delete"
	default:
		return "operation(" + strconv.Itoa(int(o)) + ")"
	}
}

// SyncWorkItem is one queued remote write produced by delta calculation.
// ServerID is the server-assigned key of the targeted record, zero for
// inserts.
type SyncWorkItem struct {
	Operation SyncOperation
	Bookmark  Bookmark
	ServerID  int64
}

// SyncStatus is the outcome of the most recent sync attempts as recorded in
// the local settings. LastSyncAt is zero if no sync has succeeded yet.
type SyncStatus struct {
	LastSyncAt    time.Time
	LastSyncError string
}
