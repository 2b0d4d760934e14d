package service

import "errors"

// Client sync engine errors.
var (
	// ErrOffline is returned by Sync and DownloadAllData when the
	// connectivity monitor reports the remote API as unreachable.
	ErrOffline = errors.New("remote api is offline")

	// ErrSyncInProgress is returned when a sync or download already holds
	// the sync gate.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrItemFailure wraps a single queued item the remote API rejected or
	// could not receive. It never aborts a sync cycle.
	ErrItemFailure = errors.New("pending item failed")

	// ErrStorageFailure wraps a local store error that aborted a cycle.
	ErrStorageFailure = errors.New("local storage failure")

	// ErrNetworkFailure wraps transport errors surfaced by the gateway.
	ErrNetworkFailure = errors.New("network failure")

	ErrNotSignedIn = errors.New("not signed in")
)

// Dev server errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired = errors.New("token is expired")

	ErrAccessDenied    = errors.New("access denied")
	ErrEventFinished   = errors.New("event is finished")
	ErrAlreadyEnrolled = errors.New("user already enrolled")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
