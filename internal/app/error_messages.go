// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-visible message strings shared by the check-in
// client and the dev server.
//
// Client services put these into result objects that the CLI and watch view
// print verbatim. The dev server writes the server-side ones into
// {"error": ...} response bodies.
package app

// Client-side outcome messages.
const (
	// MsgOffline is the SyncResult/DownloadResult message when the remote
	// API is unreachable at call time.
	MsgOffline = "Offline"

	// MsgSyncInProgress is returned when a sync or download is already
	// running on this device.
	MsgSyncInProgress = "Sync already in progress"

	MsgSyncCompleted         = "Sync completed"
	MsgSyncCompletedWithErrs = "Sync completed with errors"
	MsgSyncStorageFailure    = "Sync aborted: local storage failure"

	MsgDownloadCompleted         = "Download completed"
	MsgDownloadCompletedWithErrs = "Download completed with errors"
	MsgDownloadFailed            = "Download failed: could not fetch events"
	MsgDownloadStorageFailure    = "Download aborted: local storage failure"

	MsgTicketValid    = "Ticket validated"
	MsgTicketNotFound = "Ticket not found in local database."
	// MsgTicketStatusFmt is formatted with the ticket status.
	MsgTicketStatusFmt = "Ticket is %s"

	MsgCertificateValid    = "Certificate is valid and was officially issued."
	MsgCertificateNotFound = "Certificate not found or invalid."
)

// Dev server response messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the credentials do not match
	// any seeded user.
	MsgInvalidLoginPassword = "invalid email/password"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgNoUserIDProvided = "no user ID provided"
	MsgAccessDenied     = "access denied"
	MsgHashMismatch     = "body hash mismatch"

	MsgEventNotFound        = "event not found"
	MsgEnrollmentNotFound   = "enrollment not found"
	MsgUserNotFound         = "user not found"
	MsgTicketUnknown        = "ticket not found"
	MsgCertificateNotIssued = "certificate not found"
	MsgAlreadyEnrolled      = "user already enrolled"
	MsgEmailAlreadyExists   = "email already exists"
	MsgEventFinished        = "event is finished"
	MsgMissingHash          = "missing body hash"
)
