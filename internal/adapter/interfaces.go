// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's gateway to the remote ticketing API.
//
// [ServerAdapter] hides the REST transport from the service layer. Every
// operation is one request/response exchange without retries; failed queue
// items are retried by the next sync cycle instead. HTTP statuses are mapped
// to the sentinel errors in errors.go so callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401). Response bodies are decoded into tagged
// wire types and converted to models at this boundary; schema violations
// surface as [ErrInvalidResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ticket-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the remote ticketing API.
type ServerAdapter interface {
	// Ping sends HEAD /events and reports whether the API answered at all.
	// Any HTTP status counts as reachable.
	Ping(ctx context.Context) error

	// Login exchanges credentials for a session. The user id is taken from
	// the response or, failing that, from the token subject.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// ListEvents returns every published event. Public.
	ListEvents(ctx context.Context) ([]models.Event, error)

	// GetEvent returns one event. Public.
	GetEvent(ctx context.Context, eventID string) (models.Event, error)

	// GetEventEnrollments returns the participant list of an event, with the
	// check-in invariant enforced. Rows violating it are dropped; the rest is
	// returned together with an error wrapping ErrPartialResponse.
	GetEventEnrollments(ctx context.Context, eventID string) ([]models.Participant, error)

	// PostCheckin marks one participant present.
	PostCheckin(ctx context.Context, checkin models.PendingCheckin) error

	// PostRegistrationBatch registers walk-in attendees of one event.
	PostRegistrationBatch(ctx context.Context, eventID string, registrations []models.PendingRegistration) error

	// PostValidationBatch reports scanned ticket codes.
	PostValidationBatch(ctx context.Context, validations []models.PendingValidation) error

	// GetTickets returns the authoritative ticket list for offline validation.
	GetTickets(ctx context.Context) ([]models.Ticket, error)

	// Enroll creates a web enrollment for the signed-in user.
	Enroll(ctx context.Context, req models.EnrollmentRequest) (models.EnrollmentResponse, error)

	// GetMyEnrollments returns the signed-in user's enrollments. Malformed
	// rows are dropped as in GetEventEnrollments.
	GetMyEnrollments(ctx context.Context) ([]models.Participant, error)

	// GetMyCertificates returns the signed-in user's certificates.
	GetMyCertificates(ctx context.Context) ([]models.Certificate, error)

	// VerifyCertificate looks a certificate up by its public hash. Public.
	VerifyCertificate(ctx context.Context, hash string) (models.Certificate, error)

	// GetUser returns a public user profile.
	GetUser(ctx context.Context, userID string) (models.User, error)
}

// TokenSource yields the bearer token of the current session, or "" when
// nobody is signed in.
type TokenSource interface {
	Token() string
}
