// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// SeedPassword is the password of every seeded account.
const SeedPassword = "password"

// SeedDevData fills empty dev server storages with a small fixture: staff and
// attendee accounts, an upcoming event with enrollments and tickets, a later
// event and a finished one with certificates. Times are relative to now.
func SeedDevData(ctx context.Context, storages *store.ServerStorages, now time.Time) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing seed password: %w", err)
	}

	users := []models.User{
		{ID: "1", Name: "Attendant User", Email: "attendant@test.com", Role: models.RoleAttendant},
		{ID: "2", Name: "Client User", Email: "client@test.com", Role: models.RoleClient},
		{ID: "3", Name: "Ana Souza", Email: "ana@test.com", Role: models.RoleClient},
		{ID: "4", Name: "Bruno Lima", Email: "bruno@test.com", Role: models.RoleClient},
	}
	for _, u := range users {
		if _, err = storages.Users.CreateUser(ctx, store.UserRecord{User: u, PasswordHash: hash}); err != nil {
			return fmt.Errorf("error seeding user %s: %w", u.Email, err)
		}
	}

	day := 24 * time.Hour
	events := []models.Event{
		{
			ID: "1", Title: "Go Meetup", Location: "Main Hall",
			Description: "Talks on concurrency and tooling.",
			StartsAt:    now.Add(2 * time.Hour), EndsAt: now.Add(5 * time.Hour),
		},
		{
			ID: "2", Title: "Rust Night", Location: "Room 2",
			StartsAt: now.Add(day), EndsAt: now.Add(day + 3*time.Hour),
		},
		{
			ID: "3", Title: "Testing Workshop", Location: "Lab",
			StartsAt: now.Add(-7 * day), EndsAt: now.Add(-7*day + 4*time.Hour),
			Finished: true,
		},
	}
	for _, e := range events {
		if err = storages.Events.SaveEvent(ctx, e); err != nil {
			return fmt.Errorf("error seeding event %s: %w", e.ID, err)
		}
	}

	checkedIn := now.Add(-30 * time.Minute)
	pastCheckin := events[2].StartsAt.Add(10 * time.Minute)
	enrollments := []models.Participant{
		{EventID: "1", UserID: "2", Status: models.EnrollmentPending, Source: models.SourceWeb},
		{EventID: "1", UserID: "3", Status: models.EnrollmentPending, Source: models.SourceWeb},
		{EventID: "1", UserID: "4", Status: models.EnrollmentPresent, Source: models.SourceWeb, CheckinTime: &checkedIn},
		{EventID: "2", UserID: "3", Status: models.EnrollmentCancelled, Source: models.SourceWeb},
		{EventID: "3", UserID: "2", Status: models.EnrollmentPresent, Source: models.SourceWeb, CheckinTime: &pastCheckin},
		{EventID: "3", UserID: "3", Status: models.EnrollmentPresent, Source: models.SourcePresential, CheckinTime: &pastCheckin},
	}
	for _, p := range enrollments {
		if err = storages.Enrollments.SaveEnrollment(ctx, p); err != nil {
			return fmt.Errorf("error seeding enrollment %s/%s: %w", p.EventID, p.UserID, err)
		}
	}

	tickets := []models.Ticket{
		{Code: "TKT-0001", EventID: "1", Status: models.TicketValid, HolderName: "Client User"},
		{Code: "TKT-0002", EventID: "1", Status: models.TicketValid, HolderName: "Ana Souza"},
		{Code: "TKT-0003", EventID: "1", Status: models.TicketUsed, HolderName: "Bruno Lima"},
		{Code: "TKT-0004", EventID: "2", Status: models.TicketInvalid, HolderName: "Ana Souza"},
	}
	for _, t := range tickets {
		if err = storages.Tickets.SaveTicket(ctx, t); err != nil {
			return fmt.Errorf("error seeding ticket %s: %w", t.Code, err)
		}
	}

	issuedAt := events[2].EndsAt
	certificates := []models.Certificate{
		{EventID: "3", UserID: "2", Hash: "3F9A1C2B7D4E5F60", IssuedAt: issuedAt},
		{EventID: "3", UserID: "3", Hash: "8B7C6D5E4F3A2B10", IssuedAt: issuedAt},
	}
	for _, c := range certificates {
		if err = storages.Certificates.SaveCertificate(ctx, c); err != nil {
			return fmt.Errorf("error seeding certificate %s: %w", c.Hash, err)
		}
	}

	return nil
}
