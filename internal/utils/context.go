// Package utils holds small helpers shared by the client and the dev
// server: typed context keys, HMAC body hashing, JSON response writing, the
// resty client constructor, JWT issuing and parsing, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-ticket-keeper/models"
)

// contextKey is a private type for context keys so they cannot collide with
// string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the authenticated user id as a string.
	UserIDCtxKey = contextKey("userID")
	// RoleCtxKey holds the authenticated models.UserRole.
	RoleCtxKey = contextKey("role")
)

// WithUser stores the authenticated identity in ctx.
func WithUser(ctx context.Context, userID string, role models.UserRole) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetUserIDFromContext returns the user id stored by WithUser. ok is false
// when nothing is stored, the value has another type, or it is empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetRoleFromContext returns the role stored by WithUser.
func GetRoleFromContext(ctx context.Context) (models.UserRole, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.UserRole)
	return role, ok
}
