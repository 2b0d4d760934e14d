package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ticket-keeper/internal/adapter"
	"github.com/MKhiriev/go-ticket-keeper/internal/logger"
	"github.com/MKhiriev/go-ticket-keeper/internal/session"
	"github.com/MKhiriev/go-ticket-keeper/internal/store"
	"github.com/MKhiriev/go-ticket-keeper/internal/validators"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	session    *session.Holder
	validator  validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, holder *session.Holder, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		localStore: localStore,
		adapter:    serverAdapter,
		session:    holder,
		validator:  validator,
		now:        time.Now,
		logger:     logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	s, err := a.adapter.Login(ctx, creds)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.Login").Str("email", creds.Email).Msg("login rejected")
		return models.Session{}, mapAdapterError(err)
	}
	if s.Email == "" {
		s.Email = creds.Email
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = a.now()
	}

	if err := a.localStore.Sessions.SaveSession(ctx, s); err != nil {
		return models.Session{}, storageFailure("save session", err)
	}
	a.session.Start(s)

	a.logger.Info().
		Str("func", "clientAuthService.Login").
		Str("user_id", s.UserID).
		Str("role", string(s.Role)).
		Msg("signed in")

	return s, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	s, err := a.localStore.Sessions.GetSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNotSignedIn
	}
	if err != nil {
		return models.Session{}, storageFailure("get session", err)
	}

	a.session.Start(s)
	return s, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.session.Clear()

	if err := a.localStore.Sessions.DeleteSession(ctx); err != nil {
		return storageFailure("delete session", err)
	}

	a.logger.Info().Str("func", "clientAuthService.Logout").Msg("signed out")
	return nil
}

func (a *clientAuthService) Current() (models.Session, bool) {
	return a.session.Current()
}
