package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/client/scoped"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/dmitrijs2005/museumkeeper/internal/logging"
)

// SessionService tracks the signed-in user. It only touches the session
// key and never the users table, so profile changes must be pushed with
// Login again.
type SessionService interface {
	Login(ctx context.Context, user models.User) (models.Session, error)
	Logout(ctx context.Context) error
	// Current returns nil when nobody is signed in.
	Current(ctx context.Context) (*models.Session, error)
}

type sessionService struct {
	store *scoped.Store
	log   logging.Logger
}

func NewSessionService(store *scoped.Store, log logging.Logger) SessionService {
	return &sessionService{store: store, log: log.With("service", "session")}
}

func (s *sessionService) Login(ctx context.Context, user models.User) (models.Session, error) {
	session := models.SessionOf(user)
	if session.ID == "" {
		return models.Session{}, fmt.Errorf("%w: user has no stable id", common.ErrorValidation)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Set(ctx, common.SessionKey, data); err != nil {
		return models.Session{}, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, common.SessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *sessionService) Current(ctx context.Context) (*models.Session, error) {
	raw, err := s.store.Get(ctx, common.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.log.Warn(ctx, "ignoring corrupted session", "error", err)
		return nil, nil
	}
	if session.ID == "" {
		return nil, nil
	}
	return &session, nil
}
