package users

import (
	"context"

	"eventhorizon/internal/auth"
	"eventhorizon/shared/go/models"
)

// Store defines persistence operations required for account workflows.
type Store interface {
	CreateUser(ctx context.Context, username, displayName, password string) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
}

// Service coordinates signup, login and profile lookup.
type Service interface {
	Signup(ctx context.Context, username, displayName, password string) (models.User, error)
	// Login returns a signed access token alongside the user.
	Login(ctx context.Context, username, password string) (string, models.User, error)
	Profile(ctx context.Context, userID int64) (models.User, error)
}

type service struct {
	store  Store
	tokens *auth.TokenManager
}

// New constructs a users Service backed by the given store and token
// manager.
func New(st Store, tokens *auth.TokenManager) Service {
	return &service{store: st, tokens: tokens}
}

func (s *service) Signup(ctx context.Context, username, displayName, password string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	return s.store.CreateUser(ctx, username, displayName, password)
}

func (s *service) Login(ctx context.Context, username, password string) (string, models.User, error) {
	if err := ctx.Err(); err != nil {
		return "", models.User{}, err
	}

	user, err := s.store.Authenticate(ctx, username, password)
	if err != nil {
		return "", models.User{}, err
	}

	token, err := s.tokens.Generate(user.ID, user.DisplayName)
	if err != nil {
		return "", models.User{}, err
	}

	return token, user, nil
}

func (s *service) Profile(ctx context.Context, userID int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	return s.store.UserByID(ctx, userID)
}
