package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"api/errs"
	"api/models"
	"api/monitoring"
	"api/repositories"
)

// AuthService handles registration, login and bearer-token sessions.
// Tokens are opaque and stored server-side with a TTL.
type AuthService struct {
	users    repositories.UserRepository
	sessions repositories.SessionRepository
	ttl      time.Duration
}

func NewAuthService(users repositories.UserRepository, sessions repositories.SessionRepository, ttl time.Duration) *AuthService {
	return &AuthService{users: users, sessions: sessions, ttl: ttl}
}

// RegisterInput carries the validated registration payload.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Name     string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := NormalizeUsername(in.Username)
	if len(username) < 3 {
		return nil, errs.New(errs.KindValidation, "username must be at least 3 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Wrap(errs.KindInternal, "hash password", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        models.NewID(),
		Username:  username,
		Email:     NormalizeEmail(in.Email),
		Password:  string(hash),
		Name:      in.Name,
		Avatar:    models.DefaultAvatar,
		Posts:     []models.ID{},
		Friends:   []models.ID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	monitoring.RegisterSuccess.Inc()
	logrus.WithField("user", user.ID).Info("user registered")
	return user, nil
}

// Login verifies the password and issues a session token. Unknown usernames
// and wrong passwords both come back as the same Unauthorized error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.users.GetByUsername(ctx, NormalizeUsername(username))
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return "", nil, errs.New(errs.KindUnauthorized, "invalid username or password")
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errs.New(errs.KindUnauthorized, "invalid username or password")
	}

	token := uuid.NewString()
	if err := s.sessions.Put(ctx, token, user.ID, s.ttl); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate resolves a bearer token to a user id.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.ID, error) {
	return s.sessions.GetUser(ctx, token)
}

// Logout discards the session token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
