package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-items-api/internal/domain/entity"
	repo "github.com/oksasatya/go-items-api/internal/domain/repository"
	"github.com/oksasatya/go-items-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUser      = errors.New("username already registered")
)

// Hasher is the password primitive used by UserService.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer mints and checks bearer tokens for a subject.
type TokenIssuer interface {
	Issue(subject string, ttl time.Duration) (string, time.Time, error)
	Verify(token string) (string, error)
	AccessTTL() time.Duration
}

type UserService struct {
	Repo   repo.UserRepository
	Hasher Hasher
	Tokens TokenIssuer
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, hasher Hasher, tokens TokenIssuer, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Hasher: hasher, Tokens: tokens, Logger: logger}
}

type RegisterInput struct {
	Username string
	Password string
	FullName string
}

// AccessToken is the result of a successful login.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
	ExpiresIn time.Duration
}

// Register hashes the password and stores a new user. A taken username
// yields ErrDuplicateUser and leaves the existing record untouched.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{Username: in.Username, FullName: in.FullName, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	counters.Add("registrations", 1)
	s.log().WithField("username", u.Username).Info("user registered")
	return u, nil
}

// Authenticate validates username/password and returns the stored user.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.Hasher.Verify(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and issues an access token with the default lifetime.
func (s *UserService) Login(ctx context.Context, username, password string) (AccessToken, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			counters.Add("logins_failed", 1)
		}
		return AccessToken{}, err
	}
	ttl := s.Tokens.AccessTTL()
	tok, exp, err := s.Tokens.Issue(u.Username, ttl)
	if err != nil {
		s.log().WithError(err).WithField("username", u.Username).Error("issue access token failed")
		return AccessToken{}, err
	}
	counters.Add("logins_ok", 1)
	return AccessToken{Token: tok, ExpiresAt: exp, ExpiresIn: ttl}, nil
}

// Resolve verifies a bearer token and loads the user it names. Any failure,
// including a subject that no longer exists, is ErrInvalidCredentials.
func (s *UserService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	sub, err := s.Tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	u, err := s.Repo.GetByUsername(ctx, sub)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) log() logrus.FieldLogger {
	if s.Logger == nil {
		return helpers.NewDiscardLogger()
	}
	return s.Logger
}

var _ TokenIssuer = (*helpers.JWTManager)(nil)
var _ Hasher = (*helpers.PasswordHasher)(nil)
