package services

import (
	"context"
	"strings"

	"github.com/rubayet36/jatri-ovijog/internal/core/domain"
	"github.com/rubayet36/jatri-ovijog/internal/pkg/jwt"
	"github.com/rubayet36/jatri-ovijog/internal/pkg/password"
)

// AuthService handles signup and login against the upstream user store
type AuthService struct {
	users  UserStore
	tokens *jwt.Service
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore, tokens *jwt.Service) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// SignupInput represents signup input
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the issued token together with the user record
type LoginResult struct {
	Token string        `json:"token"`
	User  domain.Record `json:"user"`
}

// Signup creates a new user record upstream. The created record is returned
// verbatim, password hash included, matching the observed response contract.
func (s *AuthService) Signup(ctx context.Context, input *SignupInput) (domain.Record, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	role := input.Role
	if role == "" {
		role = domain.DefaultRole
	}

	if name == "" || email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	// Duplicate check first; no create call is made on conflict
	existing, err := s.users.GetUsersByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, domain.ErrEmailInUse
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	return s.users.CreateUser(ctx, domain.Record{
		"name":     name,
		"email":    email,
		"password": hash,
		"role":     role,
	})
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password both yield ErrInvalidCredentials so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	users, err := s.users.GetUsersByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrInvalidCredentials
	}

	user := users[0]
	hash, _ := user["password"].(string)
	if !password.Verify(input.Password, hash) {
		return nil, domain.ErrInvalidCredentials
	}

	role, _ := user["role"].(string)
	token, err := s.tokens.Issue(user["id"], role, email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User:  user,
	}, nil
}
