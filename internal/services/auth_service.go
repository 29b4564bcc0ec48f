package services

import (
	"errors"
	"fmt"

	"gym_crm_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for Auth ---
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// OperatorRole is the role claim issued to the configured operator account.
const OperatorRole = "Admin"

// --- Auth DTOs ---
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

// --- AuthService Interface ---
// The console has a single operator account configured from the environment;
// there is no user registration.
type AuthService interface {
	Login(req LoginRequest) (*AuthResponse, error)
}

type authService struct {
	username     string
	passwordHash []byte
}

// NewAuthService hashes the configured operator password and returns a
// service that validates logins against it.
func NewAuthService(username, password string) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash operator password: %w", err)
	}
	return &authService{username: username, passwordHash: hash}, nil
}

func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	if req.Username != s.username {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		// err is bcrypt.ErrMismatchedHashAndPassword for a wrong password
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(s.username, OperatorRole)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &AuthResponse{AccessToken: token, Username: s.username, Role: OperatorRole}, nil
}
