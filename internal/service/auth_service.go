package service

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/config"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
)

// ErrInvalidCredentials is returned for any login failure. The handler maps
// it to a 401 without distinguishing wrong email from wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService checks the single admin account and hands out the shared
// bearer token used by every protected route.
type AuthService interface {
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	email        string
	password     string
	passwordHash string
	token        string
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{
		email:        cfg.AdminEmail,
		password:     cfg.AdminPassword,
		passwordHash: cfg.AdminPasswordHash,
		token:        cfg.APIToken,
	}
}

func (s *authService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	if !strings.EqualFold(req.Email, s.email) {
		return nil, ErrInvalidCredentials
	}
	if s.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(req.Password)); err != nil {
			return nil, ErrInvalidCredentials
		}
	} else if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.password)) != 1 {
		return nil, ErrInvalidCredentials
	}
	return &dto.LoginResponse{Token: s.token}, nil
}
