package auth

import (
	"context"
	"time"

	"fixel/database/repository"
	"fixel/models"
	"fixel/utils"

	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 72 * time.Hour

// RegisterUserRequest carries a new customer's signup details.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	MobNo    string `json:"mob_no"`
	Address  string `json:"address"`
	FCMToken string `json:"fcm_token"`
}

// Session is a successful authentication: the profile plus a bearer token.
type Session struct {
	ProfileID string `json:"profile_id"`
	Name      string `json:"name"`
	Token     string `json:"token"`
}

// AccountService owns registration and login for both principal kinds.
// It is the local stand-in for a hosted auth provider: credentials live
// next to the profile rows and tokens are self-issued JWTs.
type AccountService struct {
	Users       repository.UserRepository
	Technicians repository.TechnicianRepository
}

// RegisterUser creates a profile with a bcrypt password hash and issues
// a token for it.
func (s *AccountService) RegisterUser(ctx context.Context, req RegisterUserRequest) (*Session, error) {
	existing, err := s.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, &utils.DependencyError{Op: "registerUser", Err: err}
	}
	if existing != nil {
		return nil, &utils.InvalidStateError{Reason: "email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile, err := s.Users.Insert(ctx, models.UserProfile{
		Name:         req.Name,
		Email:        req.Email,
		MobNo:        req.MobNo,
		Address:      req.Address,
		FCMToken:     req.FCMToken,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, &utils.DependencyError{Op: "registerUser", Err: err}
	}

	token, err := utils.GenerateToken(profile.ID, "user", tokenLifetime)
	if err != nil {
		return nil, err
	}
	return &Session{ProfileID: profile.ID, Name: profile.Name, Token: token}, nil
}

// LoginUser authenticates a customer by email and password.
func (s *AccountService) LoginUser(ctx context.Context, email, password string) (*Session, error) {
	profile, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, &utils.DependencyError{Op: "loginUser", Err: err}
	}
	if profile == nil {
		return nil, &utils.UnauthorizedError{Reason: "invalid credentials"}
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, &utils.UnauthorizedError{Reason: "invalid credentials"}
	}

	token, err := utils.GenerateToken(profile.ID, "user", tokenLifetime)
	if err != nil {
		return nil, err
	}
	return &Session{ProfileID: profile.ID, Name: profile.Name, Token: token}, nil
}

// LoginTechnician authenticates a technician by email and password.
func (s *AccountService) LoginTechnician(ctx context.Context, email, password string) (*Session, error) {
	tech, err := s.Technicians.GetByEmail(ctx, email)
	if err != nil {
		return nil, &utils.DependencyError{Op: "loginTechnician", Err: err}
	}
	if tech == nil {
		return nil, &utils.UnauthorizedError{Reason: "invalid credentials"}
	}
	if bcrypt.CompareHashAndPassword([]byte(tech.PasswordHash), []byte(password)) != nil {
		return nil, &utils.UnauthorizedError{Reason: "invalid credentials"}
	}

	token, err := utils.GenerateToken(tech.ID, "technician", tokenLifetime)
	if err != nil {
		return nil, err
	}
	return &Session{ProfileID: tech.ID, Name: tech.Name, Token: token}, nil
}
