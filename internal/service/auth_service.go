// Package service contains the application's business logic.
package service

import (
	"context"
	"log/slog"

	"meublog/internal/middleware"
	"meublog/internal/models"
	"meublog/internal/repository"
	"meublog/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup and credential verification with the profile
// activation gate.
type AuthService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// SignupInput carries the fields required to register a new account.
type SignupInput struct {
	Username string
	Email    string
	Password string
	CPF      string
}

func NewAuthService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *AuthService {
	return &AuthService{userRepo: userRepo, profileRepo: profileRepo}
}

// Signup validates the input and creates the user together with its profile.
// Every new account starts as an active common user.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	cpf, err := validation.ValidateCPF(in.CPF)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if existing, err := s.userRepo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("Username already taken")
	}
	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("Email already registered")
	}
	if existing, err := s.profileRepo.GetByCPF(ctx, cpf); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("CPF already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
		Active:   true,
	}
	profile := &models.Profile{
		CPF:    cpf,
		Role:   models.RoleComum,
		Active: true,
	}
	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}
	user.Profile = profile
	return user, nil
}

// Authenticate verifies credentials and applies the profile activation gate:
// unknown username, bad password and deactivated profiles are all rejected,
// and any lookup error fails closed. Users without a profile row predate the
// profile model and are still allowed in.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Burn a hash comparison so unknown usernames take as long as bad passwords.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"), []byte(password))
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	profile, err := s.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		middleware.Logger.WarnContext(ctx, "user has no profile, allowing legacy login",
			slog.Any("user_id", user.ID),
			slog.String("username", user.Username),
		)
		return user, nil
	}
	if !profile.Active {
		return nil, models.NewUnauthorizedError("Account deactivated")
	}

	user.Profile = profile
	return user, nil
}

// IsAdmin reports whether the user has an admin profile. Users without a
// profile are never admins.
func (s *AuthService) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if profile == nil {
		return false, nil
	}
	return profile.IsAdmin(), nil
}
