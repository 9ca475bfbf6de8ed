package service

import (
	"context"
	"testing"

	"meublog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Parallel()
	const password = "SenhaSegura123!"

	activeUser := func(t *testing.T) *models.User {
		return &models.User{ID: 7, Username: "maria", Password: hashPassword(t, password), Active: true}
	}

	t.Run("Valid Credentials With Active Profile", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			return activeUser(t), nil
		}
		profileRepo := noopProfileRepo()
		profileRepo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return &models.Profile{UserID: 7, Role: models.RoleComum, Active: true}, nil
		}

		svc := NewAuthService(userRepo, profileRepo)
		user, err := svc.Authenticate(context.Background(), "maria", password)
		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
		require.NotNil(t, user.Profile)
	})

	t.Run("Unknown Username", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), noopProfileRepo())
		_, err := svc.Authenticate(context.Background(), "ninguem", password)
		assertUnauthorizedError(t, err)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			return activeUser(t), nil
		}

		svc := NewAuthService(userRepo, noopProfileRepo())
		_, err := svc.Authenticate(context.Background(), "maria", "errada")
		assertUnauthorizedError(t, err)
	})

	t.Run("Deactivated Profile Blocks Login", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			return activeUser(t), nil
		}
		profileRepo := noopProfileRepo()
		profileRepo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return &models.Profile{UserID: 7, Role: models.RoleAdmin, Active: false}, nil
		}

		svc := NewAuthService(userRepo, profileRepo)
		_, err := svc.Authenticate(context.Background(), "maria", password)
		assertUnauthorizedError(t, err)
		assert.Contains(t, err.Error(), "deactivated")
	})

	t.Run("Missing Profile Allows Legacy Login", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			return activeUser(t), nil
		}

		svc := NewAuthService(userRepo, noopProfileRepo())
		user, err := svc.Authenticate(context.Background(), "maria", password)
		require.NoError(t, err)
		assert.Nil(t, user.Profile)
	})

	t.Run("Profile Lookup Error Fails Closed", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			return activeUser(t), nil
		}
		profileRepo := noopProfileRepo()
		profileRepo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return nil, models.NewInternalError(assert.AnError)
		}

		svc := NewAuthService(userRepo, profileRepo)
		_, err := svc.Authenticate(context.Background(), "maria", password)
		require.Error(t, err)
	})

	t.Run("Empty Credentials", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), noopProfileRepo())
		_, err := svc.Authenticate(context.Background(), "", "")
		assertUnauthorizedError(t, err)
	})
}

func TestAuthService_Signup(t *testing.T) {
	t.Parallel()
	valid := SignupInput{
		Username: "maria_silva",
		Email:    "maria@example.com",
		Password: "SenhaSegura123!",
		CPF:      "529.982.247-25",
	}

	t.Run("Success Hashes Password And Normalizes CPF", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		var createdUser *models.User
		var createdProfile *models.Profile
		userRepo.createWithProfileFn = func(_ context.Context, u *models.User, p *models.Profile) error {
			u.ID = 1
			createdUser = u
			createdProfile = p
			return nil
		}

		svc := NewAuthService(userRepo, noopProfileRepo())
		user, err := svc.Signup(context.Background(), valid)
		require.NoError(t, err)

		require.NotNil(t, createdUser)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.Password), []byte(valid.Password)))
		assert.Equal(t, "52998224725", createdProfile.CPF)
		assert.Equal(t, models.RoleComum, createdProfile.Role)
		assert.True(t, createdProfile.Active)
		assert.True(t, user.Active)
	})

	t.Run("Weak Password Rejected", func(t *testing.T) {
		t.Parallel()
		in := valid
		in.Password = "fraca"
		svc := NewAuthService(noopUserRepo(), noopProfileRepo())
		_, err := svc.Signup(context.Background(), in)
		assertValidationError(t, err)
	})

	t.Run("Invalid CPF Rejected", func(t *testing.T) {
		t.Parallel()
		in := valid
		in.CPF = "111.111.111-11"
		svc := NewAuthService(noopUserRepo(), noopProfileRepo())
		_, err := svc.Signup(context.Background(), in)
		assertValidationError(t, err)
	})

	t.Run("Duplicate Username Rejected", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: 2}, nil
		}
		svc := NewAuthService(userRepo, noopProfileRepo())
		_, err := svc.Signup(context.Background(), valid)
		assertValidationError(t, err)
	})

	t.Run("Duplicate CPF Rejected", func(t *testing.T) {
		t.Parallel()
		profileRepo := noopProfileRepo()
		profileRepo.getByCPFFn = func(_ context.Context, _ string) (*models.Profile, error) {
			return &models.Profile{UserID: 3}, nil
		}
		svc := NewAuthService(noopUserRepo(), profileRepo)
		_, err := svc.Signup(context.Background(), valid)
		assertValidationError(t, err)
	})
}

func TestAuthService_IsAdmin(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		profile *models.Profile
		want    bool
	}{
		{"Admin Profile", &models.Profile{Role: models.RoleAdmin, Active: true}, true},
		{"Common Profile", &models.Profile{Role: models.RoleComum, Active: true}, false},
		{"No Profile", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			profileRepo := noopProfileRepo()
			profileRepo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
				return tt.profile, nil
			}
			svc := NewAuthService(noopUserRepo(), profileRepo)
			got, err := svc.IsAdmin(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
