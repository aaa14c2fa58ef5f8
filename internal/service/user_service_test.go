package service

import (
	"context"
	"testing"

	"jobport/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	valid := func() RegisterInput {
		return RegisterInput{
			Username: "acme_hr",
			Email:    "hr@acme.com",
			Password: "supersecret",
			Role:     models.RoleEmployer,
		}
	}

	t.Run("creates user with hashed password", func(t *testing.T) {
		repo := noopUserRepo()
		var created *models.User
		repo.createFn = func(_ context.Context, u *models.User) error {
			created = u
			return nil
		}
		svc := NewUserService(repo)

		user, err := svc.Register(context.Background(), valid())
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "acme_hr", user.Username)
		assert.Equal(t, models.RoleEmployer, user.Role)
		assert.NotEqual(t, "supersecret", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("supersecret")))
	})

	t.Run("rejects short password", func(t *testing.T) {
		in := valid()
		in.Password = "short"
		_, err := NewUserService(noopUserRepo()).Register(context.Background(), in)
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		in := valid()
		in.Role = "superuser"
		_, err := NewUserService(noopUserRepo()).Register(context.Background(), in)
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: 1}, nil
		}
		_, err := NewUserService(repo).Register(context.Background(), valid())
		assertCode(t, err, models.CodeValidation)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getByUsernameFn = func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: 1}, nil
		}
		_, err := NewUserService(repo).Register(context.Background(), valid())
		assertCode(t, err, models.CodeValidation)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	account := &models.User{ID: 7, Username: "acme_hr", Email: "hr@acme.com", Password: string(hashed)}

	repo := noopUserRepo()
	repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		if username == account.Username {
			return account, nil
		}
		return nil, nil
	}
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		if email == account.Email {
			return account, nil
		}
		return nil, nil
	}
	svc := NewUserService(repo)

	t.Run("by username", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "acme_hr", "supersecret")
		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
	})

	t.Run("by email", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "hr@acme.com", "supersecret")
		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "acme_hr", "wrong")
		assertCode(t, err, models.CodeUnauthorized)
	})

	t.Run("unknown login", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nobody", "supersecret")
		assertCode(t, err, models.CodeUnauthorized)
	})
}
