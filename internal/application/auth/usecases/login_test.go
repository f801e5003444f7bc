package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/authorization"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc       func(ctx context.Context, u *user.User) error
	UpdateFunc     func(ctx context.Context, u *user.User) error
	DeleteFunc     func(ctx context.Context, userID uint) error
	GetByIDFunc    func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ListFunc       func(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	return m.SaveFunc(ctx, u)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.UpdateFunc(ctx, u)
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error {
	return m.DeleteFunc(ctx, userID)
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	return m.GetByIDFunc(ctx, userID)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *mockUserRepository) List(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error) {
	return m.ListFunc(ctx, filter)
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type fakeTokenService struct {
	GenerateFunc      func(userID uint, role authorization.UserRole) (*TokenPair, error)
	VerifyFunc        func(tokenString string) (*TokenClaims, error)
	VerifyRefreshFunc func(tokenString string) (*TokenClaims, error)
}

func (f *fakeTokenService) Generate(userID uint, role authorization.UserRole) (*TokenPair, error) {
	if f.GenerateFunc != nil {
		return f.GenerateFunc(userID, role)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (f *fakeTokenService) Verify(tokenString string) (*TokenClaims, error) {
	return f.VerifyFunc(tokenString)
}

func (f *fakeTokenService) VerifyRefresh(tokenString string) (*TokenClaims, error) {
	return f.VerifyRefreshFunc(tokenString)
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func reconstructUser(t *testing.T, id uint, email, password string, role authorization.UserRole) *user.User {
	t.Helper()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(id, "Dana", email, "hashed:"+password, role, "", now, now)
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return a token pair", func(t *testing.T) {
		repo := &mockUserRepository{
			GetByEmailFunc: func(_ context.Context, email string) (*user.User, error) {
				assert.Equal(t, "dana@example.com", email, "lookup is lowercased")
				return reconstructUser(t, 1, "dana@example.com", "s3cret-pass", authorization.RoleUser), nil
			},
		}

		uc := NewLoginUseCase(repo, fakeHasher{}, &fakeTokenService{}, testLogger())
		result, err := uc.Execute(ctx, LoginCommand{Email: "Dana@Example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "access", result.AccessToken)
		assert.Equal(t, "refresh", result.RefreshToken)
		assert.Equal(t, uint(1), result.User.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		unknownRepo := &mockUserRepository{
			GetByEmailFunc: func(_ context.Context, _ string) (*user.User, error) {
				return nil, errors.NewNotFoundError("user not found")
			},
		}
		knownRepo := &mockUserRepository{
			GetByEmailFunc: func(_ context.Context, _ string) (*user.User, error) {
				return reconstructUser(t, 1, "dana@example.com", "s3cret-pass", authorization.RoleUser), nil
			},
		}

		uc1 := NewLoginUseCase(unknownRepo, fakeHasher{}, &fakeTokenService{}, testLogger())
		_, err1 := uc1.Execute(ctx, LoginCommand{Email: "nobody@example.com", Password: "whatever9"})

		uc2 := NewLoginUseCase(knownRepo, fakeHasher{}, &fakeTokenService{}, testLogger())
		_, err2 := uc2.Execute(ctx, LoginCommand{Email: "dana@example.com", Password: "wrong-pass"})

		require.Error(t, err1)
		require.Error(t, err2)
		assert.Equal(t, err1.Error(), err2.Error())

		appErr := errors.GetAppError(err1)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		uc := NewLoginUseCase(&mockUserRepository{}, fakeHasher{}, &fakeTokenService{}, testLogger())

		_, err := uc.Execute(ctx, LoginCommand{Password: "s3cret-pass"})
		assert.True(t, errors.IsValidationError(err))

		_, err = uc.Execute(ctx, LoginCommand{Email: "dana@example.com"})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestRegisterUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("registers with a normalized email and user role", func(t *testing.T) {
		var saved *user.User
		repo := &mockUserRepository{
			SaveFunc: func(_ context.Context, u *user.User) error {
				saved = u
				return u.SetID(1)
			},
		}

		uc := NewRegisterUseCase(repo, fakeHasher{}, &fakeTokenService{}, testLogger())
		result, err := uc.Execute(ctx, RegisterCommand{
			Name:     "Dana",
			Email:    "Dana@Example.com",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)

		require.NotNil(t, saved)
		assert.Equal(t, "dana@example.com", saved.Email())
		assert.Equal(t, authorization.RoleUser, saved.Role())
		assert.Equal(t, "hashed:s3cret-pass", saved.PasswordHash())
		assert.Equal(t, "access", result.AccessToken)
	})

	t.Run("duplicate email surfaces the conflict", func(t *testing.T) {
		repo := &mockUserRepository{
			SaveFunc: func(_ context.Context, _ *user.User) error {
				return errors.NewConflictError("email already registered")
			},
		}

		uc := NewRegisterUseCase(repo, fakeHasher{}, &fakeTokenService{}, testLogger())
		_, err := uc.Execute(ctx, RegisterCommand{
			Name:     "Dana",
			Email:    "dana@example.com",
			Password: "s3cret-pass",
		})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name string
			cmd  RegisterCommand
		}{
			{"missing name", RegisterCommand{Email: "dana@example.com", Password: "s3cret-pass"}},
			{"missing email", RegisterCommand{Name: "Dana", Password: "s3cret-pass"}},
			{"short password", RegisterCommand{Name: "Dana", Email: "dana@example.com", Password: "short"}},
			{"invalid email", RegisterCommand{Name: "Dana", Email: "not-an-email", Password: "s3cret-pass"}},
		}

		uc := NewRegisterUseCase(&mockUserRepository{}, fakeHasher{}, &fakeTokenService{}, testLogger())
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tt.cmd)
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
			})
		}
	})
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("re-reads the user before issuing a new pair", func(t *testing.T) {
		tokens := &fakeTokenService{
			VerifyRefreshFunc: func(tokenString string) (*TokenClaims, error) {
				assert.Equal(t, "refresh-token", tokenString)
				return &TokenClaims{UserID: 1, Role: authorization.RoleUser}, nil
			},
			GenerateFunc: func(userID uint, role authorization.UserRole) (*TokenPair, error) {
				// Role comes from the database, not the old token.
				assert.Equal(t, authorization.RoleAdmin, role)
				return &TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil
			},
		}
		repo := &mockUserRepository{
			GetByIDFunc: func(_ context.Context, userID uint) (*user.User, error) {
				return reconstructUser(t, userID, "dana@example.com", "s3cret-pass", authorization.RoleAdmin), nil
			},
		}

		uc := NewRefreshTokenUseCase(repo, tokens, testLogger())
		result, err := uc.Execute(ctx, RefreshTokenCommand{RefreshToken: "refresh-token"})
		require.NoError(t, err)
		assert.Equal(t, "new-access", result.AccessToken)
	})

	t.Run("deleted user invalidates the token", func(t *testing.T) {
		tokens := &fakeTokenService{
			VerifyRefreshFunc: func(_ string) (*TokenClaims, error) {
				return &TokenClaims{UserID: 9, Role: authorization.RoleUser}, nil
			},
		}
		repo := &mockUserRepository{
			GetByIDFunc: func(_ context.Context, _ uint) (*user.User, error) {
				return nil, errors.NewNotFoundError("user not found")
			},
		}

		uc := NewRefreshTokenUseCase(repo, tokens, testLogger())
		_, err := uc.Execute(ctx, RefreshTokenCommand{RefreshToken: "refresh-token"})
		require.Error(t, err)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		tokens := &fakeTokenService{
			VerifyRefreshFunc: func(_ string) (*TokenClaims, error) {
				return nil, fmt.Errorf("token is expired")
			},
		}

		uc := NewRefreshTokenUseCase(&mockUserRepository{}, tokens, testLogger())
		_, err := uc.Execute(ctx, RefreshTokenCommand{RefreshToken: "garbage"})
		require.Error(t, err)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	})
}
