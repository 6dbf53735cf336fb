package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bracketpool/models"
)

func TestRegisterValidation(t *testing.T) {
	testCases := []struct {
		name     string
		input    models.Credentials
		expected error
	}{
		{
			name:     "empty name",
			input:    models.Credentials{Name: "", Password: "password123"},
			expected: ErrNameRequired,
		},
		{
			name:     "empty password",
			input:    models.Credentials{Name: "alice", Password: ""},
			expected: ErrNameRequired,
		},
		{
			name:     "name with digits",
			input:    models.Credentials{Name: "alice99", Password: "password123"},
			expected: ErrNameInvalid,
		},
		{
			name:     "name with trailing space",
			input:    models.Credentials{Name: "alice ", Password: "password123"},
			expected: ErrNameInvalid,
		},
		{
			name:     "short password",
			input:    models.Credentials{Name: "alice", Password: "short"},
			expected: ErrPasswordTooShort,
		},
	}

	svc := NewAuthService(newFakeUserRepo())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo)
	ctx := context.Background()

	user, err := svc.Register(ctx, models.Credentials{Name: "alice smith", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, models.RolePlayer, user.Role)
	assert.Empty(t, user.PasswordHash, "hash must not leave the service")

	stored, err := userRepo.GetByName(ctx, "alice smith")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "password123", stored.PasswordHash)

	loggedIn, err := svc.Login(ctx, models.Credentials{Name: "alice smith", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)
}

func TestRegisterDuplicateName(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.Credentials{Name: "alice", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.Credentials{Name: "alice", Password: "otherpassword"})
	assert.ErrorIs(t, err, ErrUserNameConflict)
}

func TestLoginFailures(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.Credentials{Name: "alice", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.Credentials{Name: "alice", Password: "wrongpassword"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)

	_, err = svc.Login(ctx, models.Credentials{Name: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials, "unknown user must look like a bad password")
}
