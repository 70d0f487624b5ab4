package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/resumatch/backend/internal/auth"
	"github.com/resumatch/backend/internal/services"
	"github.com/resumatch/backend/internal/utils"
)

func newAuthService(users *fakeUserRepo) (services.AuthService, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret")
	return services.NewAuthService(users, tokens, 4), tokens
}

func TestRegister_LoginRoundTrip(t *testing.T) {
	users := &fakeUserRepo{}
	svc, tokens := newAuthService(users)
	ctx := context.Background()

	regToken, regUser, err := svc.Register(ctx, "Ann Lee", "  Ann@Example.COM ", "password123")
	require.NoError(t, err)
	require.Equal(t, "ann@example.com", regUser.Email)
	require.Equal(t, "Ann Lee", regUser.Name)
	require.False(t, regUser.CreatedAt.IsZero())

	// the token's embedded user id matches the registered user
	subject, err := tokens.Verify(regToken)
	require.NoError(t, err)
	require.Equal(t, regUser.ID.Hex(), subject)

	loginToken, loginUser, err := svc.Login(ctx, "ann@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, regUser.ID, loginUser.ID)
	require.NotEmpty(t, loginToken)
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	users := &fakeUserRepo{}
	svc, _ := newAuthService(users)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Ann Lee", "ann@example.com", "password123")
	require.NoError(t, err)

	// same address with different case still conflicts
	_, _, err = svc.Register(ctx, "Other Ann", "ANN@EXAMPLE.COM", "password456")
	require.Error(t, err)
	require.True(t, utils.IsCode(err, utils.CodeConflict))
	require.Len(t, users.users, 1) // no second record
}

func TestRegister_ValidationFailures(t *testing.T) {
	svc, _ := newAuthService(&fakeUserRepo{})
	ctx := context.Background()

	cases := []struct {
		name, email, password string
	}{
		{"", "ann@example.com", "password123"}, // missing name
		{"Ann", "not-an-email", "password123"},
		{"Ann", "ann@example.com", "short"},
		{"Ann123", "ann@example.com", "password123"}, // digits in name
	}
	for _, c := range cases {
		_, _, err := svc.Register(ctx, c.name, c.email, c.password)
		require.Error(t, err, "register(%q, %q, %q)", c.name, c.email, c.password)
		require.True(t, utils.IsCode(err, utils.CodeValidation))
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	users := &fakeUserRepo{}
	svc, _ := newAuthService(users)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Ann Lee", "ann@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ann@example.com", "wrong-password")
	require.Error(t, err)
	require.True(t, utils.IsCode(err, utils.CodeAuthentication))

	_, _, err = svc.Login(ctx, "ghost@example.com", "password123")
	require.Error(t, err)
	require.True(t, utils.IsCode(err, utils.CodeAuthentication))
}

func TestMe_ResolvesRegisteredUser(t *testing.T) {
	users := &fakeUserRepo{}
	svc, _ := newAuthService(users)
	ctx := context.Background()

	_, regUser, err := svc.Register(ctx, "Ann Lee", "ann@example.com", "password123")
	require.NoError(t, err)

	user, err := svc.Me(ctx, regUser.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, regUser.ID, user.ID)
	require.Equal(t, "ann@example.com", user.Email)
}

func TestMe_UnknownUser(t *testing.T) {
	svc, _ := newAuthService(&fakeUserRepo{})

	_, err := svc.Me(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	require.True(t, utils.IsCode(err, utils.CodeNotFound))

	_, err = svc.Me(context.Background(), "not-a-hex-id")
	require.Error(t, err)
	require.True(t, utils.IsCode(err, utils.CodeAuthentication))
}

func TestLogin_PasswordNotStoredInPlain(t *testing.T) {
	users := &fakeUserRepo{}
	svc, _ := newAuthService(users)

	_, user, err := svc.Register(context.Background(), "Ann Lee", "ann@example.com", "password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", user.Password)
	require.NotEmpty(t, user.Password)
}
