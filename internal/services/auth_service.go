package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/resumatch/backend/internal/auth"
	"github.com/resumatch/backend/internal/models"
	mongorepo "github.com/resumatch/backend/internal/repositories/mongo"
	"github.com/resumatch/backend/internal/utils"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (token string, user *models.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *models.User, err error)
	// Me resolves the authenticated user from the token's user id.
	Me(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	users      mongorepo.UserRepository
	tokens     *auth.TokenManager
	policy     utils.PasswordPolicy
	bcryptCost int
}

func NewAuthService(users mongorepo.UserRepository, tokens *auth.TokenManager, bcryptCost int) AuthService {
	return &authService{
		users:      users,
		tokens:     tokens,
		policy:     utils.DefaultPasswordPolicy(),
		bcryptCost: bcryptCost,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (string, *models.User, error) {
	const op = "AuthService.Register"

	if err := utils.ValidateRequiredFields(
		map[string]string{"name": name, "email": email, "password": password},
		[]string{"name", "email", "password"},
	); err != nil {
		return "", nil, err
	}

	normalizedEmail, err := utils.ValidateEmail(email)
	if err != nil {
		return "", nil, err
	}
	if err := utils.ValidatePassword(password, s.policy); err != nil {
		return "", nil, err
	}
	trimmedName, err := utils.ValidateName(name)
	if err != nil {
		return "", nil, err
	}

	// Pre-read for a friendly conflict; the unique index catches the race.
	if _, err := s.users.GetByEmail(ctx, normalizedEmail); err == nil {
		return "", nil, utils.E(utils.CodeConflict, op, "User with this email already exists", nil)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return "", nil, utils.E(utils.CodeDatabase, op, "Failed to create user", err)
	}

	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("%s: hash password: %w", op, err)
	}

	user := &models.User{
		Name:     trimmedName,
		Email:    normalizedEmail,
		Password: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, mongorepo.ErrDuplicateEmail) {
			return "", nil, utils.E(utils.CodeConflict, op, "User with this email already exists", err)
		}
		return "", nil, utils.E(utils.CodeDatabase, op, "Failed to create user", err)
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return "", nil, fmt.Errorf("%s: issue token: %w", op, err)
	}

	return token, user, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*models.User, error) {
	const op = "AuthService.Me"

	uid, err := parseUserID(op, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			// valid token but the account is gone
			return nil, utils.E(utils.CodeNotFound, op, "User not found", err)
		}
		return nil, utils.E(utils.CodeDatabase, op, "Failed to fetch user", err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	const op = "AuthService.Login"

	if err := utils.ValidateRequiredFields(
		map[string]string{"email": email, "password": password},
		[]string{"email", "password"},
	); err != nil {
		return "", nil, err
	}

	normalizedEmail, err := utils.ValidateEmail(email)
	if err != nil {
		return "", nil, err
	}

	user, err := s.users.GetByEmail(ctx, normalizedEmail)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", nil, utils.E(utils.CodeAuthentication, op, "Invalid email or password", nil)
		}
		return "", nil, utils.E(utils.CodeDatabase, op, "Failed to fetch user", err)
	}

	if err := utils.CheckPassword(user.Password, password); err != nil {
		return "", nil, utils.E(utils.CodeAuthentication, op, "Invalid email or password", nil)
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return "", nil, fmt.Errorf("%s: issue token: %w", op, err)
	}

	return token, user, nil
}
