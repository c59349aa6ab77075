// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/budgetbook/backend/internal/application/adapter"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Username string
	Password string
}

// LoginUserOutput represents the output of a successful login.
type LoginUserOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	Username    string
}

// LoginUserUseCase handles login against the configured credentials. The
// engine is single-tenant: one username and one bcrypt password hash come
// from configuration.
type LoginUserUseCase struct {
	username     string
	passwordHash string
	passwords    adapter.PasswordService
	tokens       adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(username, passwordHash string, passwords adapter.PasswordService, tokens adapter.TokenService) *LoginUserUseCase {
	return &LoginUserUseCase{
		username:     username,
		passwordHash: passwordHash,
		passwords:    passwords,
		tokens:       tokens,
	}
}

// Execute verifies the credentials and issues an access token. The same
// error is returned for a wrong username and a wrong password.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	invalid := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid username or password",
		domainerror.ErrInvalidCredentials,
	)

	usernameMatches := subtle.ConstantTimeCompare([]byte(uc.username), []byte(input.Username)) == 1
	// Always run the hash comparison so both failure paths cost the same.
	passwordErr := uc.passwords.VerifyPassword(uc.passwordHash, input.Password)
	if !usernameMatches || passwordErr != nil {
		return nil, invalid
	}

	token, expiresAt, err := uc.tokens.GenerateToken(ctx, uc.username)
	if err != nil {
		return nil, err
	}
	return &LoginUserOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Username:    uc.username,
	}, nil
}
