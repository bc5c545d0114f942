// Package services contains server-side business logic. This file implements
// AccountService, which handles sign-up, sign-in, password changes, and the
// forgotten-password recovery flow.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/common"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/dbx"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/logging"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/auth"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/config"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/models"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/password"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/repositories/repomanager"
)

// passwordEpoch is the lastPasswordChanged value stamped on new accounts.
// Backdating it means a fresh account hits the age limit on first sign-in
// and is forced through a password change before it can obtain a token.
var passwordEpoch = time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)

// initialDaysLeft seeds the client-facing day counter on new accounts and
// after every password change.
const initialDaysLeft = 30

// AuthResult is the outcome of a successful sign-up, sign-in, or password
// change. When PasswordChangeRequired is set the credential has aged out:
// User carries the profile but no token was issued.
type AuthResult struct {
	User                   *models.User
	Token                  string
	ExpiresAt              time.Time
	PasswordChangeRequired bool
}

// SignUpParams carries the fields collected at registration. SecurityAnswer
// arrives in clear and is hashed before it is stored.
type SignUpParams struct {
	Name             string
	Email            string
	Password         string
	ConfirmPassword  string
	PhotoURL         string
	DateOfBirth      time.Time
	SecurityQuestion string
	SecurityAnswer   string
}

// ResetPasswordParams carries the recovery challenge plus the replacement
// password pair for the forgotten-password flow.
type ResetPasswordParams struct {
	Email            string
	SecurityQuestion string
	SecurityAnswer   string
	DateOfBirth      time.Time
	NewPassword      string
	ConfirmPassword  string
}

// AccountService provides account lifecycle operations:
// - SignUp: validate, create, and issue a first token
// - SignIn: verify credentials, enforce password age, mint tokens
// - ChangePassword: rotate the credential and issue a fresh token
// - ResetPassword: recovery via security question, answer, and date of birth
type AccountService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	jwtSecret   []byte
	tokenTTL    time.Duration
	maxAgeDays  int
	now         func() time.Time
}

// NewAccountService constructs an AccountService using repositories and
// server config.
func NewAccountService(m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *AccountService {
	return &AccountService{
		repomanager: m,
		logger:      logger,
		jwtSecret:   []byte(cfg.SecretKey),
		tokenTTL:    cfg.TokenTTL,
		maxAgeDays:  cfg.PasswordMaxAgeDays,
		now:         time.Now,
	}
}

// SignUp validates the password pair, creates the account, and issues a
// token. The lastPasswordChanged stamp is backdated to passwordEpoch, so the
// next sign-in demands a password change. A registered email yields
// common.ErrEmailTaken.
func (s *AccountService) SignUp(ctx context.Context, p SignUpParams) (*AuthResult, error) {
	if err := password.Validate(p.Password, p.ConfirmPassword); err != nil {
		return nil, err
	}

	hash, err := password.Hash(p.Password)
	if err != nil {
		s.logger.Error(ctx, "hashing password", "error", err)
		return nil, common.ErrInternal
	}
	answerHash, err := password.Hash(p.SecurityAnswer)
	if err != nil {
		s.logger.Error(ctx, "hashing security answer", "error", err)
		return nil, common.ErrInternal
	}

	now := s.now()
	user := &models.User{
		Name:                p.Name,
		Email:               p.Email,
		PasswordHash:        hash,
		LastLoggedIn:        now,
		LastPasswordChanged: passwordEpoch,
		PasswordDaysLeft:    initialDaysLeft,
		PhotoURL:            p.PhotoURL,
		DateOfBirth:         p.DateOfBirth,
		SecurityQuestion:    p.SecurityQuestion,
		SecurityAnswerHash:  answerHash,
	}

	// Find-then-create inside one transaction; the unique index on email is
	// the backstop for a concurrent writer that slips between the two.
	var created *models.User
	if err := s.repomanager.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if _, err := repo.GetByEmail(ctx, p.Email); err == nil {
			return common.ErrEmailTaken
		} else if !errors.Is(err, common.ErrNotFound) {
			return err
		}
		var createErr error
		created, createErr = repo.Create(ctx, user)
		return createErr
	}); err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		s.logger.Error(ctx, "creating user", "error", err)
		return nil, common.ErrInternal
	}

	return s.issueToken(ctx, created)
}

// SignIn verifies the credentials and either issues a token or, when the
// password has aged past the limit, returns a change-required result with no
// token and without touching lastLoggedIn. Unknown email, wrong password,
// and a disabled account all yield common.ErrInvalidCredentials.
func (s *AccountService) SignIn(ctx context.Context, email, plaintext string) (*AuthResult, error) {
	repo := s.repomanager.Users(nil)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "looking up user", "error", err)
		return nil, common.ErrInternal
	}
	if !password.Verify(plaintext, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}
	if user.IsDisabled {
		return nil, common.ErrInvalidCredentials
	}

	now := s.now()
	age := common.DaysBetween(user.LastPasswordChanged, now)
	daysLeft := s.maxAgeDays - age

	if age >= s.maxAgeDays {
		user.PasswordDaysLeft = daysLeft
		return &AuthResult{User: user, PasswordChangeRequired: true}, nil
	}

	if err := repo.UpdateLoginStamp(ctx, user.ID, now, daysLeft); err != nil {
		s.logger.Error(ctx, "updating login stamp", "error", err)
		return nil, common.ErrInternal
	}
	user.LastLoggedIn = now
	user.PasswordDaysLeft = daysLeft

	return s.issueToken(ctx, user)
}

// ChangePassword rotates the credential for the account with the given id.
// Failure order: unknown account,
// new password equal to the current one, pair mismatch or policy failure,
// wrong current password. A new password that merely re-encodes the stored
// credential is also rejected as ErrSamePassword. On success both timestamps
// are stamped, the day counter resets, and a fresh token is issued.
func (s *AccountService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword, confirmPassword string) (*AuthResult, error) {
	repo := s.repomanager.Users(nil)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		s.logger.Error(ctx, "looking up user", "error", err)
		return nil, common.ErrInternal
	}

	if newPassword == currentPassword {
		return nil, common.ErrSamePassword
	}
	if err := password.Validate(newPassword, confirmPassword); err != nil {
		return nil, err
	}
	if !password.Verify(currentPassword, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}
	if password.Verify(newPassword, user.PasswordHash) {
		return nil, common.ErrSamePassword
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		s.logger.Error(ctx, "hashing password", "error", err)
		return nil, common.ErrInternal
	}

	now := s.now()
	if err := repo.UpdatePassword(ctx, user.ID, hash, now); err != nil {
		s.logger.Error(ctx, "updating password", "error", err)
		return nil, common.ErrInternal
	}
	user.PasswordHash = hash
	user.LastPasswordChanged = now
	user.LastLoggedIn = now
	user.PasswordDaysLeft = initialDaysLeft

	return s.issueToken(ctx, user)
}

// ResetPassword is the forgotten-password flow: the caller proves ownership
// with the security question, its answer, and the date of birth, then
// supplies a new password pair. Every recovery failure collapses into
// common.ErrInvalidCredentials. No token is issued; the user signs in with
// the new password afterwards.
func (s *AccountService) ResetPassword(ctx context.Context, p ResetPasswordParams) error {
	if err := password.Validate(p.NewPassword, p.ConfirmPassword); err != nil {
		return err
	}

	repo := s.repomanager.Users(nil)
	user, err := repo.GetByEmail(ctx, p.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "looking up user", "error", err)
		return common.ErrInternal
	}

	if p.SecurityQuestion != user.SecurityQuestion {
		return common.ErrInvalidCredentials
	}
	if !password.Verify(p.SecurityAnswer, user.SecurityAnswerHash) {
		return common.ErrInvalidCredentials
	}
	if !common.SameDate(p.DateOfBirth, user.DateOfBirth) {
		return common.ErrInvalidCredentials
	}
	if password.Verify(p.NewPassword, user.PasswordHash) {
		return common.ErrSamePassword
	}

	hash, err := password.Hash(p.NewPassword)
	if err != nil {
		s.logger.Error(ctx, "hashing password", "error", err)
		return common.ErrInternal
	}
	if err := repo.UpdatePassword(ctx, user.ID, hash, s.now()); err != nil {
		s.logger.Error(ctx, "updating password", "error", err)
		return common.ErrInternal
	}
	return nil
}

func (s *AccountService) issueToken(ctx context.Context, user *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user, s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.logger.Error(ctx, "generating token", "error", err)
		return nil, common.ErrInternal
	}
	return &AuthResult{
		User:      user,
		Token:     token,
		ExpiresAt: s.now().Add(s.tokenTTL),
	}, nil
}
