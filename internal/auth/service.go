package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth_test

const (
	resetKeyPrefix    = "fitplanner-pass-reset||"
	ResetTokenTTL     = time.Hour
	minPasswordLength = 8
)

type usersRepo interface {
	Add(ctx context.Context, user User) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateDetails(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
}

type resetMailer interface {
	SendPasswordReset(ctx context.Context, to, name, resetToken string) error
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *User     `json:"user"`
}

type Service struct {
	users       usersRepo
	sessions    *SessionStore
	tokens      *TokenIssuer
	mailer      resetMailer
	redisClient *redis.Client

	// injectable for tests
	RandStringFunc func(s int) (string, error)
	NewSessionID   func() string
	Now            func() time.Time
}

func NewService(
	users usersRepo,
	sessions *SessionStore,
	tokens *TokenIssuer,
	mailer resetMailer,
	redisClient *redis.Client,
) *Service {
	return &Service{
		users:          users,
		sessions:       sessions,
		tokens:         tokens,
		mailer:         mailer,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		NewSessionID:   uuid.NewString,
		Now:            time.Now,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name empty", ErrInvalidInput)
	}
	email, err = normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Add(ctx, User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    s.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}
	span.SetAttributes(attribute.Int("user.id", user.ID))

	return s.newSession(ctx, user)
}

func (s *Service) Login(ctx context.Context, email, password string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email, err = normalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(ctx, user)
}

func (s *Service) newSession(ctx context.Context, user *User) (*Session, error) {
	sessionID := s.NewSessionID()
	token, expiresAt, err := s.tokens.Issue(user.ID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Create(ctx, sessionID, s.Now()); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func (s *Service) Logout(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}

	return s.sessions.Revoke(ctx, claims.ID)
}

func (s *Service) Me(ctx context.Context, userID int) (*User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *Service) UpdateDetails(ctx context.Context, userID int, name, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.updateDetails")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
	}
	if email != "" {
		if user.Email, err = normalizeEmail(email); err != nil {
			return nil, err
		}
	}
	user.UpdatedAt = s.Now()

	if err := s.users.UpdateDetails(ctx, user); err != nil {
		return nil, fmt.Errorf("update details: %w", err)
	}
	return user, nil
}

func (s *Service) UpdatePassword(ctx context.Context, userID int, currentPassword, newPassword string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.updatePassword")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !pkg.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := pkg.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, userID, passwordHash)
}

// ForgotPassword never reveals whether the email is registered.
func (s *Service) ForgotPassword(ctx context.Context, email string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.forgotPassword")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email, err = normalizeEmail(email)
	if err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Debugf("forgot password requested for unknown email")
			return nil
		}
		return fmt.Errorf("get user: %w", err)
	}

	resetToken, err := s.RandStringFunc(32)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	if err := s.redisClient.Set(ctx, resetKeyPrefix+resetToken, strconv.Itoa(user.ID), ResetTokenTTL).Err(); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, user.Name, resetToken); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, resetToken, newPassword string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.resetPassword")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validatePassword(newPassword); err != nil {
		return err
	}

	resetKey := resetKeyPrefix + resetToken
	userIDStr, err := s.redisClient.Get(ctx, resetKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("get reset token: %w", err)
	}

	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return ErrInvalidResetToken
	}

	passwordHash, err := pkg.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.redisClient.Del(ctx, resetKey).Err(); err != nil {
		log.Errorf("reset password, delete used token for user %d: %s", userID, err)
	}
	return nil
}

func normalizeEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return "", fmt.Errorf("%w: bad email", ErrInvalidInput)
	}
	return strings.ToLower(addr.Address), nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must have at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}
