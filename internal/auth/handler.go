package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type authService interface {
	Register(ctx context.Context, name, email, password string) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID int) (*User, error)
	UpdateDetails(ctx context.Context, userID int, name, email string) (*User, error)
	UpdatePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateDetailsRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type Handler struct {
	service authService
}

func NewHandler(service authService) *Handler {
	return &Handler{
		service: service,
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[7:])
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Tracef("auth handler, unmarshal json: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.service.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrEmailTaken):
			http.Error(w, "email already registered", http.StatusConflict)
		default:
			log.Errorf("register user: %s", err)
			http.Error(w, "register failed", http.StatusInternalServerError)
		}
		return
	}

	log.Debugf("new user registered: %d", session.User.ID)
	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		}
		log.Errorf("login: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := BearerToken(r)
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	if err := h.service.Logout(ctx, token); err != nil {
		if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.me")
	defer span.End()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.service.Me(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get me [%d]: %s", userID, err)
		http.Error(w, "get user failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) HandleUpdateDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.updateDetails")
	defer span.End()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateDetailsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.UpdateDetails(ctx, userID, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrEmailTaken):
			http.Error(w, "email already registered", http.StatusConflict)
		case errors.Is(err, ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			log.Errorf("update details [%d]: %s", userID, err)
			http.Error(w, "update details failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) HandleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.updatePassword")
	defer span.End()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdatePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.UpdatePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			http.Error(w, "current password is wrong", http.StatusForbidden)
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("update password [%d]: %s", userID, err)
			http.Error(w, "update password failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteTextResponseOK(w, "password-updated")
}

func (h *Handler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.forgotPassword")
	defer span.End()

	var req ForgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.ForgotPassword(ctx, req.Email); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("forgot password: %s", err)
		http.Error(w, "forgot password failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "if the account exists, a reset email was sent")
}

func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.resetPassword")
	defer span.End()

	var req ResetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.ResetPassword(ctx, req.Token, req.Password); err != nil {
		switch {
		case errors.Is(err, ErrInvalidResetToken):
			http.Error(w, "invalid or expired reset token", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("reset password: %s", err)
			http.Error(w, "reset password failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteTextResponseOK(w, "password-reset")
}
