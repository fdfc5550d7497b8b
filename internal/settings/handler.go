package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=settings_test

type settingsStore interface {
	Get(ctx context.Context, userID int) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}

type notificationsStore interface {
	List(ctx context.Context, userID int) ([]Notification, error)
	MarkRead(ctx context.Context, userID, id int) error
	MarkAllRead(ctx context.Context, userID int) (int64, error)
}

type Handler struct {
	settings      settingsStore
	notifications notificationsStore
	now           func() time.Time
}

func NewHandler(settings settingsStore, notifications notificationsStore) *Handler {
	return &Handler{
		settings:      settings,
		notifications: notifications,
		now:           time.Now,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	s, err := h.settings.Get(ctx, userID)
	if err != nil {
		log.Errorf("get settings [%d]: %s", userID, err)
		http.Error(w, "get settings failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, s, http.StatusOK)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// start from the stored values so a partial body keeps the rest
	s, err := h.settings.Get(ctx, userID)
	if err != nil {
		log.Errorf("get settings [%d]: %s", userID, err)
		http.Error(w, "update settings failed", http.StatusInternalServerError)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(s); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.UserID = userID
	s.UpdatedAt = h.now()
	s.Normalize()
	if err := s.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.settings.Save(ctx, s); err != nil {
		log.Errorf("save settings [%d]: %s", userID, err)
		http.Error(w, "update settings failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, s, http.StatusOK)
}

func (h *Handler) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	notifications, err := h.notifications.List(ctx, userID)
	if err != nil {
		log.Errorf("list notifications [%d]: %s", userID, err)
		http.Error(w, "list notifications failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, notifications, http.StatusOK)
}

func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.markRead")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid notification id", http.StatusBadRequest)
		return
	}

	if err := h.notifications.MarkRead(ctx, userID, id); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			http.Error(w, "notification not found", http.StatusNotFound)
			return
		}
		log.Errorf("mark notification %d read [%d]: %s", id, userID, err)
		http.Error(w, "mark read failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "read")
}

func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.markAllRead")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	marked, err := h.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		log.Errorf("mark all notifications read [%d]: %s", userID, err)
		http.Error(w, "mark read failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, map[string]int64{"marked": marked}, http.StatusOK)
}
