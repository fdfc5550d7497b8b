package profile

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileStore interface {
	Get(ctx context.Context, userID int) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, userID int) error
}

type Handler struct {
	store profileStore
	now   func() time.Time
}

func NewHandler(store profileStore) *Handler {
	return &Handler{
		store: store,
		now:   time.Now,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := h.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile [%d]: %s", userID, err)
		http.Error(w, "get profile failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

// HandleSave covers both onboarding and later edits.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.save")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Tracef("profile handler, unmarshal json: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p.UserID = userID
	p.Normalize()
	if err := p.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p.UpdatedAt = h.now()

	if err := h.store.Upsert(ctx, &p); err != nil {
		log.Errorf("save profile [%d]: %s", userID, err)
		http.Error(w, "save profile failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.store.Delete(ctx, userID); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete profile [%d]: %s", userID, err)
		http.Error(w, "delete profile failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

// HandleBMI computes from ?heightCm=&weightKg= when both are given, otherwise from the stored profile.
func (h *Handler) HandleBMI(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.bmi")
	defer span.End()

	query := r.URL.Query()
	if query.Has("heightCm") || query.Has("weightKg") {
		heightCm, errH := strconv.ParseFloat(query.Get("heightCm"), 64)
		weightKg, errW := strconv.ParseFloat(query.Get("weightKg"), 64)
		if errH != nil || errW != nil || heightCm <= 0 || weightKg <= 0 ||
			math.IsInf(heightCm, 0) || math.IsInf(weightKg, 0) {
			http.Error(w, "heightCm and weightKg must be positive numbers", http.StatusBadRequest)
			return
		}
		bmi := BMI(heightCm, weightKg)
		pkg.WriteJSON(w, BMISummary{BMI: bmi, Category: BMICategory(bmi)}, http.StatusOK)
		return
	}

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := h.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile for bmi [%d]: %s", userID, err)
		http.Error(w, "get bmi failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, p.Summary(), http.StatusOK)
}
