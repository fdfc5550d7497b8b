package plans

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/profile"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

type plansService interface {
	Generate(ctx context.Context, userID int, planType PlanType, totalWeeks int) (*Generated, error)
	Get(ctx context.Context, userID int, planType PlanType) (*Plan, error)
	Metadata(ctx context.Context, userID int, planType PlanType) (*Metadata, error)
	Delete(ctx context.Context, userID int, planType PlanType) error
	Archive(ctx context.Context, userID int, planType PlanType) ([]ArchivedPlan, error)
	DayAccessible(ctx context.Context, userID int, planType PlanType, day string, loc *time.Location) (bool, time.Weekday, error)
	ToggleItem(ctx context.Context, userID int, planType PlanType, day string, index int, loc *time.Location) (*Plan, error)
	CheckAndRenew(ctx context.Context, userID int) ([]RenewalOutcome, error)
}

type locationResolver interface {
	Location(ctx context.Context, userID int, ip string) *time.Location
}

type GenerateRequest struct {
	TotalWeeks int `json:"totalWeeks"`
}

type DayAccessResponse struct {
	Day        string `json:"day"`
	Accessible bool   `json:"accessible"`
	WeekStart  string `json:"weekStart"`
}

type Handler struct {
	service   plansService
	locations locationResolver
}

func NewHandler(service plansService, locations locationResolver) *Handler {
	return &Handler{
		service:   service,
		locations: locations,
	}
}

// requestParams reads the user and the {type} route var, writing the error response when invalid.
func requestParams(w http.ResponseWriter, r *http.Request) (int, PlanType, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return 0, "", false
	}

	planType, err := ParsePlanType(mux.Vars(r)["type"])
	if err != nil {
		http.Error(w, "unknown plan type", http.StatusBadRequest)
		return 0, "", false
	}

	return userID, planType, true
}

func (h *Handler) location(ctx context.Context, r *http.Request, userID int) *time.Location {
	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		log.Tracef("read user ip: %s", err)
	}
	return h.locations.Location(ctx, userID, ip)
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.generate")
	defer span.End()

	userID, planType, ok := requestParams(w, r)
	if !ok {
		return
	}

	var req GenerateRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}
	if req.TotalWeeks < 0 || req.TotalWeeks > 52 {
		http.Error(w, "total weeks must be between 1 and 52", http.StatusBadRequest)
		return
	}

	generated, err := h.service.Generate(ctx, userID, planType, req.TotalWeeks)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrProfileNotFound):
			http.Error(w, "complete your profile first", http.StatusPreconditionFailed)
		case errors.Is(err, ErrPlanBusy):
			http.Error(w, ErrPlanBusy.Error(), http.StatusConflict)
		case errors.Is(err, ErrInvalidPlanResponse):
			log.Warnf("generate %s plan [%d]: %s", planType, userID, err)
			http.Error(w, ErrInvalidPlanResponse.Error(), http.StatusBadGateway)
		case errors.Is(err, context.Canceled):
			log.Debugf("generate %s plan [%d]: client went away", planType, userID)
		default:
			log.Errorf("generate %s plan [%d]: %s", planType, userID, err)
			http.Error(w, "plan generation failed, please try again later", http.StatusBadGateway)
		}
		return
	}

	pkg.WriteJSON(w, generated, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	userID, planType, ok := requestParams(w, r)
	if !ok {
		return
	}

	plan, err := h.service.Get(ctx, userID, planType)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("get %s plan [%d]: %s", planType, userID, err)
		http.Error(w, "get plan failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	userID, planType, ok := requestParams(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, userID, planType); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete %s plan [%d]: %s", planType, userID, err)
		http.Error(w, "delete plan failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (h *Handler) HandleMetadata(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.metadata")
	defer span.End()

	userID, planType, ok := requestParams(w, r)
	if !ok {
		return
	}

	meta, err := h.service.Metadata(ctx, userID, planType)
	if err != nil {
		if errors.Is(err, ErrMetadataNotFound) {
			http.Error(w, "plan metadata not found", http.StatusNotFound)
			return
		}
		log.Errorf("get %s plan metadata [%d]: %s", planType, userID, err)
		http.Error(w, "get plan metadata failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, meta, http.StatusOK)
}

func (h *Handler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.archive")
	defer span.End()

	userID, planType, ok := requestParams(w, r)
	if !ok {
		return
	}

	archived, err := h.service.Archive(ctx, userID, planType)
	if err != nil {
		log.Errorf("list %s plan archive [%d]: %s", planType, userID, err)
		http.Error(w, "list archive failed", http.StatusInternalServerError)
		return
	}
	if archived == nil {
		archived = []ArchivedPlan{}
	}

	pkg.WriteJSON(w, archived, http.StatusOK)
}

func (h *Handler) HandleDayAccessible(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.dayAccessible")
	defer span.End()

	userID, planType, ok := requestParams(w, r)
	if !ok {
		return
	}
	day := strings.ToLower(mux.Vars(r)["day"])

	accessible, weekStart, err := h.service.DayAccessible(ctx, userID, planType, day, h.location(ctx, r, userID))
	if err != nil {
		if errors.Is(err, ErrUnknownDay) {
			http.Error(w, "unknown day", http.StatusBadRequest)
			return
		}
		log.Errorf("day accessible %s/%s [%d]: %s", planType, day, userID, err)
		http.Error(w, "check day failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DayAccessResponse{
		Day:        day,
		Accessible: accessible,
		WeekStart:  strings.ToLower(weekStart.String()),
	}, http.StatusOK)
}

func (h *Handler) HandleToggleItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.toggle")
	defer span.End()

	userID, planType, ok := requestParams(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	day := strings.ToLower(vars["day"])
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, "invalid item index", http.StatusBadRequest)
		return
	}

	plan, err := h.service.ToggleItem(ctx, userID, planType, day, index, h.location(ctx, r, userID))
	if err != nil {
		switch {
		case errors.Is(err, ErrDayLocked):
			http.Error(w, "this day is not available yet", http.StatusForbidden)
		case errors.Is(err, ErrUnknownDay):
			http.Error(w, "unknown day", http.StatusBadRequest)
		case errors.Is(err, ErrPlanNotFound), errors.Is(err, ErrItemNotFound):
			http.Error(w, "plan item not found", http.StatusNotFound)
		default:
			log.Errorf("toggle %s/%s/%d [%d]: %s", planType, day, index, userID, err)
			http.Error(w, "toggle item failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) HandleRenewCheck(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.renewCheck")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	outcomes, err := h.service.CheckAndRenew(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			http.Error(w, "complete your profile first", http.StatusPreconditionFailed)
			return
		}
		log.Errorf("renew check [%d]: %s", userID, err)
		http.Error(w, "renew check failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, outcomes, http.StatusOK)
}
