package progress

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/plans"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	Summary(ctx context.Context, userID int, planType plans.PlanType) (*Summary, error)
	History(ctx context.Context, userID int, planType plans.PlanType) ([]WeekCompliance, error)
	Dashboard(ctx context.Context, userID int) (*Dashboard, error)
}

type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.summary")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	planType, err := plans.ParsePlanType(mux.Vars(r)["type"])
	if err != nil {
		http.Error(w, "unknown plan type", http.StatusBadRequest)
		return
	}

	summary, err := h.service.Summary(ctx, userID, planType)
	if err != nil {
		if errors.Is(err, plans.ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("progress summary %s [%d]: %s", planType, userID, err)
		http.Error(w, "get progress failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.history")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	planType, err := plans.ParsePlanType(mux.Vars(r)["type"])
	if err != nil {
		http.Error(w, "unknown plan type", http.StatusBadRequest)
		return
	}

	history, err := h.service.History(ctx, userID, planType)
	if err != nil {
		log.Errorf("progress history %s [%d]: %s", planType, userID, err)
		http.Error(w, "get progress history failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, history, http.StatusOK)
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.dashboard")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	dashboard, err := h.service.Dashboard(ctx, userID)
	if err != nil {
		log.Errorf("dashboard [%d]: %s", userID, err)
		http.Error(w, "get dashboard failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, dashboard, http.StatusOK)
}
