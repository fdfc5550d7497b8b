package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/fitplanner/internal/ai"
	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/config"
	"github.com/2beens/fitplanner/internal/db"
	"github.com/2beens/fitplanner/internal/geoip"
	"github.com/2beens/fitplanner/internal/middleware"
	"github.com/2beens/fitplanner/internal/misc"
	"github.com/2beens/fitplanner/internal/notify"
	"github.com/2beens/fitplanner/internal/plans"
	"github.com/2beens/fitplanner/internal/profile"
	"github.com/2beens/fitplanner/internal/progress"
	"github.com/2beens/fitplanner/internal/scheduler"
	"github.com/2beens/fitplanner/internal/settings"
	"github.com/2beens/fitplanner/internal/store"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

const progressCacheSizeMegabytes = 16

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	geoIp       *geoip.Api

	tokens       *auth.TokenIssuer
	sessions     *auth.SessionStore
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	profilesRepo *profile.Repo
	plansRepo    *plans.Repo
	plansService *plans.Service
	settingsRepo *settings.Repo
	notifsRepo   *settings.NotificationsRepo
	progress     *progress.Service
	storeService *store.Service
	scheduler    *scheduler.Scheduler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     *config.Secrets
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	secrets := params.Secrets

	if missing := secrets.Missing(); len(missing) > 0 {
		log.Warnf("missing secrets, some features will be degraded: %v", missing)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     secrets.DBPassword,
		TracingEnabled: secrets.HoneycombEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.EnsureSchema(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("ensure db schema: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus("fitplanner", params.VersionInfo, pgxpoolCollector)
	metricsManager := metrics.NewManager("fitplanner", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, secrets.OtelServiceName, rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}

	mailer := notify.NewMailer(secrets.ResendAPIKey, cfg.EmailFrom, cfg.AppBaseURL, metricsManager)

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	tokens := auth.NewTokenIssuer(secrets.JWTSecret, sessionTTL)
	sessions := auth.NewSessionStore(sessionTTL, rdb)
	usersRepo := auth.NewUsersRepo(dbPool)

	profilesRepo := profile.NewRepo(dbPool)
	plansRepo := plans.NewRepo(dbPool)
	settingsRepo := settings.NewRepo(dbPool)
	notifsRepo := settings.NewNotificationsRepo(dbPool)

	aiHttpClient := ai.NewHTTPClient(time.Duration(cfg.AITimeoutSeconds) * time.Second)
	var strategies []ai.Strategy
	if cfg.AIRelayURL != "" {
		strategies = append(strategies, ai.NewRelayClient(cfg.AIRelayURL, secrets.AIRelaySecret, cfg.AIModel, aiHttpClient))
	}
	strategies = append(strategies, ai.NewCompletionClient(cfg.AIBaseURL, secrets.AIAPIKey, cfg.AIModel, aiHttpClient))
	builder := plans.NewPlanBuilder(ai.NewFallbackGenerator(metricsManager, strategies...))

	renewal := plans.NewRenewalService(
		plansRepo,
		builder,
		plans.NewRedisLocker(rdb, plans.RenewalLockTTL),
		notify.NewRenewalNotifier(notifsRepo, settingsRepo, usersRepo, mailer),
		metricsManager,
		cfg.DefaultTotalWeeks,
	)
	plansService := plans.NewService(plansRepo, profilesRepo, builder, renewal, metricsManager)

	s := &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		geoIp:       geoip.NewApi(secrets.IpInfoAPIKey, tracedHttpClient, rdb),
		versionInfo: params.VersionInfo,

		tokens:       tokens,
		sessions:     sessions,
		loginChecker: auth.NewLoginChecker(tokens, sessions),
		authService:  auth.NewService(usersRepo, sessions, tokens, mailer, rdb),

		profilesRepo: profilesRepo,
		plansRepo:    plansRepo,
		plansService: plansService,
		settingsRepo: settingsRepo,
		notifsRepo:   notifsRepo,
		progress: progress.NewService(
			plansRepo,
			profilesRepo,
			progressCacheSizeMegabytes,
			cfg.ProgressCacheTTLSeconds,
		),
		storeService: store.NewService(
			store.NewCartStore(rdb),
			store.NewOrdersRepo(dbPool),
			metricsManager,
			time.Duration(cfg.CheckoutDelayMillis)*time.Millisecond,
		),
		scheduler: scheduler.NewScheduler(
			plansRepo,
			plansService,
			sessions,
			metricsManager,
			cfg.RenewalCron,
			cfg.SessionCleanupCron,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	loginLimited := func(name string, h http.HandlerFunc) http.Handler {
		return middleware.RateLimit(reqRateLimiter, name, s.config.LoginRateLimitAllowedPerMin, s.metricsManager)(h)
	}

	miscHandler := misc.NewHandler(s.geoIp, s.versionInfo)
	miscHandler.SetupRoutes(r)

	authHandler := auth.NewHandler(s.authService)
	r.Handle("/a/register", loginLimited("register", authHandler.HandleRegister)).Methods("POST", "OPTIONS").Name("register")
	r.Handle("/a/login", loginLimited("login", authHandler.HandleLogin)).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/a/logout", authHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	r.HandleFunc("/a/me", authHandler.HandleMe).Methods("GET", "OPTIONS").Name("me")
	r.HandleFunc("/a/details", authHandler.HandleUpdateDetails).Methods("PUT", "OPTIONS").Name("update-details")
	r.HandleFunc("/a/password", authHandler.HandleUpdatePassword).Methods("PUT", "OPTIONS").Name("update-password")
	r.Handle("/a/password/forgot", loginLimited("forgot-password", authHandler.HandleForgotPassword)).Methods("POST", "OPTIONS").Name("forgot-password")
	r.HandleFunc("/a/password/reset", authHandler.HandleResetPassword).Methods("POST", "OPTIONS").Name("reset-password")

	profileHandler := profile.NewHandler(s.profilesRepo)
	r.HandleFunc("/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", profileHandler.HandleSave).Methods("PUT", "OPTIONS").Name("save-profile")
	r.HandleFunc("/profile", profileHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-profile")
	r.HandleFunc("/profile/bmi", profileHandler.HandleBMI).Methods("GET", "OPTIONS").Name("profile-bmi")

	plansHandler := plans.NewHandler(
		s.plansService,
		geoip.NewLocationResolver(s.settingsRepo, s.geoIp),
	)
	generateLimited := middleware.RateLimit(
		reqRateLimiter,
		"generate-plan",
		s.config.GenerateRateLimitAllowedPerMin,
		s.metricsManager,
	)(http.HandlerFunc(plansHandler.HandleGenerate))
	r.HandleFunc("/plans/renew/check", plansHandler.HandleRenewCheck).Methods("POST", "OPTIONS").Name("renew-check")
	r.HandleFunc("/plans/{type}", plansHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/plans/{type}", plansHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-plan")
	r.Handle("/plans/{type}/generate", generateLimited).Methods("POST", "OPTIONS").Name("generate-plan")
	r.HandleFunc("/plans/{type}/metadata", plansHandler.HandleMetadata).Methods("GET", "OPTIONS").Name("plan-metadata")
	r.HandleFunc("/plans/{type}/archive", plansHandler.HandleArchive).Methods("GET", "OPTIONS").Name("plan-archive")
	r.HandleFunc("/plans/{type}/days/{day}/accessible", plansHandler.HandleDayAccessible).Methods("GET", "OPTIONS").Name("plan-day-accessible")
	r.HandleFunc("/plans/{type}/days/{day}/items/{index}/toggle", plansHandler.HandleToggleItem).Methods("POST", "OPTIONS").Name("plan-toggle-item")

	progressHandler := progress.NewHandler(s.progress)
	r.HandleFunc("/progress/{type}", progressHandler.HandleSummary).Methods("GET", "OPTIONS").Name("progress-summary")
	r.HandleFunc("/progress/{type}/history", progressHandler.HandleHistory).Methods("GET", "OPTIONS").Name("progress-history")
	r.HandleFunc("/dashboard", progressHandler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")

	storeHandler := store.NewHandler(s.storeService)
	r.HandleFunc("/store/products", storeHandler.HandleProducts).Methods("GET", "OPTIONS").Name("products")
	r.HandleFunc("/store/products/{id}", storeHandler.HandleProduct).Methods("GET", "OPTIONS").Name("product")
	r.HandleFunc("/store/cart", storeHandler.HandleGetCart).Methods("GET", "OPTIONS").Name("get-cart")
	r.HandleFunc("/store/cart", storeHandler.HandleClearCart).Methods("DELETE", "OPTIONS").Name("clear-cart")
	r.HandleFunc("/store/cart/items", storeHandler.HandleAddItem).Methods("POST", "OPTIONS").Name("add-cart-item")
	r.HandleFunc("/store/cart/items/{productId}", storeHandler.HandleRemoveItem).Methods("DELETE", "OPTIONS").Name("remove-cart-item")
	r.HandleFunc("/store/checkout", storeHandler.HandleCheckout).Methods("POST", "OPTIONS").Name("checkout")
	r.HandleFunc("/store/orders", storeHandler.HandleOrders).Methods("GET", "OPTIONS").Name("orders")

	settingsHandler := settings.NewHandler(s.settingsRepo, s.notifsRepo)
	r.HandleFunc("/settings", settingsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-settings")
	r.HandleFunc("/settings", settingsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-settings")
	r.HandleFunc("/notifications", settingsHandler.HandleNotifications).Methods("GET", "OPTIONS").Name("notifications")
	r.HandleFunc("/notifications/read", settingsHandler.HandleMarkAllRead).Methods("POST", "OPTIONS").Name("notifications-read-all")
	r.HandleFunc("/notifications/{id}/read", settingsHandler.HandleMarkRead).Methods("POST", "OPTIONS").Name("notification-read")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest(middleware.DefaultMaxRequestBodyBytes))

	return r, nil
}

func (s *Server) Serve(host string, port int) error {
	router, err := s.routerSetup()
	if err != nil {
		return fmt.Errorf("setup router: %w", err)
	}

	if err := s.scheduler.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler: router,
		Addr:    ipAndPort,
		// plan generation waits on the completion API
		WriteTimeout: time.Duration(s.config.AITimeoutSeconds)*time.Second + time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{Registry: s.promRegistry},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
	return nil
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var errs error
	if err := s.scheduler.Stop(ctx); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("stop scheduler: %w", err))
	}
	log.Debugln("scheduler stopped")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("shutdown http server: %w", err))
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("shutdown metrics server: %w", err))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("close redis client: %w", err))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	return errs
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
