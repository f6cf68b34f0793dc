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
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/fiufit/trainings/internal/auth"
	"github.com/fiufit/trainings/internal/catalog"
	"github.com/fiufit/trainings/internal/config"
	"github.com/fiufit/trainings/internal/db"
	"github.com/fiufit/trainings/internal/media"
	"github.com/fiufit/trainings/internal/middleware"
	"github.com/fiufit/trainings/internal/misc"
	"github.com/fiufit/trainings/internal/telemetry/metrics"
	"github.com/fiufit/trainings/internal/telemetry/tracing"
	"github.com/fiufit/trainings/internal/trainings"
	"github.com/fiufit/trainings/internal/users"
	"github.com/fiufit/trainings/pkg"
)

const serviceName = "trainings-service"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	startedAt         time.Time

	config     *config.Config
	dbPool     *pgxpool.Pool
	mediaStore media.Store
	authorizer *auth.Authorizer

	// nil when redis is not configured, rate limiting is off then
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config *config.Config
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(cfg.TracingEnabled, serviceName)
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DSN:            cfg.DB.DSN(),
		MaxConns:       cfg.DB.MaxConns,
		TracingEnabled: cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if cfg.DB.CreateStructures {
		if err := db.CreateStructures(ctx, dbPool); err != nil {
			return nil, fmt.Errorf("create db structures: %w", err)
		}
		if err := catalog.NewCatalog(catalog.NewRepo(dbPool)).Seed(ctx); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		log.Debugln("db structures created and catalog seeded")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.DB.Name},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fiufit", "trainings", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	mediaStore, err := media.NewStore(ctx, cfg.Media)
	if err != nil {
		return nil, fmt.Errorf("new media store: %w", err)
	}

	authorizer := auth.NewAuthorizer(
		auth.NewClient(cfg.Auth.Host, cfg.Auth.Timeout),
		auth.NewPolicy(cfg.Auth.CreatorRoles),
		cfg.Auth.ValidateCredentials,
	)

	s := &Server{
		startedAt:  time.Now(),
		config:     cfg,
		dbPool:     dbPool,
		mediaStore: mediaStore,
		authorizer: authorizer,

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if cfg.Redis.Host == "" {
		log.Warnln("redis host not set, rate limiting disabled")
		return s, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0, // use default DB
	})
	if cfg.TracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	s.redisClient = rdb
	s.rateLimiter = redis_rate.NewLimiter(rdb)

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("trainings-router"))

	catalogService := catalog.NewCatalog(catalog.NewRepo(s.dbPool))

	// reference listings and healthcheck go before /trainings/{id}
	misc.NewHandler(s.startedAt).SetupRoutes(r)
	catalog.NewHandler(catalogService).SetupRoutes(r)

	trainingsService := trainings.NewService(
		trainings.NewRepo(s.dbPool),
		catalogService,
		s.mediaStore,
		s.metricsManager,
	)
	trainingsHandler := trainings.NewHandler(trainingsService, s.authorizer)
	trainingsHandler.SetupRoutes(r, s.rateLimiter, s.metricsManager, s.config.Redis.RateLimitPerMin)

	usersHandler := users.NewHandler(users.NewLedger(s.dbPool), trainingsService, s.metricsManager)
	usersHandler.SetupRoutes(r, s.rateLimiter, s.config.Redis.RateLimitPerMin)

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteDetail(w, "Not Found", http.StatusNotFound)
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

// rootHandler puts CORS in front of the router, so preflights never reach route matching.
func (s *Server) rootHandler() (http.Handler, error) {
	router, err := s.routerSetup()
	if err != nil {
		return nil, err
	}
	return middleware.Cors(s.config.AllowedOrigins)(router), nil
}

func (s *Server) Serve(host string, port int) {
	handler, err := s.rootHandler()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      handler,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, strconv.Itoa(s.config.PrometheusMetricsPort))
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
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the pools they use go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
