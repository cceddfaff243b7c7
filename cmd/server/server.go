package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/auth"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/cache"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/eventengine"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/features/catalog"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/features/category"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/features/customorder"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/features/review"
	"github.com/atelier-arts/atelier-e-commerce-backend/internal/middlewares"
	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"
	"golang.org/x/sync/errgroup"
)

type ServerConfig struct {
	Addr         string
	DB           *sql.DB
	Cache        *cache.RedisClient // nil runs the catalog without a snapshot cache
	TokenManager *auth.TokenService
}

type server struct {
	*ServerConfig

	doneCh        chan struct{}   // used to signal internal go routines to shutdown
	internalSrvWG *sync.WaitGroup // used to wait for all internal go routines within individual routes to finish before shutting down the server.

	eventEngine eventengine.SubscribeRegisterPublisher
	srv         *http.Server
}

func NewServer(serverConfig *ServerConfig) *server {
	srv := &server{
		ServerConfig:  serverConfig,
		doneCh:        make(chan struct{}),
		internalSrvWG: &sync.WaitGroup{},
	}

	return srv
}

func (s *server) Run() {
	router := chi.NewRouter()

	// strip trailing slashes at the end of the url
	// e.g. /products/1/ -> /products/1
	router.Use(chimiddleware.StripSlashes)

	s.prep()

	router.Mount("/api/v1", s.v1Router()) // api version 1 subrouter

	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.Addr),
		Handler: router,
	}

	// start server and listen for [os.Signal] signals to graceful shutdown server.
	s.listenAndServe()
}

func (s *server) listenAndServe() {
	shutdownCtx, shutdownCancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer shutdownCancel()

	errGrp, shutdownCtx := errgroup.WithContext(shutdownCtx)

	errGrp.Go(
		func() error {
			log.Printf("server started and is listening at port %s...\n", s.Addr)

			if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) && err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}

			return nil
		},
	)

	errGrp.Go(
		func() error {
			<-shutdownCtx.Done() // block and listen shutdown signals
			log.Println("hold and wait, server is gracefully shutting down...")

			ctx, cancel := context.WithTimeout(
				context.Background(),
				(20 * time.Second),
			)
			defer cancel()

			log.Println("server has stopped receiving new requests")
			log.Println("waiting for all pending requests to finish....")
			if err := s.srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("server failed shutdown gracefully: %w", err)
			}

			return nil
		},
	)

	if err := errGrp.Wait(); err != nil {
		log.Fatal(err.Error())
	}
	log.Println("all pending requests completed!")

	log.Println("waiting for all internal pending go routines....")
	close(s.doneCh)
	s.internalSrvWG.Wait()
	log.Println("all internal go routines are done")

	log.Println("closing other resources...")
	if err := s.DB.Close(); err != nil {
		log.Println("server failed to close db for shutdown")
	}
	if s.Cache != nil {
		if err := s.Cache.Close(); err != nil {
			log.Println("server failed to close redis for shutdown")
		}
	}

	log.Println("server has been gracefully shutdown")
	os.Exit(0)
}

// prep prepares server dependencies needed for server to function
func (s *server) prep() {
	s.eventEngine = eventengine.NewEventEngine(
		&eventengine.EventEngineConfig{
			DoneCh:        s.doneCh,
			InternalSrvWG: s.internalSrvWG,
		},
	)
}

func (s *server) v1Router() *chi.Mux {
	r := chi.NewRouter()

	// health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// middleware
	middleware := middlewares.NewMiddleware(
		s.TokenManager,
	)

	// category feature
	categoryStore := category.NewStore(s.DB)
	categoryService := category.NewService(categoryStore)
	categoryHandler := category.NewHandler(
		categoryService,
		middleware,
	)
	categoryHandler.RegisterRoutes(r)

	// review feature; its service registers the review events the catalog
	// subscribes to, so it is constructed before the catalog.
	reviewStore := review.NewStore(s.DB)
	reviewService := review.NewService(
		reviewStore,
		s.eventEngine,
	)
	reviewHandler := review.NewHandler(
		reviewService,
		middleware,
	)
	reviewHandler.RegisterRoutes(r)

	// catalog feature
	var snapshotCache catalog.SnapshotCache
	if s.Cache != nil {
		snapshotCache = s.Cache
	}

	catalogStore := catalog.NewStore(s.DB)
	catalogService := catalog.NewService(
		catalogStore,
		reviewService,
		categoryService,
		snapshotCache,
		s.eventEngine,
	)
	catalogHandler := catalog.NewHandler(
		catalogService,
		middleware,
	)
	catalogHandler.RegisterRoutes(r)

	catalog.NewHandlerEvents(
		&catalog.HandlerEventsConfig{
			DoneCh:        s.doneCh,
			InternalSrvWG: s.internalSrvWG,
			EventEngine:   s.eventEngine,
			Service:       catalogService,
		},
	)

	// custom order feature
	customOrderStore := customorder.NewStore(s.DB)
	customOrderService := customorder.NewService(customOrderStore)
	customOrderHandler := customorder.NewHandler(
		customOrderService,
		middleware,
	)
	customOrderHandler.RegisterRoutes(r)

	return r
}
