package myhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"ride-dispatch/internal/config"
	"ride-dispatch/internal/dispatch-service/adapters/driven/bm"
	"ride-dispatch/internal/dispatch-service/adapters/driven/db"
	"ride-dispatch/internal/dispatch-service/adapters/driver/myhttp/handle"
	"ride-dispatch/internal/dispatch-service/adapters/driver/myhttp/middleware"
	"ride-dispatch/internal/dispatch-service/adapters/driver/myhttp/ws"
	"ride-dispatch/internal/dispatch-service/core/ports"
	"ride-dispatch/internal/dispatch-service/core/services"
	"ride-dispatch/internal/mylogger"
)

type Server struct {
	mux    *http.ServeMux
	cfg    *config.Config
	srv    *http.Server
	mylog  mylogger.Logger
	db     *db.DB
	mb     ports.ITripEventsBroker
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
	wg     sync.WaitGroup
}

func NewServer(ctx, appCtx context.Context, mylog mylogger.Logger, cfg *config.Config) *Server {
	s := &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		mux:    http.NewServeMux(),
	}

	return s
}

// Run initializes routes and starts listening. It returns when the server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	// Initialize database connection
	db, err := db.New(s.ctx, s.cfg.DB, mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	mylog.Info("Successful database connection")

	// Initialize RabbitMQ connection
	mb, err := bm.New(s.appCtx, *s.cfg.RabbitMq, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	s.mb = mb
	mylog.Info("Successful message broker connection")

	// Configure routes and handlers
	s.Configure()

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%v", s.cfg.Srv.DispatchServicePort),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog = mylog.WithGroup("details").With("port", s.cfg.Srv.DispatchServicePort)

	mylog.Info("server is running")
	return s.startHTTPServer()
}

// Stop provides a programmatic shutdown. Accepts a context for timeout control.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Info("Shutting down HTTP server...")

	s.wg.Wait()

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, handle.WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.mb != nil {
		if err := s.mb.Close(); err != nil {
			s.mylog.Error("Failed to close message broker", err)
		} else {
			s.mylog.Info("Message broker closed")
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.mylog.Error("Failed to close database", err)
			return fmt.Errorf("db close: %w", err)
		}
		s.mylog.Info("Database closed")
	}

	s.mylog.Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Configure wires repositories, services and handlers, then registers routes.
func (s *Server) Configure() {
	// Repositories
	driverRepo := db.NewDriverRepo(s.db)
	tripsRepo := db.NewTripsRepo(s.db)
	billsRepo := db.NewBillsRepo(s.db)

	// websocket trip feed
	dispatcher := ws.NewDispatcher(s.mylog)

	// services
	driverService := services.NewDriverService(s.appCtx, s.cfg, driverRepo, s.mylog)
	tripsService := services.NewTripsService(s.appCtx, s.mylog, tripsRepo, s.mb, dispatcher)
	billsService := services.NewBillsService(s.appCtx, s.mylog, billsRepo)

	// handlers
	driverHandler := handle.NewDriverHandler(driverService, s.mylog)
	tripsHandler := handle.NewTripsHandler(tripsService, s.mylog)
	billsHandler := handle.NewBillsHandler(billsService, s.mylog)

	authMiddleware := middleware.NewAuthMiddleware(s.cfg.App.JwtSecret)

	// driver routes
	s.mux.Handle("POST /api/drivers/register", driverHandler.Register())
	s.mux.Handle("POST /api/drivers/check-exists", driverHandler.CheckExists())
	s.mux.Handle("POST /login", driverHandler.Login())
	s.mux.Handle("GET /api/drivers/status/{email}", driverHandler.Status())
	s.mux.Handle("GET /api/drivers/{id}", driverHandler.GetByID())
	s.mux.Handle("PUT /api/drivers/{id}", driverHandler.Update())
	s.mux.Handle("GET /api/drivers", driverHandler.List())
	s.mux.Handle("GET /api/all-drivers", driverHandler.ListAll())

	// trip routes
	s.mux.Handle("POST /api/trips/add-trips", tripsHandler.Create())
	s.mux.Handle("GET /api/trips", tripsHandler.List())
	s.mux.Handle("GET /api/trips/accepted/{driverEmail}", tripsHandler.AcceptedByDriver())
	s.mux.Handle("GET /api/trips/wip/{driverEmail}", tripsHandler.InProgressByDriver())
	s.mux.Handle("GET /api/trips/status/{email}", tripsHandler.StatusByDriver())
	s.mux.Handle("GET /api/trips/{id}", tripsHandler.GetByID())
	s.mux.Handle("PUT /api/trips/assign-driver", tripsHandler.AssignDriver())
	s.mux.Handle("PUT /api/trips/update-field", tripsHandler.UpdateField())
	s.mux.Handle("PUT /api/trips/{id}/accept", tripsHandler.Accept())
	s.mux.Handle("PUT /api/trips/{id}/start", tripsHandler.Start())
	s.mux.Handle("PUT /api/trips/{id}/complete", tripsHandler.Complete())

	// bill routes
	s.mux.Handle("POST /api/bills", billsHandler.Create())
	s.mux.Handle("GET /api/bills/get/{driverEmail}", billsHandler.ListByDriver())
	s.mux.Handle("GET /api/all-bills", billsHandler.ListAll())

	// websocket routes
	s.mux.Handle("GET /ws/drivers/{email}", authMiddleware.Wrap(dispatcher.FeedHandler()))
}
