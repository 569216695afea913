// Package web provides the web server of the spesometro panel: HTTP/HTTPS
// serving, routing, role gates, the websocket hub and background job
// scheduling.
package web

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/domysh/spesometro/config"
	"github.com/domysh/spesometro/database/model"
	"github.com/domysh/spesometro/logger"
	"github.com/domysh/spesometro/util/common"
	"github.com/domysh/spesometro/web/controller"
	"github.com/domysh/spesometro/web/job"
	"github.com/domysh/spesometro/web/middleware"
	"github.com/domysh/spesometro/web/service"
	"github.com/domysh/spesometro/web/websocket"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server represents the panel web server with its controllers, services,
// websocket hub and scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	auth    *controller.AuthController
	board   *controller.BoardController
	user    *controller.UserController
	setting *controller.SettingController
	server  *controller.ServerController
	ws      *controller.WebSocketController

	settingService service.SettingService

	hub  *websocket.Hub
	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes gin, registers middleware, role-gated route
// groups and controllers, and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	webDomain, err := s.settingService.GetWebDomain()
	if err != nil {
		return nil, err
	}
	if webDomain != "" {
		engine.Use(middleware.DomainValidatorMiddleware(webDomain))
	}

	basePath, err := s.settingService.GetBasePath()
	if err != nil {
		return nil, err
	}

	// gzip, excluding the websocket endpoint
	engine.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{basePath + "sock"}),
	))

	// Real-time channel: public connect, update events only
	sock := engine.Group(basePath)
	s.ws = controller.NewWebSocketController(sock, s.hub)

	// API groups by required tier
	api := engine.Group(basePath + "api")
	api.Use(middleware.TokenResolver())

	s.auth = controller.NewAuthController(api)

	guestApi := api.Group("", middleware.RequireRole(model.RoleGuest))
	editorApi := api.Group("", middleware.RequireRole(model.RoleEditor))
	adminApi := api.Group("", middleware.RequireRole(model.RoleAdmin))

	s.board = controller.NewBoardController(guestApi, editorApi)
	s.user = controller.NewUserController(adminApi)
	s.setting = controller.NewSettingController(adminApi)
	s.server = controller.NewServerController(adminApi)

	// 404 handler
	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewCheckpointJob())
	s.cron.AddJob("@daily", job.NewClearLogsJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	loc, err := s.settingService.GetTimeLocation()
	if err != nil {
		return err
	}
	s.cron = cron.New(cron.WithLocation(loc), cron.WithSeconds())
	s.cron.Start()

	s.hub = websocket.NewHub()
	go s.hub.Run()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	certFile, err := s.settingService.GetCertFile()
	if err != nil {
		return err
	}
	keyFile, err := s.settingService.GetKeyFile()
	if err != nil {
		return err
	}
	listen, err := s.settingService.GetListen()
	if err != nil {
		return err
	}
	port, err := s.settingService.GetPort()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(listen, strconv.Itoa(port))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	if certFile != "" || keyFile != "" {
		if cert, err := tls.LoadX509KeyPair(certFile, keyFile); err == nil {
			cfg := &tls.Config{Certificates: []tls.Certificate{cert}}
			listener = tls.NewListener(listener, cfg)
			logger.Info("Web server running HTTPS on", listener.Addr())
		} else {
			logger.Error("Error loading certificates:", err)
			logger.Info("Web server running HTTP on", listener.Addr())
		}
	} else {
		logger.Info("Web server running HTTP on", listener.Addr())
	}

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	// Tell already connected clients to re-fetch after a restart
	s.hub.Broadcast(nil)

	return nil
}

// Stop gracefully shuts down the web server, hub and cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.hub != nil {
		s.hub.Stop()
	}
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }

// GetCron returns the server's cron scheduler instance.
func (s *Server) GetCron() *cron.Cron { return s.cron }

// GetWSHub returns the server's websocket hub.
func (s *Server) GetWSHub() any { return s.hub }
