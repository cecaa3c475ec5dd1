package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"

	"storefront/internal/apiclient"
	"storefront/internal/config"
	"storefront/internal/format"
	"storefront/internal/handlers"
	"storefront/internal/logger"
	"storefront/internal/middleware"
	"storefront/internal/telemetry"
)

func main() {
	if err := config.Load(); err != nil {
		logger.Log.WithError(err).Fatal("config load failed")
	}
	cfg := config.AppEnv

	if err := logger.Init(logger.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		Output:     cfg.LogOutput,
		File:       cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
	}); err != nil {
		logger.Log.WithError(err).Fatal("logger init failed")
	}
	log := logger.WithArea("MAIN")

	shutdownTracing, err := telemetry.Setup(cfg.OTelStdout)
	if err != nil {
		log.WithError(err).Fatal("telemetry setup failed")
	}

	remote := apiclient.New(apiclient.Options{
		BaseURL:    cfg.APIBaseURL,
		APIPath:    cfg.APIPath,
		AdminToken: cfg.APIAdminToken,
		Timeout:    cfg.APITimeout,
		HTTPClient: telemetry.NewHTTPClient(cfg.APITimeout),
	})
	log.WithField("api", cfg.APIBaseURL+"/"+cfg.APIPath).Info("commerce API configured")

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog())
	r.Use(handlers.FlashSessions(sessionKey(cfg)))
	r.SetFuncMap(handlers.TemplateFuncs(format.LoadZone(cfg.DisplayTimezone)))
	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/public", "./public")

	r.GET("/", handlers.Storefront(remote))
	r.POST("/cart/items", handlers.AddCartItem(remote))
	r.POST("/cart/items/:id/quantity", handlers.ChangeCartQuantity(remote))
	r.POST("/cart/items/:id/delete", handlers.RemoveCartItem(remote))
	r.POST("/cart/clear", handlers.ClearCart(remote))
	r.POST("/orders", handlers.SubmitOrder(remote))

	if !cfg.AdminEnabled() {
		log.Warn("JWT_SECRET or ADMIN_PASSWORD_HASH not set, dashboard login is disabled")
	}

	r.GET("/admin", handlers.AdminHome())
	r.GET("/admin/login", handlers.AdminLoginPage)
	r.POST("/admin/login", handlers.AdminLogin(cfg.JWTSecret, cfg.AdminPasswordHash, cfg.AccessTokenTTL))
	r.POST("/admin/logout", handlers.AdminLogout())

	pages := r.Group("/admin")
	pages.Use(middleware.AdminPageAuth(cfg.JWTSecret))
	{
		pages.GET("/orders", handlers.AdminOrdersPage(remote))
		pages.POST("/orders/:id/paid", handlers.ToggleOrderPaid(remote))
		pages.POST("/orders/:id/delete", handlers.DeleteOrder(remote))
		pages.POST("/orders/delete-all", handlers.DeleteAllOrders(remote))
	}

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(cfg.JWTSecret))
	{
		admin.GET("/chart", handlers.RevenueChart(remote))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           telemetry.Handler(r, "storefront"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.WithError(err).Error("tracer shutdown failed")
	}
}

// sessionKey signs the flash cookie. Without a configured secret a random
// key is used, so flashes do not survive a restart.
func sessionKey(cfg config.Config) []byte {
	if cfg.SessionSecret != "" {
		return []byte(cfg.SessionSecret)
	}
	if cfg.JWTSecret != "" {
		return []byte(cfg.JWTSecret)
	}
	logger.WithArea("MAIN").Warn("SESSION_SECRET and JWT_SECRET not set, using a random session key")
	return securecookie.GenerateRandomKey(32)
}
