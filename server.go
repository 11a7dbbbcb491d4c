package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/alerts_backend/config"
	"bitbucket.org/mmdatafocus/alerts_backend/drafts"
	"bitbucket.org/mmdatafocus/alerts_backend/provider"
	"bitbucket.org/mmdatafocus/alerts_backend/store"
	"bitbucket.org/mmdatafocus/alerts_backend/utils"
)

const defaultPort = "8080"

// providerHolder is published once dependencies are ready; until then the
// readiness gate returns 503 for app endpoints. The server accepts requests
// before the provider exists, so handler goroutines read it concurrently
// with main's write: the atomic pointer makes that publication safe.
var providerHolder atomic.Pointer[provider.Provider]

func dataProvider() provider.Provider {
	if p := providerHolder.Load(); p != nil {
		return *p
	}
	return nil
}

func setDataProvider(p provider.Provider) {
	providerHolder.Store(&p)
}

func splitAndTrim(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// customErrorLogger logs only requests that ended with an error status.
func customErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if c.Writer.Status() < http.StatusBadRequest {
			return
		}
		cid, _ := utils.GetCorrelationIdFromContext(c.Request.Context())
		logger.WithFields(logrus.Fields{
			"status":         c.Writer.Status(),
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"latency_ms":     time.Since(start).Milliseconds(),
			"correlation_id": cid,
			"errors":         c.Errors.String(),
		}).Error("request failed")
	}
}

// newRouter assembles the gin engine: context middleware, readiness gate,
// CORS, and all route groups. Handlers resolve the provider per request via
// dataProvider().
func newRouter(logger *logrus.Logger) *gin.Engine {
	r := gin.New()

	// Correlation IDs: generate once per request and attach to context. The
	// x-actor header names the staff member for approval bookkeeping.
	r.Use(func(c *gin.Context) {
		cid := c.GetHeader("x-correlation-id")
		if cid == "" {
			cid = uuid.NewString()
		}
		ctx := utils.SetCorrelationIdInContext(c.Request.Context(), cid)
		if actor := c.GetHeader("x-actor"); actor != "" {
			ctx = utils.SetActorInContext(ctx, actor)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	r.Use(func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		if dataProvider() == nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Next()
	})

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	corsConfig := cors.DefaultConfig()
	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production") {
		if allowedOrigins == "" {
			// Deny all if not configured in production.
			corsConfig.AllowOrigins = []string{}
		} else {
			corsConfig.AllowOrigins = splitAndTrim(allowedOrigins)
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "x-actor", "x-correlation-id")
	corsConfig.AddExposeHeaders("Content-Length")

	r.Use(cors.New(corsConfig))
	r.Use(customErrorLogger(logger))
	r.Use(gin.Recovery())

	registerAlertRoutes(r)
	registerRuleRoutes(r)
	registerReminderRoutes(r)
	registerClientRoutes(r)

	return r
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	logger := config.GetLogger()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	// Start the HTTP server ASAP; until Redis is ready the readiness gate
	// returns 503 for app endpoints.
	r := newRouter(logger)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()

	// Connect dependencies after the port is open.
	var dataStore store.Store
	if strings.EqualFold(strings.TrimSpace(os.Getenv("STORE_BACKEND")), "memory") {
		logger.Warn("STORE_BACKEND=memory; persisted data will not survive restarts")
		dataStore = store.NewMemoryStore()
	} else {
		config.ConnectRedisWithRetry(sigCtx)
		if config.GetRedisDB() == nil {
			logger.Error("shutdown requested before redis became available")
			return
		}
		dataStore = store.NewRedisStore(config.GetRedisDB(), config.GetRedisLock())
	}

	var renderer drafts.Renderer = drafts.NewTemplateRenderer()
	if config.LiveDraftsEnabled() {
		logger.Warn("ENABLE_LIVE_DRAFTS set but no live renderer is configured; using templates")
	}

	setDataProvider(provider.NewLocalProvider(dataStore, renderer, logger))

	logger.WithFields(logrus.Fields{
		"port": port,
	}).Info("alerts backend listening")

	select {
	case <-sigCtx.Done():
		// graceful shutdown below
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.LogError(logger, "Server.go", "main", "ListenAndServe", nil, err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.LogError(logger, "Server.go", "main", "Shutdown", nil, err)
	}
}
