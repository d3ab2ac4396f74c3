// Package httpapi wires the HTTP transport (Gin) to the application service,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, structured logging, panic recovery, metrics,
// compression, CORS, and security headers.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tbourn/go-portfolio-backend/internal/config"
	"github.com/tbourn/go-portfolio-backend/internal/http/handlers"
	"github.com/tbourn/go-portfolio-backend/internal/http/middleware"
	"github.com/tbourn/go-portfolio-backend/internal/mail"
	"github.com/tbourn/go-portfolio-backend/internal/services"
	"github.com/tbourn/go-portfolio-backend/internal/web"
)

// pageCSP is relaxed enough for the inline-free templates in internal/web
// while pinning every source to the site itself.
const pageCSP = "default-src 'self'; img-src 'self' data:; style-src 'self'; script-src 'self'"

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. The database handle and the mailer are long-lived process-wide
// dependencies; each request acquires its connection from the pool and
// releases it on every exit path.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression for the HTML/asset routes
//  7. Metrics
//  8. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, mailer mail.Mailer, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (64 KiB: a contact form, not an upload API)
	r.Use(limitBody(64 << 10))

	// 6) Compress HTML pages and static assets
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) CORS posture (allow all when no allowlist is configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:            cfg.Security.EnableHSTS,
		HSTSMaxAge:            cfg.Security.HSTSMaxAge,
		NoStore:               false,
		EnablePolicy:          true,
		ContentSecurityPolicy: pageCSP,
	}))

	// Templates and static assets are embedded; no filesystem layout is
	// assumed at runtime.
	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", http.FS(web.StaticFS()))

	// Fallbacks: browser-facing error pages
	r.NoRoute(func(c *gin.Context) {
		handlers.FailPage(c, http.StatusNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: service ← db/mailer/config
	contactSvc := &services.ContactService{
		DB:        db,
		Mailer:    mailer,
		Recipient: cfg.Mail.Recipient,
		Sender:    cfg.Mail.DefaultSender,
	}
	h := handlers.New(contactSvc)

	// Public site
	r.GET("/", h.Home)
	r.POST("/contact", h.SubmitContact)

	// Operator area: always behind Basic auth, no exceptions.
	admin := r.Group("/admin", middleware.BasicAuth(cfg.Admin.Username, cfg.Admin.Password, "Login Required"))
	admin.GET("/messages", h.AdminMessages)
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
