package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dhruv40689/resume-builder/internal/account"
	googleauth "github.com/Dhruv40689/resume-builder/internal/auth"
	"github.com/Dhruv40689/resume-builder/internal/profiles"
	"github.com/Dhruv40689/resume-builder/internal/shared/config"
	"github.com/Dhruv40689/resume-builder/internal/shared/metrics"
	"github.com/Dhruv40689/resume-builder/internal/shared/server/middleware"
	"github.com/Dhruv40689/resume-builder/internal/shared/server/respond"
)

// RouterDeps carries the handlers wired into the engine.
type RouterDeps struct {
	Config          config.Config
	ProfilesHandler *profiles.Handler
	AccountHandler  *account.Handler
	GoogleAuth      *googleauth.GoogleService
}

// Rate limit groups. Scoring and enhancement are CPU-bound, uploads are
// IO-bound, reads are cheap polling.
const (
	rateGroupDefault = "DEFAULT"
	rateGroupUpload  = "UPLOAD"
	rateGroupScore   = "SCORE"
	rateGroupRead    = "READ"
)

var rateLimitRules = map[string]middleware.RateLimitRule{
	rateGroupDefault: {Rate: 5, Burst: 10},
	rateGroupUpload:  {Rate: 0.5, Burst: 3},
	rateGroupScore:   {Rate: 1, Burst: 5},
	rateGroupRead:    {Rate: 10, Burst: 30},
}

func rateGroupFor(c *gin.Context) string {
	path := c.FullPath()
	switch {
	case c.Request.Method == http.MethodPost && path == "/api/v1/profiles":
		return rateGroupUpload
	case c.Request.Method == http.MethodPost && (path == "/api/v1/profiles/:id/score" || path == "/api/v1/profiles/:id/enhance"):
		return rateGroupScore
	case c.Request.Method == http.MethodGet:
		return rateGroupRead
	default:
		return rateGroupDefault
	}
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/healthz", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:        rateLimitRules,
			DefaultGroup: rateGroupDefault,
			GroupFor:     rateGroupFor,
		}),
	)

	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	registerMeRoutes(api)
	if deps.ProfilesHandler != nil {
		deps.ProfilesHandler.RegisterRoutes(api)
	}
	if deps.AccountHandler != nil {
		deps.AccountHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
