// Package gateway runs a local stand-in for the school backend. It
// reproduces the production API's response conventions faithfully,
// inconsistencies included: some endpoints reply with success flags, some
// with bare sentinels under HTTP 200, one with plain "status|message" text.
// The SDK's end-to-end tests and local development run against it.
package gateway

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-mobile-sdk/pkg/config"
	"github.com/noah-isme/sma-mobile-sdk/pkg/logger"
	"github.com/noah-isme/sma-mobile-sdk/pkg/metrics"
	reqidmiddleware "github.com/noah-isme/sma-mobile-sdk/pkg/middleware/requestid"
)

// Gateway is the demo backend server.
type Gateway struct {
	accounts      *accountSet
	jwtSecret     string
	jwtExpiration time.Duration
	logger        *zap.Logger
	recorder      *metrics.Recorder

	// mu guards submitted and processed; gin runs handlers concurrently.
	mu        sync.Mutex
	submitted map[string]bool
	processed map[string]bool
}

// markSubmitted records a homework submission, reporting whether the actor
// had already submitted that assignment.
func (g *Gateway) markSubmitted(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.submitted[key] {
		return true
	}
	g.submitted[key] = true
	return false
}

// markProcessed records a pickup decision, reporting whether the request was
// already processed.
func (g *Gateway) markProcessed(requestID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.processed[requestID] {
		return true
	}
	g.processed[requestID] = true
	return false
}

// New constructs a gateway with built-in demo accounts.
func New(cfg config.GatewayConfig, l *zap.Logger, recorder *metrics.Recorder) (*Gateway, error) {
	if l == nil {
		l = zap.NewNop()
	}
	accounts, err := newAccountSet()
	if err != nil {
		return nil, err
	}
	expiration := cfg.JWTExpiration
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return &Gateway{
		accounts:      accounts,
		jwtSecret:     cfg.JWTSecret,
		jwtExpiration: expiration,
		logger:        l,
		recorder:      recorder,
		submitted:     make(map[string]bool),
		processed:     make(map[string]bool),
	}, nil
}

// Router builds the gin engine with all routes attached.
func (g *Gateway) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(g.logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	if g.recorder != nil {
		r.GET("/metrics", gin.WrapH(g.recorder.Handler()))
	}

	api := r.Group("/api")
	api.POST("/login", g.handleLogin)
	api.POST("/parent/add-student", g.handleAddStudent)
	api.GET("/homework/list", g.handleHomeworkList)
	api.POST("/homework/submit", g.handleHomeworkSubmit)
	api.GET("/grades", g.handleGrades)
	api.GET("/attendance", g.handleAttendance)
	api.GET("/timetable", g.handleTimetable)
	api.GET("/health-records", g.handleHealthRecords)
	api.POST("/health-records/create", g.handleHealthCreate)
	api.GET("/pickup/list", g.handlePickupList)
	api.POST("/pickup/process", g.handlePickupProcess)
	api.GET("/messages", g.handleMessages)
	api.POST("/messages/send", g.handleMessageSend)

	return r
}

// actor resolves the account behind the request's auth code, read from the
// given query parameter. The production backend never settled on one
// parameter name, so each route passes its own.
func (g *Gateway) actor(c *gin.Context, authParam string) *Account {
	code := c.Query(authParam)
	if code == "" {
		return nil
	}
	return g.verifyAuthCode(code)
}

// targetStudentID picks the student whose data a request is for: the
// student_id parameter when the actor is a parent proxying for a child,
// otherwise the actor itself.
func (g *Gateway) targetStudentID(c *gin.Context, actor *Account) string {
	if id := c.Query("student_id"); id != "" && actor.AccountType == "parent" {
		return id
	}
	return actor.UserID
}
