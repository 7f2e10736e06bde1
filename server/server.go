// Package server wires the HTTP surface: the A2A webhook, the agent
// manifest, and the auxiliary status endpoints.
package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smartdict/a2a"
	"smartdict/common"
	"smartdict/config"
	"smartdict/dictionary"
)

// Server hosts the agent's HTTP endpoints.
type Server struct {
	cfg     config.Config
	agent   *dictionary.Agent
	handler *a2a.Handler
}

// New constructs the HTTP server around a configured agent and dispatcher.
func New(cfg config.Config, agent *dictionary.Agent, handler *a2a.Handler) *Server {
	return &Server{cfg: cfg, agent: agent, handler: handler}
}

// Router configures the Gin engine with all agent endpoints.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(requestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/.well-known/agent.json", s.manifest)
	router.GET("/", s.root)
	router.GET("/health", s.health)
	router.GET("/info", s.info)
	router.POST("/a2a/message", s.webhook)
	router.POST("/test", s.test)

	return router
}

// Run starts the HTTP server on the configured port.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	log.Printf("[Server] Starting %s on %s", s.agent.Name(), addr)
	return s.Router().Run(addr)
}

// requestID tags each request with an id for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// webhook is the main A2A protocol endpoint. JSON-RPC-level errors still
// answer HTTP 200; only a fault before the dispatcher (a malformed body)
// answers HTTP 500.
func (s *Server) webhook(c *gin.Context) {
	var req common.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[Server] Webhook decode error: %v", err)
		c.JSON(http.StatusInternalServerError,
			common.NewError(nil, common.CodeInternalError, fmt.Sprintf("Internal server error: %v", err)))
		return
	}

	resp := s.handler.Handle(c.Request.Context(), req)
	c.JSON(http.StatusOK, resp)
}

// manifest serves the agent descriptor file verbatim. The platform uses it
// to discover the agent.
func (s *Server) manifest(c *gin.Context) {
	path := s.cfg.Server.ManifestPath
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Manifest not found"})
		return
	}
	c.File(path)
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "online",
		"agent":    s.agent.Name(),
		"version":  a2a.AgentVersion,
		"protocol": "A2A (Agent-to-Agent)",
		"manifest": "/.well-known/agent.json",
		"endpoints": gin.H{
			"a2a_webhook": "/a2a/message",
			"health":      "/health",
			"info":        "/info",
		},
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"agent":  s.agent.Name(),
	})
}

func (s *Server) info(c *gin.Context) {
	c.JSON(http.StatusOK, s.handler.AgentInfo())
}

// test is a local passthrough to the lookup service for debugging.
func (s *Server) test(c *gin.Context) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"input":  body.Message,
		"output": s.agent.Process(c.Request.Context(), body.Message),
	})
}
