package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes builds the gin router for the UI-facing API.
func (s *Server) RegisterRoutes() http.Handler {
	if s.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.GET("/health", s.healthCheck)

	v1 := router.Group("/api/v1")
	{
		// Teacher setup: load a workbook, get a session back.
		v1.POST("/workbook", s.uploadWorkbook)
		v1.POST("/workbook/url", s.fetchWorkbook)

		// Student surface, scoped to a loaded workbook session.
		sess := v1.Group("/session")
		sess.Use(s.SessionMiddleware())
		{
			sess.GET("/report", s.loadReport)
			sess.GET("/stats", s.courseStats)
			sess.POST("/login", s.RateLimitMiddleware(), s.login)
			sess.POST("/grades", s.RateLimitMiddleware(), s.grades)
		}
	}

	return router
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "gradebook API is running",
	})
}

// SessionMiddleware resolves the X-Session-ID header to a loaded gradebook.
func (s *Server) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(sessionHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing " + sessionHeader + " header",
			})
			return
		}
		book, ok := s.session(id)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "session not found or expired, re-upload the workbook",
			})
			return
		}
		c.Set("session_id", id)
		c.Set("gradebook", book)
		c.Next()
	}
}

// RateLimitMiddleware throttles login-bearing endpoints per session+client.
func (s *Server) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString("session_id") + "|" + c.ClientIP()
		if !s.limiter.Allow(key, s.cfg.LoginRateLimit, s.cfg.LoginRateWindow) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many attempts, try again later",
			})
			return
		}
		c.Next()
	}
}
