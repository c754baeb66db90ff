package api

import (
	"log/slog"
	"net/http"
	"time"

	"director/server/internal/provider"

	"github.com/gin-gonic/gin"
)

type Server struct {
	provider provider.Adapter
	log      *slog.Logger
	now      func() time.Time
	maxBody  int64
}

func NewServer(p provider.Adapter, logger *slog.Logger) *Server {
	return &Server{
		provider: p,
		log:      logger,
		now:      time.Now,
	}
}

// SetBodyLimit caps request bodies at n bytes; n <= 0 disables the cap.
func (s *Server) SetBodyLimit(n int64) {
	s.maxBody = n
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(TraceMiddleware())
	r.Use(RequestLogMiddleware(s.log))
	r.Use(RecoveryMiddleware(s.log))
	r.Use(BodyLimitMiddleware(s.maxBody))

	api := r.Group("/api")
	api.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.POST("/generate", s.generate)
	api.POST("/analyze-image", s.analyzeImage)
	api.POST("/generate-image", s.generateImage)
	api.GET("/generate-image", s.imageModels)

	return r
}
